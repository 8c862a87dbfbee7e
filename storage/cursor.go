// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange ldb_util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: ldb_util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key compositekey.Key) (*FetchCursor, error) {
	k, err := cursor.pool.prefixKey(key)
	if nil != err {
		return nil, err
	}
	cursor.maxRange.Start = k
	return cursor, nil
}

// Fetch - return some elements starting from the current position
// and advance past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)

	results := make([]Element, 0, count)
	var lastKey []byte
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		k, err := compositekey.Parse(key[1:]) // strip the prefix
		if nil != err {
			iter.Release()
			return nil, fault.ErrCorruptRecord
		}

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   k,
			Value: dataValue,
		})

		lastKey = make([]byte, len(key))
		copy(lastKey, key)

		if len(results) >= count {
			break iterating
		}
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return nil, err
	}

	// next fetch starts just after the last key returned
	if nil != lastKey {
		cursor.maxRange.Start = append(lastKey, 0x00)
	}
	return results, nil
}
