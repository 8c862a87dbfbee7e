// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
)

// Transaction - an atomic set of ledger writes
//
// Get and Has see values Put earlier in the same transaction
type Transaction interface {
	Get(compositekey.Key) ([]byte, error)
	Has(compositekey.Key) (bool, error)
	Put(compositekey.Key, []byte) error
	Commit() error
	Abort()
}

type transaction struct {
	d     *Database
	batch *leveldb.Batch
	cache Cache
	inUse bool
}

// the database lock is already held
func newTransaction(d *Database) *transaction {
	return &transaction{
		d:     d,
		batch: new(leveldb.Batch),
		cache: newCache(),
		inUse: true,
	}
}

func (t *transaction) storageKey(key compositekey.Key) ([]byte, error) {
	if !t.inUse {
		return nil, fault.ErrTransactionNotInUse
	}
	p, err := t.d.PoolFor(key.Namespace())
	if nil != err {
		return nil, err
	}
	return p.prefixKey(key)
}

// Get - value for a key, nil if absent
func (t *transaction) Get(key compositekey.Key) ([]byte, error) {
	k, err := t.storageKey(key)
	if nil != err {
		return nil, err
	}
	if value, found := t.cache.Get(string(k)); found {
		return value, nil
	}
	return t.d.access.Get(k)
}

// Has - check for a key
func (t *transaction) Has(key compositekey.Key) (bool, error) {
	k, err := t.storageKey(key)
	if nil != err {
		return false, err
	}
	if _, found := t.cache.Get(string(k)); found {
		return true, nil
	}
	return t.d.access.Has(k)
}

// Put - queue a write
func (t *transaction) Put(key compositekey.Key, value []byte) error {
	k, err := t.storageKey(key)
	if nil != err {
		return err
	}

	v := make([]byte, len(value))
	copy(v, value)

	t.batch.Put(k, v)
	t.cache.Set(string(k), v)
	return nil
}

// Commit - write all queued values as one batch and end the transaction
func (t *transaction) Commit() error {
	if !t.inUse {
		return fault.ErrTransactionNotInUse
	}
	defer t.end()

	if 0 == t.batch.Len() {
		return nil
	}
	return t.d.access.Write(t.batch)
}

// Abort - discard all queued values and end the transaction
func (t *transaction) Abort() {
	if !t.inUse {
		return
	}
	t.end()
}

func (t *transaction) end() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
	t.d.Unlock()
}
