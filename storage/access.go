// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - low level database access
//
// Get returns nil, nil if the key does not exist
type Access interface {
	Close() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Write(*leveldb.Batch) error
}

type accessData struct {
	db *leveldb.DB
}

// all committed batches are synced to disk
var writeOptions = &ldb_opt.WriteOptions{
	Sync: true,
}

func newDA(db *leveldb.DB) Access {
	return &accessData{
		db: db,
	}
}

func (d *accessData) Close() error {
	return d.db.Close()
}

func (d *accessData) Get(key []byte) ([]byte, error) {
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

func (d *accessData) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) Write(batch *leveldb.Batch) error {
	return d.db.Write(batch, writeOptions)
}
