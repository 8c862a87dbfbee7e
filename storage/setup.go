// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/fault"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Users      *PoolHandle `prefix:"U" namespace:"org.property-registration-network.regnet.user"`
	Requests   *PoolHandle `prefix:"R" namespace:"org.property-registration-network.regnet.request"`
	Properties *PoolHandle `prefix:"P" namespace:"org.property-registration-network.regnet.property"`
	TestData   *PoolHandle `prefix:"Z" namespace:"testing"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open ledger
type Database struct {
	sync.Mutex // held by the open transaction

	access      Access
	Pool        Pools
	byNamespace map[string]*PoolHandle
}

// Open - open up a database file
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a database that is discarded on close
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Database, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrIncompatibleDatabase
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	} else if version != currentDBVersion {
		logger.Criticalf("database is inconsistent: version: %d  current: %d", version, currentDBVersion)
		return nil, fault.ErrIncompatibleDatabase
	}

	d, err := newDatabase(newDA(db))
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return d, nil
}

// scan the pool struct and attach a handle to each field
func newDatabase(access Access) (*Database, error) {

	d := &Database{
		access:      access,
		byNamespace: make(map[string]*PoolHandle),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) || 0 == prefixTag[0] {
			return nil, fault.ErrInvalidPoolPrefix
		}

		namespace := fieldInfo.Tag.Get("namespace")
		if "" == namespace {
			return nil, fmt.Errorf("pool: %v has no namespace", fieldInfo.Name)
		}
		if _, ok := d.byNamespace[namespace]; ok {
			return nil, fmt.Errorf("pool: %v duplicates namespace: %q", fieldInfo.Name, namespace)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			namespace:  namespace,
			dataAccess: access,
		}
		d.byNamespace[namespace] = p
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return d, nil
}

// PoolFor - the pool holding a namespace
func (d *Database) PoolFor(namespace string) (*PoolHandle, error) {
	p, ok := d.byNamespace[namespace]
	if !ok {
		return nil, fault.ErrInvalidNamespace
	}
	return p, nil
}

// Close - close the database, waits for any open transaction
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil != d.access {
		d.access.Close()
		d.access = nil
	}
}

// Begin - start a transaction, blocks while another is open
func (d *Database) Begin() (Transaction, error) {
	d.Lock()
	if nil == d.access {
		d.Unlock()
		return nil, fault.ErrDatabaseIsNotSet
	}
	return newTransaction(d), nil
}

// return:
//   version number
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// holds the process wide database
var globalData struct {
	sync.RWMutex
	database *Database
}

// Initialise - open up the process wide database
//
// this must be called before Get
func Initialise(name string, readOnly bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.database {
		return fault.ErrAlreadyInitialised
	}

	d, err := Open(name, readOnly)
	if nil != err {
		return err
	}
	globalData.database = d
	return nil
}

// Finalise - close the process wide database
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.database {
		globalData.database.Close()
		globalData.database = nil
	}
}

// Get - the process wide database, nil if not initialised
func Get() *Database {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.database
}
