// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
)

// Ledger - access to the store within one atomic operation
//
// Get returns nil, nil when the key is absent, an error is only
// returned for a store fault
type Ledger interface {
	Get(compositekey.Key) ([]byte, error)
	Put(compositekey.Key, []byte) error
}

// GetUser - fetch a user, nil if absent
func GetUser(l Ledger, k compositekey.Key) (*User, error) {
	u := &User{}
	found, err := get(l, k, u)
	if !found || nil != err {
		return nil, err
	}
	return u, nil
}

// PutUser - store a user
func PutUser(l Ledger, k compositekey.Key, u *User) error {
	return put(l, k, u)
}

// GetUserRequest - fetch a request to join, nil if absent
func GetUserRequest(l Ledger, k compositekey.Key) (*UserRequest, error) {
	r := &UserRequest{}
	found, err := get(l, k, r)
	if !found || nil != err {
		return nil, err
	}
	return r, nil
}

// PutUserRequest - store a request to join
func PutUserRequest(l Ledger, k compositekey.Key, r *UserRequest) error {
	return put(l, k, r)
}

// GetPropertyRequest - fetch a property registration request, nil if absent
func GetPropertyRequest(l Ledger, k compositekey.Key) (*PropertyRequest, error) {
	r := &PropertyRequest{}
	found, err := get(l, k, r)
	if !found || nil != err {
		return nil, err
	}
	return r, nil
}

// PutPropertyRequest - store a property registration request
func PutPropertyRequest(l Ledger, k compositekey.Key, r *PropertyRequest) error {
	return put(l, k, r)
}

// GetProperty - fetch a property, nil if absent
func GetProperty(l Ledger, k compositekey.Key) (*Property, error) {
	p := &Property{}
	found, err := get(l, k, p)
	if !found || nil != err {
		return nil, err
	}
	return p, nil
}

// PutProperty - store a property
func PutProperty(l Ledger, k compositekey.Key, p *Property) error {
	return put(l, k, p)
}

// Has - check if a key is present
func Has(l Ledger, k compositekey.Key) (bool, error) {
	data, err := l.Get(k)
	if nil != err {
		return false, err
	}
	return nil != data, nil
}

func get(l Ledger, k compositekey.Key, v interface{}) (bool, error) {
	data, err := l.Get(k)
	if nil != err {
		return false, err
	}
	if nil == data {
		return false, nil
	}
	if err := json.Unmarshal(data, v); nil != err {
		return false, fault.ErrCorruptRecord
	}
	return true, nil
}

func put(l Ledger, k compositekey.Key, v interface{}) error {
	data, err := json.Marshal(v)
	if nil != err {
		return err
	}
	return l.Put(k, data)
}
