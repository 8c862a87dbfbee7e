// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
)

// PoolHandle - handle for a storage pool
type PoolHandle struct {
	prefix     byte
	limit      []byte
	namespace  string
	dataAccess Access
}

// Element - a single key/value pair from a pool
type Element struct {
	Key   compositekey.Key
	Value []byte
}

// Prefix - the pool's key prefix
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}

// Namespace - the composite key namespace stored in this pool
func (p *PoolHandle) Namespace() string {
	return p.namespace
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key compositekey.Key) ([]byte, error) {
	if key.Namespace() != p.namespace {
		return nil, fault.ErrInvalidNamespace
	}
	k := key.Bytes()
	prefixedKey := make([]byte, 1, len(k)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, k...), nil
}

// Get - read committed data, nil if not found
func (p *PoolHandle) Get(key compositekey.Key) ([]byte, error) {
	k, err := p.prefixKey(key)
	if nil != err {
		return nil, err
	}
	return p.dataAccess.Get(k)
}

// Has - check if a committed key exists
func (p *PoolHandle) Has(key compositekey.Key) (bool, error) {
	k, err := p.prefixKey(key)
	if nil != err {
		return false, err
	}
	return p.dataAccess.Has(k)
}
