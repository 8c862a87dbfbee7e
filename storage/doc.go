// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger
//
// This maintains a LevelDB database split into a series of pools.
// Each pool holds the records of one composite key namespace and is
// defined by a prefix byte that is obtained from the prefix tag in
// the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = composite key bytes: 0x00 ++ namespace ++ 0x00 ++ (component ++ 0x00)*
// 4. record       = JSON encoded record
//
// Users:
//
//   U ++ key(user, name, aadhar)        - approved user
//                                         data: user record
// Requests:
//
//   R ++ key(request, name, aadhar)     - request to join
//                                         data: user request record
//   R ++ key(request, propertyId)       - property registration request
//                                         data: property request record
// Properties:
//
//   P ++ key(property, propertyId)      - registered property
//                                         data: property record
//
// Testing:
//   Z ++ key                            - testing data
//
// All writes are made inside a Transaction and are committed as a
// single LevelDB batch.  Only one transaction may be open at a time.
package storage
