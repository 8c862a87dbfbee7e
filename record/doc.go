// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the records kept on the ledger
//
// Layout of each record (JSON):
//
//   User:            {name, emailId, phoneNumber, aadharNumber, createdAt, upgradCoins}
//   UserRequest:     {name, emailId, phoneNumber, aadharNumber, createdAt}
//   PropertyRequest: {propertyId, owner, price, status}
//   Property:        {propertyId, owner, price, status}
//
// Keys:
//
//   user     ++ name ++ aadharNumber  - User
//   request  ++ name ++ aadharNumber  - UserRequest
//   request  ++ propertyId            - PropertyRequest
//   property ++ propertyId            - Property
package record
