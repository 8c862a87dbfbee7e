// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - role checked entry points to the ledger
//
// Two contracts share the record model:
//
//   registrar: ApproveNewUser, ViewUser, ViewProperty,
//              ApprovePropertyRegistration
//   user:      RequestNewUser, RechargeAccount, ViewUser,
//              PropertyRegistrationRequest, ViewProperty,
//              UpdatePropertyStatus, PurchaseProperty
//
// Every call carries the caller's role and is rejected before the
// ledger is touched if the role does not match the contract.  Each
// accepted call runs in one storage transaction that is committed
// only if the operation succeeds.
package contract
