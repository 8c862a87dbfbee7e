// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - user accounts on the ledger
//
// A user joins in two steps: RequestNewUser stores a join request
// under (request, name, aadharNumber) and ApproveNewUser, run by a
// registrar, promotes it to a User record under (user, name,
// aadharNumber) with a zero upgradCoins balance.
//
// Balances are only increased here, by RechargeAccount, using a fixed
// table of bank transaction codes.
//
// Every function works on the ledger it is given and never commits;
// the caller owns the transaction.
package account
