// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package property - registration and transfer of properties
//
// A property moves through:
//
//   requested -> registered <-> onSale -> registered (new owner)
//
// RegistrationRequest stores a request under (request, propertyId),
// ApproveRegistration copies it verbatim to (property, propertyId),
// UpdateStatus lets the owner toggle the sale status and Purchase
// moves upgradCoins from buyer to seller and ownership from seller to
// buyer.
//
// The owner field holds the user's composite key and is resolved
// through it, so a property always refers to an existing user.
package property
