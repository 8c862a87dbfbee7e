// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"github.com/regnet/regnetd/account"
	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/record"
)

// RegistrationRequest - request registration of a property owned by an existing user
func RegistrationRequest(l record.Ledger, propertyId string, price int64, status string, name string, aadharNumber string) (*record.PropertyRequest, error) {
	if "" == propertyId {
		return nil, fault.ErrMissingParameters
	}

	ownerKey, _, err := account.Fetch(l, name, aadharNumber)
	if nil != err {
		return nil, err
	}

	if price < 0 {
		return nil, fault.ErrInvalidPrice
	}

	s, err := record.ParseStatus(status)
	if nil != err {
		return nil, err
	}

	k, err := record.PropertyRequestKey(propertyId)
	if nil != err {
		return nil, err
	}
	found, err := record.Has(l, k)
	if nil != err {
		return nil, err
	}
	if found {
		return nil, fault.ErrAlreadyRequested
	}

	r := &record.PropertyRequest{
		PropertyId: propertyId,
		Owner:      ownerKey,
		Price:      uint64(price),
		Status:     s,
	}
	err = record.PutPropertyRequest(l, k, r)
	if nil != err {
		return nil, err
	}
	return r, nil
}

// ApproveRegistration - promote a property request to a property
//
// the stored request bytes become the property record unchanged
func ApproveRegistration(l record.Ledger, propertyId string) (*record.Property, error) {
	if "" == propertyId {
		return nil, fault.ErrMissingParameters
	}

	requestKey, err := record.PropertyRequestKey(propertyId)
	if nil != err {
		return nil, err
	}
	r, err := l.Get(requestKey)
	if nil != err {
		return nil, err
	}
	if nil == r {
		return nil, fault.ErrRequestNotFound
	}

	propertyKey, err := record.PropertyKey(propertyId)
	if nil != err {
		return nil, err
	}
	found, err := record.Has(l, propertyKey)
	if nil != err {
		return nil, err
	}
	if found {
		return nil, fault.ErrPropertyAlreadyApproved
	}

	err = l.Put(propertyKey, r)
	if nil != err {
		return nil, err
	}

	// decode only to return it, a corrupt request is still reported
	return record.GetProperty(l, propertyKey)
}

// UpdateStatus - the owner changes the sale status
func UpdateStatus(l record.Ledger, propertyId string, name string, aadharNumber string, status string) (*record.Property, error) {
	userKey, _, err := account.Fetch(l, name, aadharNumber)
	if nil != err {
		return nil, err
	}

	k, p, err := fetch(l, propertyId)
	if nil != err {
		return nil, err
	}

	if !p.Owner.Equal(userKey) {
		return nil, fault.ErrNotOwner
	}

	s, err := record.ParseStatus(status)
	if nil != err {
		return nil, err
	}

	p.Status = s
	err = record.PutProperty(l, k, p)
	if nil != err {
		return nil, err
	}
	return p, nil
}

// Purchase - buy a property that is on sale
//
// buyer, seller and property are all written through the same ledger
// so they commit together
func Purchase(l record.Ledger, propertyId string, name string, aadharNumber string) (*record.Property, error) {
	buyerKey, buyer, err := account.Fetch(l, name, aadharNumber)
	if nil != err {
		return nil, err
	}

	k, p, err := fetch(l, propertyId)
	if nil != err {
		return nil, err
	}

	if record.OnSale != p.Status {
		return nil, fault.ErrNotForSale
	}
	if p.Owner.Equal(buyerKey) {
		return nil, fault.ErrSelfPurchase
	}

	buyerBalance, err := account.Debit(buyer.UpgradCoins, p.Price)
	if nil != err {
		return nil, err
	}

	sellerKey := p.Owner
	if !record.IsUserKey(sellerKey) {
		return nil, fault.ErrDanglingOwner
	}
	seller, err := record.GetUser(l, sellerKey)
	if nil != err {
		return nil, err
	}
	if nil == seller {
		return nil, fault.ErrDanglingOwner
	}

	sellerBalance, err := account.Credit(seller.UpgradCoins, p.Price)
	if nil != err {
		return nil, err
	}

	buyer.UpgradCoins = buyerBalance
	seller.UpgradCoins = sellerBalance
	p.Owner = buyerKey
	p.Status = record.Registered

	if err := record.PutUser(l, buyerKey, buyer); nil != err {
		return nil, err
	}
	if err := record.PutUser(l, sellerKey, seller); nil != err {
		return nil, err
	}
	if err := record.PutProperty(l, k, p); nil != err {
		return nil, err
	}
	return p, nil
}

// View - read a property
func View(l record.Ledger, propertyId string) (*record.Property, error) {
	_, p, err := fetch(l, propertyId)
	return p, err
}

func fetch(l record.Ledger, propertyId string) (compositekey.Key, *record.Property, error) {
	if "" == propertyId {
		return compositekey.Key{}, nil, fault.ErrMissingParameters
	}

	k, err := record.PropertyKey(propertyId)
	if nil != err {
		return compositekey.Key{}, nil, err
	}
	p, err := record.GetProperty(l, k)
	if nil != err {
		return compositekey.Key{}, nil, err
	}
	if nil == p {
		return compositekey.Key{}, nil, fault.ErrPropertyNotFound
	}
	return k, p, nil
}
