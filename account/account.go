// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"math"
	"time"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/record"
)

// credit for each accepted bank transaction code
var rechargeAmounts = map[string]uint64{
	"upg100":  100,
	"upg500":  500,
	"upg1000": 1000,
}

// RechargeAmount - credit for a bank transaction code
func RechargeAmount(bankTransactionId string) (uint64, error) {
	amount, ok := rechargeAmounts[bankTransactionId]
	if !ok {
		return 0, fault.ErrInvalidTransactionId
	}
	return amount, nil
}

// RequestNewUser - store a request to join the network
func RequestNewUser(l record.Ledger, name string, emailId string, phoneNumber string, aadharNumber string, now time.Time) (*record.UserRequest, error) {
	if "" == name || "" == aadharNumber {
		return nil, fault.ErrMissingParameters
	}

	k, err := record.UserRequestKey(name, aadharNumber)
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

	r := &record.UserRequest{
		Name:         name,
		EmailId:      emailId,
		PhoneNumber:  phoneNumber,
		AadharNumber: aadharNumber,
		CreatedAt:    now.UTC(),
	}
	err = record.PutUserRequest(l, k, r)
	if nil != err {
		return nil, err
	}
	return r, nil
}

// ApproveNewUser - promote a join request to a user with an empty balance
func ApproveNewUser(l record.Ledger, name string, aadharNumber string) (*record.User, error) {
	if "" == name || "" == aadharNumber {
		return nil, fault.ErrMissingParameters
	}

	requestKey, err := record.UserRequestKey(name, aadharNumber)
	if nil != err {
		return nil, err
	}
	r, err := record.GetUserRequest(l, requestKey)
	if nil != err {
		return nil, err
	}
	if nil == r {
		return nil, fault.ErrRequestNotFound
	}

	userKey, err := record.UserKey(name, aadharNumber)
	if nil != err {
		return nil, err
	}
	found, err := record.Has(l, userKey)
	if nil != err {
		return nil, err
	}
	if found {
		return nil, fault.ErrUserAlreadyExists
	}

	u := &record.User{
		Name:         r.Name,
		EmailId:      r.EmailId,
		PhoneNumber:  r.PhoneNumber,
		AadharNumber: r.AadharNumber,
		CreatedAt:    r.CreatedAt,
		UpgradCoins:  0,
	}
	err = record.PutUser(l, userKey, u)
	if nil != err {
		return nil, err
	}
	return u, nil
}

// RechargeAccount - add the credit for a bank transaction to a user
func RechargeAccount(l record.Ledger, name string, aadharNumber string, bankTransactionId string) (*record.User, error) {
	k, u, err := Fetch(l, name, aadharNumber)
	if nil != err {
		return nil, err
	}

	amount, err := RechargeAmount(bankTransactionId)
	if nil != err {
		return nil, err
	}

	u.UpgradCoins, err = Credit(u.UpgradCoins, amount)
	if nil != err {
		return nil, err
	}

	err = record.PutUser(l, k, u)
	if nil != err {
		return nil, err
	}
	return u, nil
}

// ViewUser - read a user
func ViewUser(l record.Ledger, name string, aadharNumber string) (*record.User, error) {
	_, u, err := Fetch(l, name, aadharNumber)
	return u, err
}

// Fetch - key and record of an existing user
func Fetch(l record.Ledger, name string, aadharNumber string) (compositekey.Key, *record.User, error) {
	if "" == name || "" == aadharNumber {
		return compositekey.Key{}, nil, fault.ErrMissingParameters
	}

	k, err := record.UserKey(name, aadharNumber)
	if nil != err {
		return compositekey.Key{}, nil, err
	}
	u, err := record.GetUser(l, k)
	if nil != err {
		return compositekey.Key{}, nil, err
	}
	if nil == u {
		return compositekey.Key{}, nil, fault.ErrUserNotFound
	}
	return k, u, nil
}

// Credit - add to a balance
func Credit(balance uint64, amount uint64) (uint64, error) {
	if balance > math.MaxUint64-amount {
		return balance, fault.ErrBalanceOverflow
	}
	return balance + amount, nil
}

// Debit - subtract from a balance, never going below zero
func Debit(balance uint64, amount uint64) (uint64, error) {
	if balance < amount {
		return balance, fault.ErrInsufficientBalance
	}
	return balance - amount, nil
}
