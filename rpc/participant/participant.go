// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package participant - the User RPC service for ordinary participants
package participant

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/contract"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/mode"
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/rpc/ratelimit"
)

const (
	rateLimitUser = 200
	rateBurstUser = 100
)

// User - type for RPC calls
type User struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Caller   contract.Caller
	IsNormal func(mode.Mode) bool
	Contract contract.UserOperations
}

// New - create the service, every call is made as caller
func New(log *logger.L, caller contract.Caller, isNormalMode func(mode.Mode) bool, c contract.UserOperations) *User {
	return &User{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitUser, rateBurstUser),
		Caller:   caller,
		IsNormal: isNormalMode,
		Contract: c,
	}
}

func (user *User) ready() error {
	if err := ratelimit.Limit(user.Limiter); nil != err {
		return err
	}
	if !user.IsNormal(mode.Normal) {
		return fault.ErrNotAvailable
	}
	return nil
}

// ---

// RequestArguments - a request to join
type RequestArguments struct {
	Name         string `json:"name"`
	EmailId      string `json:"emailId"`
	PhoneNumber  string `json:"phoneNumber"`
	AadharNumber string `json:"aadharNumber"`
}

// RequestNewUser - ask to join the network
func (user *User) RequestNewUser(arguments *RequestArguments, reply *record.UserRequest) error {
	if err := user.ready(); nil != err {
		return err
	}

	user.Log.Infof("requestNewUser: %q", arguments.Name)

	r, err := user.Contract.RequestNewUser(user.Caller, arguments.Name, arguments.EmailId, arguments.PhoneNumber, arguments.AadharNumber)
	if nil != err {
		return err
	}
	*reply = *r
	return nil
}

// ---

// RechargeArguments - credit from a bank transaction
type RechargeArguments struct {
	Name              string `json:"name"`
	AadharNumber      string `json:"aadharNumber"`
	BankTransactionId string `json:"bankTransactionId"`
}

// RechargeAccount - credit a user
func (user *User) RechargeAccount(arguments *RechargeArguments, reply *record.User) error {
	if err := user.ready(); nil != err {
		return err
	}

	user.Log.Infof("rechargeAccount: %q  id: %q", arguments.Name, arguments.BankTransactionId)

	u, err := user.Contract.RechargeAccount(user.Caller, arguments.Name, arguments.AadharNumber, arguments.BankTransactionId)
	if nil != err {
		return err
	}
	*reply = *u
	return nil
}

// ---

// UserArguments - identify a user
type UserArguments struct {
	Name         string `json:"name"`
	AadharNumber string `json:"aadharNumber"`
}

// ViewUser - read a user
func (user *User) ViewUser(arguments *UserArguments, reply *record.User) error {
	if err := user.ready(); nil != err {
		return err
	}

	u, err := user.Contract.ViewUser(user.Caller, arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	*reply = *u
	return nil
}

// ---

// PropertyRequestArguments - a request to register a property
type PropertyRequestArguments struct {
	PropertyId   string `json:"propertyId"`
	Price        int64  `json:"price"`
	Status       string `json:"status"`
	Name         string `json:"name"`
	AadharNumber string `json:"aadharNumber"`
}

// PropertyRegistrationRequest - ask for a property to be registered
func (user *User) PropertyRegistrationRequest(arguments *PropertyRequestArguments, reply *record.PropertyRequest) error {
	if err := user.ready(); nil != err {
		return err
	}

	user.Log.Infof("propertyRegistrationRequest: %q  price: %d  status: %q", arguments.PropertyId, arguments.Price, arguments.Status)

	r, err := user.Contract.PropertyRegistrationRequest(user.Caller, arguments.PropertyId, arguments.Price, arguments.Status, arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	*reply = *r
	return nil
}

// ---

// PropertyArguments - identify a property
type PropertyArguments struct {
	PropertyId string `json:"propertyId"`
}

// ViewProperty - read a property
func (user *User) ViewProperty(arguments *PropertyArguments, reply *record.Property) error {
	if err := user.ready(); nil != err {
		return err
	}

	p, err := user.Contract.ViewProperty(user.Caller, arguments.PropertyId)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}

// ---

// StatusArguments - owner changes sale status
type StatusArguments struct {
	PropertyId   string `json:"propertyId"`
	Name         string `json:"name"`
	AadharNumber string `json:"aadharNumber"`
	Status       string `json:"status"`
}

// UpdatePropertyStatus - put on sale or withdraw
func (user *User) UpdatePropertyStatus(arguments *StatusArguments, reply *record.Property) error {
	if err := user.ready(); nil != err {
		return err
	}

	user.Log.Infof("updatePropertyStatus: %q  status: %q", arguments.PropertyId, arguments.Status)

	p, err := user.Contract.UpdatePropertyStatus(user.Caller, arguments.PropertyId, arguments.Name, arguments.AadharNumber, arguments.Status)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}

// ---

// PurchaseArguments - buyer of a property
type PurchaseArguments struct {
	PropertyId   string `json:"propertyId"`
	Name         string `json:"name"`
	AadharNumber string `json:"aadharNumber"`
}

// PurchaseProperty - buy a property that is on sale
func (user *User) PurchaseProperty(arguments *PurchaseArguments, reply *record.Property) error {
	if err := user.ready(); nil != err {
		return err
	}

	user.Log.Infof("purchaseProperty: %q  buyer: %q", arguments.PropertyId, arguments.Name)

	p, err := user.Contract.PurchaseProperty(user.Caller, arguments.PropertyId, arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}
