// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/account"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/property"
	"github.com/regnet/regnetd/record"
)

// UserOperations - the operations open to ordinary participants
type UserOperations interface {
	RequestNewUser(Caller, string, string, string, string) (*record.UserRequest, error)
	RechargeAccount(Caller, string, string, string) (*record.User, error)
	ViewUser(Caller, string, string) (*record.User, error)
	PropertyRegistrationRequest(Caller, string, int64, string, string, string) (*record.PropertyRequest, error)
	ViewProperty(Caller, string) (*record.Property, error)
	UpdatePropertyStatus(Caller, string, string, string, string) (*record.Property, error)
	PurchaseProperty(Caller, string, string, string) (*record.Property, error)
}

// UserContract - operations for the participant role
type UserContract struct {
	log   *logger.L
	store Store
	clock func() time.Time
}

// NewUser - create the user contract, a nil clock uses time.Now
func NewUser(log *logger.L, store Store, clock func() time.Time) *UserContract {
	if nil == clock {
		clock = time.Now
	}
	return &UserContract{
		log:   log,
		store: store,
		clock: clock,
	}
}

func (c *UserContract) check(caller Caller) error {
	if Participant != caller.Role {
		c.log.Warnf("refused %s(%s)", caller.Role, caller.Identity)
		return fault.ErrNotParticipant
	}
	return nil
}

// RequestNewUser - ask to join the network
func (c *UserContract) RequestNewUser(caller Caller, name string, emailId string, phoneNumber string, aadharNumber string) (*record.UserRequest, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}

	var r *record.UserRequest
	err := Execute(c.log, c.store, caller, "requestNewUser", func(l record.Ledger) error {
		var err error
		r, err = account.RequestNewUser(l, name, emailId, phoneNumber, aadharNumber, c.clock())
		return err
	})
	return r, err
}

// RechargeAccount - credit a user from a bank transaction
func (c *UserContract) RechargeAccount(caller Caller, name string, aadharNumber string, bankTransactionId string) (*record.User, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}

	var u *record.User
	err := Execute(c.log, c.store, caller, "rechargeAccount", func(l record.Ledger) error {
		var err error
		u, err = account.RechargeAccount(l, name, aadharNumber, bankTransactionId)
		return err
	})
	return u, err
}

// ViewUser - read a user
func (c *UserContract) ViewUser(caller Caller, name string, aadharNumber string) (*record.User, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}
	return viewUser(c.log, c.store, caller, name, aadharNumber)
}

// PropertyRegistrationRequest - ask for a property to be registered
func (c *UserContract) PropertyRegistrationRequest(caller Caller, propertyId string, price int64, status string, name string, aadharNumber string) (*record.PropertyRequest, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}

	var r *record.PropertyRequest
	err := Execute(c.log, c.store, caller, "propertyRegistrationRequest", func(l record.Ledger) error {
		var err error
		r, err = property.RegistrationRequest(l, propertyId, price, status, name, aadharNumber)
		return err
	})
	return r, err
}

// ViewProperty - read a property
func (c *UserContract) ViewProperty(caller Caller, propertyId string) (*record.Property, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}
	return viewProperty(c.log, c.store, caller, propertyId)
}

// UpdatePropertyStatus - owner changes sale status
func (c *UserContract) UpdatePropertyStatus(caller Caller, propertyId string, name string, aadharNumber string, status string) (*record.Property, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}

	var p *record.Property
	err := Execute(c.log, c.store, caller, "updatePropertyStatus", func(l record.Ledger) error {
		var err error
		p, err = property.UpdateStatus(l, propertyId, name, aadharNumber, status)
		return err
	})
	return p, err
}

// PurchaseProperty - buy a property that is on sale
func (c *UserContract) PurchaseProperty(caller Caller, propertyId string, name string, aadharNumber string) (*record.Property, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}

	var p *record.Property
	err := Execute(c.log, c.store, caller, "purchaseProperty", func(l record.Ledger) error {
		var err error
		p, err = property.Purchase(l, propertyId, name, aadharNumber)
		return err
	})
	return p, err
}
