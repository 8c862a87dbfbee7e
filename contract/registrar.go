// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/account"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/property"
	"github.com/regnet/regnetd/record"
)

// RegistrarOperations - the approval and read operations
type RegistrarOperations interface {
	ApproveNewUser(Caller, string, string) (*record.User, error)
	ViewUser(Caller, string, string) (*record.User, error)
	ViewProperty(Caller, string) (*record.Property, error)
	ApprovePropertyRegistration(Caller, string) (*record.Property, error)
}

// RegistrarContract - operations for the registrar role
type RegistrarContract struct {
	log   *logger.L
	store Store
}

// NewRegistrar - create the registrar contract
func NewRegistrar(log *logger.L, store Store) *RegistrarContract {
	return &RegistrarContract{
		log:   log,
		store: store,
	}
}

func (c *RegistrarContract) check(caller Caller) error {
	if Registrar != caller.Role {
		c.log.Warnf("refused %s(%s)", caller.Role, caller.Identity)
		return fault.ErrNotRegistrar
	}
	return nil
}

// ApproveNewUser - promote a join request to a user
func (c *RegistrarContract) ApproveNewUser(caller Caller, name string, aadharNumber string) (*record.User, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}

	var u *record.User
	err := Execute(c.log, c.store, caller, "approveNewUser", func(l record.Ledger) error {
		var err error
		u, err = account.ApproveNewUser(l, name, aadharNumber)
		return err
	})
	return u, err
}

// ViewUser - read a user
func (c *RegistrarContract) ViewUser(caller Caller, name string, aadharNumber string) (*record.User, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}
	return viewUser(c.log, c.store, caller, name, aadharNumber)
}

// ViewProperty - read a property
func (c *RegistrarContract) ViewProperty(caller Caller, propertyId string) (*record.Property, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}
	return viewProperty(c.log, c.store, caller, propertyId)
}

// ApprovePropertyRegistration - promote a property request to a property
func (c *RegistrarContract) ApprovePropertyRegistration(caller Caller, propertyId string) (*record.Property, error) {
	if err := c.check(caller); nil != err {
		return nil, err
	}

	var p *record.Property
	err := Execute(c.log, c.store, caller, "approvePropertyRegistration", func(l record.Ledger) error {
		var err error
		p, err = property.ApproveRegistration(l, propertyId)
		return err
	})
	return p, err
}

// shared by both contracts
func viewUser(log *logger.L, store Store, caller Caller, name string, aadharNumber string) (*record.User, error) {
	var u *record.User
	err := Execute(log, store, caller, "viewUser", func(l record.Ledger) error {
		var err error
		u, err = account.ViewUser(l, name, aadharNumber)
		return err
	})
	return u, err
}

func viewProperty(log *logger.L, store Store, caller Caller, propertyId string) (*record.Property, error) {
	var p *record.Property
	err := Execute(log, store, caller, "viewProperty", func(l record.Ledger) error {
		var err error
		p, err = property.View(l, propertyId)
		return err
	})
	return p, err
}
