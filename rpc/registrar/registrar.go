// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registrar - the Registrar RPC service
package registrar

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/contract"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/mode"
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/rpc/participant"
	"github.com/regnet/regnetd/rpc/ratelimit"
)

const (
	rateLimitRegistrar = 100
	rateBurstRegistrar = 50
)

// Registrar - type for RPC calls
type Registrar struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Caller   contract.Caller
	IsNormal func(mode.Mode) bool
	Contract contract.RegistrarOperations
}

// New - create the service, every call is made as caller
func New(log *logger.L, caller contract.Caller, isNormalMode func(mode.Mode) bool, c contract.RegistrarOperations) *Registrar {
	return &Registrar{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitRegistrar, rateBurstRegistrar),
		Caller:   caller,
		IsNormal: isNormalMode,
		Contract: c,
	}
}

func (r *Registrar) ready() error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if !r.IsNormal(mode.Normal) {
		return fault.ErrNotAvailable
	}
	return nil
}

// UserArguments - identify a user
type UserArguments = participant.UserArguments

// PropertyArguments - identify a property
type PropertyArguments = participant.PropertyArguments

// ApproveNewUser - promote a join request to a user
func (r *Registrar) ApproveNewUser(arguments *UserArguments, reply *record.User) error {
	if err := r.ready(); nil != err {
		return err
	}

	r.Log.Infof("approveNewUser: %q", arguments.Name)

	u, err := r.Contract.ApproveNewUser(r.Caller, arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	*reply = *u
	return nil
}

// ViewUser - read a user
func (r *Registrar) ViewUser(arguments *UserArguments, reply *record.User) error {
	if err := r.ready(); nil != err {
		return err
	}

	u, err := r.Contract.ViewUser(r.Caller, arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	*reply = *u
	return nil
}

// ViewProperty - read a property
func (r *Registrar) ViewProperty(arguments *PropertyArguments, reply *record.Property) error {
	if err := r.ready(); nil != err {
		return err
	}

	p, err := r.Contract.ViewProperty(r.Caller, arguments.PropertyId)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}

// ApprovePropertyRegistration - promote a property request to a property
func (r *Registrar) ApprovePropertyRegistration(arguments *PropertyArguments, reply *record.Property) error {
	if err := r.ready(); nil != err {
		return err
	}

	r.Log.Infof("approvePropertyRegistration: %q", arguments.PropertyId)

	p, err := r.Contract.ApprovePropertyRegistration(r.Caller, arguments.PropertyId)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}
