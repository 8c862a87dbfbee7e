// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"

	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/storage"
)

// contract names
const (
	RegistrarName = "org.property-registration-network.regnet.registrar"
	UserName      = "org.property-registration-network.regnet.user"
)

// Role - what a caller may do
type Role int

// the roles
const (
	Nobody Role = iota
	Participant
	Registrar
)

func (r Role) String() string {
	switch r {
	case Participant:
		return "participant"
	case Registrar:
		return "registrar"
	default:
		return "nobody"
	}
}

// Caller - who is invoking an operation
type Caller struct {
	Role     Role
	Identity string
}

// Store - source of transactions
type Store interface {
	Begin() (storage.Transaction, error)
}

// Execute - run an operation inside one transaction
//
// the transaction is committed only when the operation succeeds
func Execute(log *logger.L, store Store, caller Caller, operation string, run func(l record.Ledger) error) error {
	id := uuid.New()

	log.Infof("%s: %s by %s(%s)", id, operation, caller.Role, caller.Identity)

	tx, err := store.Begin()
	if nil != err {
		log.Errorf("%s: %s: begin error: %s", id, operation, err)
		return err
	}

	err = run(tx)
	if nil != err {
		tx.Abort()
		if fault.IsLedgerError(err) {
			log.Warnf("%s: %s: rejected: %s", id, operation, err)
		} else {
			log.Errorf("%s: %s: error: %s", id, operation, err)
		}
		return err
	}

	err = tx.Commit()
	if nil != err {
		log.Criticalf("%s: %s: commit error: %s", id, operation, err)
		return err
	}

	log.Debugf("%s: %s: committed", id, operation)
	return nil
}
