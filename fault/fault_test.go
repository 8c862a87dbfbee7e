// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/regnet/regnetd/fault"
)

var (
	ErrAuthorisationOne = fault.AuthorisationError("authorisation one")
	ErrAuthorisationTwo = fault.AuthorisationError("authorisation two")
	ErrExistsOne        = fault.ExistsError("exists one ")
	ErrExistsTwo        = fault.ExistsError("exists two")
	ErrInvalidOne       = fault.InvalidError("invalid one")
	ErrInvalidTwo       = fault.InvalidError("invalid two")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrNotFoundTwo      = fault.NotFoundError("not found two")
	ErrProcessOne       = fault.ProcessError("process one")
	ErrProcessTwo       = fault.ProcessError("process two")
	ErrRecordOne        = fault.RecordError("record one")
	ErrRecordTwo        = fault.RecordError("record two")
	ErrStateOne         = fault.StateError("state one")
	ErrStateTwo         = fault.StateError("state two")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		authorisation bool
		exists        bool
		invalid       bool
		notFound      bool
		process       bool
		record        bool
		state         bool
	}{
		{ErrAuthorisationOne, true, false, false, false, false, false, false},
		{ErrAuthorisationTwo, true, false, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, false, true, false, false},
		{ErrProcessTwo, false, false, false, false, true, false, false},
		{ErrRecordOne, false, false, false, false, false, true, false},
		{ErrRecordTwo, false, false, false, false, false, true, false},
		{ErrStateOne, false, false, false, false, false, false, true},
		{ErrStateTwo, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorisation(err) != e.authorisation {
			t.Errorf("%d: expected 'authorisation' == %v for err = %v", i, e.authorisation, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
		if fault.IsErrState(err) != e.state {
			t.Errorf("%d: expected 'state' == %v for err = %v", i, e.state, err)
		}
	}
}

// precondition failures are distinguishable from infrastructure faults
func TestLedgerErrors(t *testing.T) {
	ledger := []error{
		fault.ErrNotOwner,
		fault.ErrAlreadyRequested,
		fault.ErrInvalidPrice,
		fault.ErrUserNotFound,
		fault.ErrSelfPurchase,
	}
	for _, err := range ledger {
		if !fault.IsLedgerError(err) {
			t.Errorf("expected ledger error: %v", err)
		}
	}

	other := []error{
		fault.ErrCorruptRecord,
		fault.ErrTransactionNotInUse,
		fault.GenericError("generic"),
	}
	for _, err := range other {
		if fault.IsLedgerError(err) {
			t.Errorf("unexpected ledger error: %v", err)
		}
	}
}
