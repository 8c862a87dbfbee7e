// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regnet/regnetd/account"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/fixtures"
	"github.com/regnet/regnetd/property"
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/storage"
)

type testUser struct {
	name   string
	aadhar string
}

var (
	userA = testUser{"alice", "1111"}
	userB = testUser{"bob", "2222"}
	userC = testUser{"carol", "3333"}
)

const testPropertyId = "plot-42"

func openDatabase(t *testing.T) *storage.Database {
	d, err := storage.OpenMemory()
	require.Nil(t, err, "open memory database")
	return d
}

// run one operation in its own transaction
func run(t *testing.T, d *storage.Database, operation func(l record.Ledger) error) error {
	tx, err := d.Begin()
	require.Nil(t, err, "begin")

	err = operation(tx)
	if nil != err {
		tx.Abort()
		return err
	}
	return tx.Commit()
}

// approved user with some balance
func makeUser(t *testing.T, d *storage.Database, u testUser, codes ...string) {
	err := run(t, d, func(l record.Ledger) error {
		if _, err := account.RequestNewUser(l, u.name, u.name+"@example.com", "555", u.aadhar, fixtures.Now); nil != err {
			return err
		}
		if _, err := account.ApproveNewUser(l, u.name, u.aadhar); nil != err {
			return err
		}
		for _, code := range codes {
			if _, err := account.RechargeAccount(l, u.name, u.aadhar, code); nil != err {
				return err
			}
		}
		return nil
	})
	require.Nil(t, err, "make user: %s", u.name)
}

func makeProperty(t *testing.T, d *storage.Database, owner testUser, propertyId string, price int64, status string) {
	err := run(t, d, func(l record.Ledger) error {
		if _, err := property.RegistrationRequest(l, propertyId, price, status, owner.name, owner.aadhar); nil != err {
			return err
		}
		_, err := property.ApproveRegistration(l, propertyId)
		return err
	})
	require.Nil(t, err, "make property: %s", propertyId)
}

func balance(t *testing.T, d *storage.Database, u testUser) uint64 {
	k, err := record.UserKey(u.name, u.aadhar)
	require.Nil(t, err, "user key")
	value, err := d.Pool.Users.Get(k)
	require.Nil(t, err, "get user")
	require.NotNil(t, value, "user missing: %s", u.name)

	var result *record.User
	err = run(t, d, func(l record.Ledger) error {
		var err error
		result, err = record.GetUser(l, k)
		return err
	})
	require.Nil(t, err, "decode user")
	return result.UpgradCoins
}

func view(t *testing.T, d *storage.Database, propertyId string) *record.Property {
	var p *record.Property
	err := run(t, d, func(l record.Ledger) error {
		var err error
		p, err = property.View(l, propertyId)
		return err
	})
	require.Nil(t, err, "view property")
	return p
}

func purchase(d *storage.Database, t *testing.T, u testUser) error {
	return run(t, d, func(l record.Ledger) error {
		_, err := property.Purchase(l, testPropertyId, u.name, u.aadhar)
		return err
	})
}

// raw bytes of the records touched by a purchase
func snapshot(t *testing.T, d *storage.Database, users ...testUser) [][]byte {
	result := make([][]byte, 0, len(users)+1)
	for _, u := range users {
		k, _ := record.UserKey(u.name, u.aadhar)
		value, err := d.Pool.Users.Get(k)
		require.Nil(t, err, "get user")
		result = append(result, value)
	}
	k, _ := record.PropertyKey(testPropertyId)
	value, err := d.Pool.Properties.Get(k)
	require.Nil(t, err, "get property")
	return append(result, value)
}

func TestEndToEndPurchase(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	makeUser(t, d, userA, "upg1000")
	assert.Equal(t, uint64(1000), balance(t, d, userA), "A balance before")

	makeProperty(t, d, userA, testPropertyId, 400, "onSale")

	makeUser(t, d, userB, "upg500")
	assert.Equal(t, uint64(500), balance(t, d, userB), "B balance before")

	var p *record.Property
	err := run(t, d, func(l record.Ledger) error {
		var err error
		p, err = property.Purchase(l, testPropertyId, userB.name, userB.aadhar)
		return err
	})
	require.Nil(t, err, "purchase")

	buyerKey, _ := record.UserKey(userB.name, userB.aadhar)
	assert.True(t, buyerKey.Equal(p.Owner), "returned owner")
	assert.Equal(t, record.Registered, p.Status, "returned status")

	assert.Equal(t, uint64(1400), balance(t, d, userA), "A balance after")
	assert.Equal(t, uint64(100), balance(t, d, userB), "B balance after")

	stored := view(t, d, testPropertyId)
	assert.True(t, buyerKey.Equal(stored.Owner), "stored owner")
	assert.Equal(t, record.Registered, stored.Status, "stored status")
	assert.Equal(t, uint64(400), stored.Price, "stored price")
}

func TestPurchaseConservesBalance(t *testing.T) {
	tests := []struct {
		price       int64
		sellerCodes []string
		buyerCodes  []string
	}{
		{0, nil, nil},
		{100, nil, []string{"upg100"}},
		{250, []string{"upg500"}, []string{"upg500"}},
		{1000, []string{"upg1000", "upg100"}, []string{"upg1000", "upg500"}},
	}

	for i, item := range tests {
		d := openDatabase(t)

		makeUser(t, d, userA, item.sellerCodes...)
		makeUser(t, d, userB, item.buyerCodes...)
		makeProperty(t, d, userA, testPropertyId, item.price, "onSale")

		before := balance(t, d, userA) + balance(t, d, userB)
		buyerBefore := balance(t, d, userB)

		err := purchase(d, t, userB)
		assert.Nil(t, err, "%d: purchase", i)

		after := balance(t, d, userA) + balance(t, d, userB)
		assert.Equal(t, before, after, "%d: total balance changed", i)
		assert.Equal(t, buyerBefore-uint64(item.price), balance(t, d, userB), "%d: buyer debit", i)

		d.Close()
	}
}

func TestInsufficientBalanceLeavesRecords(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	makeUser(t, d, userA)
	makeUser(t, d, userB, "upg100")
	makeProperty(t, d, userA, testPropertyId, 400, "onSale")

	before := snapshot(t, d, userA, userB)

	err := purchase(d, t, userB)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "purchase")
	assert.True(t, fault.IsErrState(err), "not a state error")

	assert.Equal(t, before, snapshot(t, d, userA, userB), "records changed")
}

func TestPurchasePreconditionOrder(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	err := purchase(d, t, userB)
	assert.Equal(t, fault.ErrUserNotFound, err, "unknown buyer")

	makeUser(t, d, userA)
	makeUser(t, d, userB)

	err = purchase(d, t, userB)
	assert.Equal(t, fault.ErrPropertyNotFound, err, "unknown property")

	makeProperty(t, d, userA, testPropertyId, 400, "registered")

	err = purchase(d, t, userB)
	assert.Equal(t, fault.ErrNotForSale, err, "property not on sale")

	err = run(t, d, func(l record.Ledger) error {
		_, err := property.UpdateStatus(l, testPropertyId, userA.name, userA.aadhar, "onSale")
		return err
	})
	require.Nil(t, err, "put on sale")

	err = purchase(d, t, userB)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "buyer cannot pay")
}

func TestSelfPurchase(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	makeUser(t, d, userA, "upg1000")
	makeProperty(t, d, userA, testPropertyId, 10, "registered")

	// not on sale is reported first, still a state error
	err := purchase(d, t, userA)
	assert.True(t, fault.IsErrState(err), "self purchase when registered: %v", err)

	err = run(t, d, func(l record.Ledger) error {
		_, err := property.UpdateStatus(l, testPropertyId, userA.name, userA.aadhar, "onSale")
		return err
	})
	require.Nil(t, err, "put on sale")

	before := snapshot(t, d, userA)
	err = purchase(d, t, userA)
	assert.Equal(t, fault.ErrSelfPurchase, err, "self purchase when on sale")
	assert.Equal(t, before, snapshot(t, d, userA), "records changed")
}

func TestSelfPurchaseIgnoresBalance(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	makeUser(t, d, userA)
	makeProperty(t, d, userA, testPropertyId, 1000, "onSale")

	err := purchase(d, t, userA)
	assert.Equal(t, fault.ErrSelfPurchase, err, "self purchase with no balance")
}

func TestUpdateStatus(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	update := func(u testUser, status string) error {
		return run(t, d, func(l record.Ledger) error {
			_, err := property.UpdateStatus(l, testPropertyId, u.name, u.aadhar, status)
			return err
		})
	}

	err := update(userA, "onSale")
	assert.Equal(t, fault.ErrUserNotFound, err, "unknown user")

	makeUser(t, d, userA)
	makeUser(t, d, userC)

	err = update(userA, "onSale")
	assert.Equal(t, fault.ErrPropertyNotFound, err, "unknown property")

	makeProperty(t, d, userA, testPropertyId, 50, "registered")
	before := snapshot(t, d)

	err = update(userC, "onSale")
	assert.Equal(t, fault.ErrNotOwner, err, "non owner")
	assert.True(t, fault.IsErrAuthorisation(err), "non owner is not an authorisation error")
	assert.Equal(t, before, snapshot(t, d), "property changed by non owner")

	// ownership is checked before the status value
	err = update(userC, "sold")
	assert.Equal(t, fault.ErrNotOwner, err, "non owner with bad status")

	err = update(userA, "sold")
	assert.Equal(t, fault.ErrInvalidStatus, err, "owner with bad status")
	assert.Equal(t, before, snapshot(t, d), "property changed by bad status")

	require.Nil(t, update(userA, "onSale"), "owner puts on sale")
	assert.Equal(t, record.OnSale, view(t, d, testPropertyId).Status, "status after update")

	require.Nil(t, update(userA, "registered"), "owner withdraws")
	assert.Equal(t, record.Registered, view(t, d, testPropertyId).Status, "status after withdraw")
}

func TestRegistrationRequest(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	request := func(u testUser, propertyId string, price int64, status string) error {
		return run(t, d, func(l record.Ledger) error {
			_, err := property.RegistrationRequest(l, propertyId, price, status, u.name, u.aadhar)
			return err
		})
	}

	err := request(userA, testPropertyId, 10, "registered")
	assert.Equal(t, fault.ErrUserNotFound, err, "unknown user")

	makeUser(t, d, userA)
	makeUser(t, d, userB)

	err = request(userA, testPropertyId, -1, "registered")
	assert.Equal(t, fault.ErrInvalidPrice, err, "negative price")
	assert.True(t, fault.IsErrInvalid(err), "negative price is not a validation error")

	err = request(userA, testPropertyId, 10, "sold")
	assert.Equal(t, fault.ErrInvalidStatus, err, "unknown status")

	// nothing stored by the failures
	err = run(t, d, func(l record.Ledger) error {
		_, err := property.ApproveRegistration(l, testPropertyId)
		return err
	})
	assert.Equal(t, fault.ErrRequestNotFound, err, "request stored by failed calls")

	require.Nil(t, request(userA, testPropertyId, 10, "registered"), "request")

	// request is not scoped by owner
	err = request(userB, testPropertyId, 20, "onSale")
	assert.Equal(t, fault.ErrAlreadyRequested, err, "second owner")
}

func TestApproveRegistration(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	makeUser(t, d, userA)

	err := run(t, d, func(l record.Ledger) error {
		_, err := property.RegistrationRequest(l, testPropertyId, 75, "onSale", userA.name, userA.aadhar)
		return err
	})
	require.Nil(t, err, "request")

	var p *record.Property
	err = run(t, d, func(l record.Ledger) error {
		var err error
		p, err = property.ApproveRegistration(l, testPropertyId)
		return err
	})
	require.Nil(t, err, "approve")
	assert.Equal(t, testPropertyId, p.PropertyId, "property id")
	assert.Equal(t, uint64(75), p.Price, "price")
	assert.Equal(t, record.OnSale, p.Status, "status")

	ownerKey, _ := record.UserKey(userA.name, userA.aadhar)
	assert.True(t, ownerKey.Equal(p.Owner), "owner")

	requestKey, _ := record.PropertyRequestKey(testPropertyId)
	propertyKey, _ := record.PropertyKey(testPropertyId)
	requestBytes, _ := d.Pool.Requests.Get(requestKey)
	propertyBytes, _ := d.Pool.Properties.Get(propertyKey)
	assert.Equal(t, requestBytes, propertyBytes, "property is not the verbatim request")

	err = run(t, d, func(l record.Ledger) error {
		_, err := property.ApproveRegistration(l, testPropertyId)
		return err
	})
	assert.Equal(t, fault.ErrPropertyAlreadyApproved, err, "second approval")
	assert.True(t, fault.IsErrExists(err), "second approval is not a conflict")
}

func TestDanglingOwner(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	makeUser(t, d, userB, "upg500")

	ghost, _ := record.UserKey("ghost", "0000")
	err := run(t, d, func(l record.Ledger) error {
		k, _ := record.PropertyKey(testPropertyId)
		return record.PutProperty(l, k, &record.Property{
			PropertyId: testPropertyId,
			Owner:      ghost,
			Price:      100,
			Status:     record.OnSale,
		})
	})
	require.Nil(t, err, "store orphan property")

	before := snapshot(t, d, userB)
	err = purchase(d, t, userB)
	assert.Equal(t, fault.ErrDanglingOwner, err, "purchase from missing owner")
	assert.True(t, fault.IsErrRecord(err), "dangling owner is not a record error")
	assert.Equal(t, before, snapshot(t, d, userB), "records changed")
}

func TestViewUnknown(t *testing.T) {
	d := openDatabase(t)
	defer d.Close()

	err := run(t, d, func(l record.Ledger) error {
		_, err := property.View(l, "nowhere")
		return err
	})
	assert.Equal(t, fault.ErrPropertyNotFound, err, "view unknown property")

	err = run(t, d, func(l record.Ledger) error {
		_, err := property.View(l, "")
		return err
	})
	assert.Equal(t, fault.ErrMissingParameters, err, "view without id")
}
