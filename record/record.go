// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"time"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
)

// namespaces of the composite keys
const (
	UserNamespace     = "org.property-registration-network.regnet.user"
	RequestNamespace  = "org.property-registration-network.regnet.request"
	PropertyNamespace = "org.property-registration-network.regnet.property"
)

// Status - sale state of a property
type Status string

// all possible status values
const (
	Registered Status = "registered"
	OnSale     Status = "onSale"
)

// ParseStatus - accept only the known status values
func ParseStatus(s string) (Status, error) {
	switch status := Status(s); status {
	case Registered, OnSale:
		return status, nil
	default:
		return "", fault.ErrInvalidStatus
	}
}

// UnmarshalText - reject unknown status values
func (s *Status) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if nil != err {
		return err
	}
	*s = status
	return nil
}

// UserRequest - a request to join the network
type UserRequest struct {
	Name         string    `json:"name"`
	EmailId      string    `json:"emailId"`
	PhoneNumber  string    `json:"phoneNumber"`
	AadharNumber string    `json:"aadharNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}

// User - an approved participant
type User struct {
	Name         string    `json:"name"`
	EmailId      string    `json:"emailId"`
	PhoneNumber  string    `json:"phoneNumber"`
	AadharNumber string    `json:"aadharNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpgradCoins  uint64    `json:"upgradCoins"`
}

// PropertyRequest - a request to register a property
type PropertyRequest struct {
	PropertyId string           `json:"propertyId"`
	Owner      compositekey.Key `json:"owner"`
	Price      uint64           `json:"price"`
	Status     Status           `json:"status"`
}

// Property - a registered property
type Property struct {
	PropertyId string           `json:"propertyId"`
	Owner      compositekey.Key `json:"owner"`
	Price      uint64           `json:"price"`
	Status     Status           `json:"status"`
}

// UserKey - key of a user record
func UserKey(name string, aadharNumber string) (compositekey.Key, error) {
	return compositekey.New(UserNamespace, name, aadharNumber)
}

// UserRequestKey - key of a request to join
func UserRequestKey(name string, aadharNumber string) (compositekey.Key, error) {
	return compositekey.New(RequestNamespace, name, aadharNumber)
}

// PropertyRequestKey - key of a property registration request
//
// the key is not scoped by owner
func PropertyRequestKey(propertyId string) (compositekey.Key, error) {
	return compositekey.New(RequestNamespace, propertyId)
}

// PropertyKey - key of a property record
func PropertyKey(propertyId string) (compositekey.Key, error) {
	return compositekey.New(PropertyNamespace, propertyId)
}

// IsUserKey - check that a key refers to a user record
func IsUserKey(k compositekey.Key) bool {
	return UserNamespace == k.Namespace() && 2 == len(k.Components())
}
