// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/rpc/participant"
)

// PropertyRequestData - a property to be registered for its owner
type PropertyRequestData struct {
	UserData
	PropertyId string
	Price      int64
	Status     string
}

// RequestProperty - ask for registration, on the client listener
func (c *Client) RequestProperty(data *PropertyRequestData) (*record.PropertyRequest, error) {
	args := participant.PropertyRequestArguments{
		PropertyId:   data.PropertyId,
		Price:        data.Price,
		Status:       data.Status,
		Name:         data.Name,
		AadharNumber: data.AadharNumber,
	}

	var reply record.PropertyRequest
	if err := c.call("User.PropertyRegistrationRequest", args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ApproveProperty - register a requested property, on the registrar listener
func (c *Client) ApproveProperty(propertyId string) (*record.Property, error) {
	args := participant.PropertyArguments{
		PropertyId: propertyId,
	}

	var reply record.Property
	if err := c.call("Registrar.ApprovePropertyRegistration", args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ViewProperty - read a property as participant or registrar
func (c *Client) ViewProperty(propertyId string, registrar bool) (*record.Property, error) {
	args := participant.PropertyArguments{
		PropertyId: propertyId,
	}

	method := "User.ViewProperty"
	if registrar {
		method = "Registrar.ViewProperty"
	}

	var reply record.Property
	if err := c.call(method, args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateStatus - owner changes the sale status
func (c *Client) UpdateStatus(owner *UserData, propertyId string, status string) (*record.Property, error) {
	args := participant.StatusArguments{
		PropertyId:   propertyId,
		Name:         owner.Name,
		AadharNumber: owner.AadharNumber,
		Status:       status,
	}

	var reply record.Property
	if err := c.call("User.UpdatePropertyStatus", args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Purchase - buyer takes a property that is on sale
func (c *Client) Purchase(buyer *UserData, propertyId string) (*record.Property, error) {
	args := participant.PurchaseArguments{
		PropertyId:   propertyId,
		Name:         buyer.Name,
		AadharNumber: buyer.AadharNumber,
	}

	var reply record.Property
	if err := c.call("User.PurchaseProperty", args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
