// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/rpc/participant"
)

// UserData - identity of a user
type UserData struct {
	Name         string
	AadharNumber string
}

// RequestUserData - a request to join
type RequestUserData struct {
	UserData
	EmailId     string
	PhoneNumber string
}

// RequestUser - ask to join, on the client listener
func (c *Client) RequestUser(data *RequestUserData) (*record.UserRequest, error) {
	args := participant.RequestArguments{
		Name:         data.Name,
		EmailId:      data.EmailId,
		PhoneNumber:  data.PhoneNumber,
		AadharNumber: data.AadharNumber,
	}

	var reply record.UserRequest
	if err := c.call("User.RequestNewUser", args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ApproveUser - approve a join request, on the registrar listener
func (c *Client) ApproveUser(data *UserData) (*record.User, error) {
	args := participant.UserArguments{
		Name:         data.Name,
		AadharNumber: data.AadharNumber,
	}

	var reply record.User
	if err := c.call("Registrar.ApproveNewUser", args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Recharge - credit a user from a bank transaction
func (c *Client) Recharge(data *UserData, bankTransactionId string) (*record.User, error) {
	args := participant.RechargeArguments{
		Name:              data.Name,
		AadharNumber:      data.AadharNumber,
		BankTransactionId: bankTransactionId,
	}

	var reply record.User
	if err := c.call("User.RechargeAccount", args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ViewUser - read a user as participant or registrar
func (c *Client) ViewUser(data *UserData, registrar bool) (*record.User, error) {
	args := participant.UserArguments{
		Name:         data.Name,
		AadharNumber: data.AadharNumber,
	}

	method := "User.ViewUser"
	if registrar {
		method = "Registrar.ViewUser"
	}

	var reply record.User
	if err := c.call(method, args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
