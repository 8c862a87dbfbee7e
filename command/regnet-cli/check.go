// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net"
	"strings"

	"github.com/regnet/regnetd/command/regnet-cli/rpccalls"
	"github.com/regnet/regnetd/fault"
)

// command line errors
var (
	ErrRequiredAadhar      = fault.InvalidError("aadhar number is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredName        = fault.InvalidError("name is required")
	ErrRequiredPropertyId  = fault.InvalidError("property id is required")
	ErrRequiredStatus      = fault.InvalidError("status is required")
	ErrRequiredTransaction = fault.InvalidError("bank transaction id is required")
)

// connect must be HOST:PORT
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	if _, _, err := net.SplitHostPort(connect); nil != err {
		return "", err
	}
	return connect, nil
}

// name and aadhar number are both required
func checkUser(name string, aadhar string) (*rpccalls.UserData, error) {
	name = strings.TrimSpace(name)
	if "" == name {
		return nil, ErrRequiredName
	}

	aadhar = strings.TrimSpace(aadhar)
	if "" == aadhar {
		return nil, ErrRequiredAadhar
	}

	return &rpccalls.UserData{
		Name:         name,
		AadharNumber: aadhar,
	}, nil
}

func checkPropertyId(propertyId string) (string, error) {
	propertyId = strings.TrimSpace(propertyId)
	if "" == propertyId {
		return "", ErrRequiredPropertyId
	}
	return propertyId, nil
}

func checkStatus(status string) (string, error) {
	status = strings.TrimSpace(status)
	if "" == status {
		return "", ErrRequiredStatus
	}
	return status, nil
}

func checkTransaction(id string) (string, error) {
	id = strings.TrimSpace(id)
	if "" == id {
		return "", ErrRequiredTransaction
	}
	return id, nil
}
