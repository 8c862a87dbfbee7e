// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/regnet/regnetd/command/regnet-cli/rpccalls"
)

func runRequestUser(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RequestUser(&rpccalls.RequestUserData{
		UserData:    *user,
		EmailId:     c.String("email"),
		PhoneNumber: c.String("phone"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runApproveUser(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ApproveUser(user)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRecharge(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	transaction, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "recharge: %s with: %s\n", user.Name, transaction)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Recharge(user, transaction)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runUser(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ViewUser(user, c.Bool("registrar"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
