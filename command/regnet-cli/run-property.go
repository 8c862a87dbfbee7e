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

func runRequestProperty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	propertyId, err := checkPropertyId(c.String("property"))
	if nil != err {
		return err
	}

	status, err := checkStatus(c.String("status"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RequestProperty(&rpccalls.PropertyRequestData{
		UserData:   *user,
		PropertyId: propertyId,
		Price:      c.Int64("price"),
		Status:     status,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runApproveProperty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	propertyId, err := checkPropertyId(c.String("property"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ApproveProperty(propertyId)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runProperty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	propertyId, err := checkPropertyId(c.String("property"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ViewProperty(propertyId, c.Bool("registrar"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runUpdateStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	propertyId, err := checkPropertyId(c.String("property"))
	if nil != err {
		return err
	}

	status, err := checkStatus(c.String("status"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UpdateStatus(owner, propertyId, status)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runPurchase(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buyer, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	propertyId, err := checkPropertyId(c.String("property"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "purchase: %s by: %s\n", propertyId, buyer.Name)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Purchase(buyer, propertyId)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
