// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

const defaultConnect = "127.0.0.1:2130"

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "regnet-cli"
	app.Usage = "property registration network client"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	userFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "name, n",
			Value: "",
			Usage: "*user `NAME`",
		},
		cli.StringFlag{
			Name:  "aadhar, a",
			Value: "",
			Usage: "*aadhar `NUMBER`",
		},
	}
	propertyFlag := cli.StringFlag{
		Name:  "property, p",
		Value: "",
		Usage: "*property `ID`",
	}
	registrarFlag := cli.BoolFlag{
		Name:  "registrar, r",
		Usage: " read through the registrar listener",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " regnetd listener `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "request-user",
			Usage:     "ask to join the network",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "email, e",
					Value: "",
					Usage: " email `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "phone, P",
					Value: "",
					Usage: " phone `NUMBER`",
				},
			}, userFlags...),
			Action: runRequestUser,
		},
		{
			Name:      "approve-user",
			Usage:     "approve a request to join (registrar listener)",
			ArgsUsage: "\n   (* = required)",
			Flags:     userFlags,
			Action:    runApproveUser,
		},
		{
			Name:      "recharge",
			Usage:     "credit upgradCoins from a bank transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*bank transaction `ID` [upg100|upg500|upg1000]",
				},
			}, userFlags...),
			Action: runRecharge,
		},
		{
			Name:      "user",
			Usage:     "display a user",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{registrarFlag}, userFlags...),
			Action:    runUser,
		},
		{
			Name:      "request-property",
			Usage:     "ask for a property to be registered",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				propertyFlag,
				cli.Int64Flag{
					Name:  "price, m",
					Value: 0,
					Usage: "*price in upgradCoins `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Value: "registered",
					Usage: " initial `STATUS` [registered|onSale]",
				},
			}, userFlags...),
			Action: runRequestProperty,
		},
		{
			Name:      "approve-property",
			Usage:     "register a requested property (registrar listener)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{propertyFlag},
			Action:    runApproveProperty,
		},
		{
			Name:      "property",
			Usage:     "display a property",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{propertyFlag, registrarFlag},
			Action:    runProperty,
		},
		{
			Name:      "update-status",
			Usage:     "owner puts a property on sale or withdraws it",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				propertyFlag,
				cli.StringFlag{
					Name:  "status, s",
					Value: "",
					Usage: "*new `STATUS` [registered|onSale]",
				},
			}, userFlags...),
			Action: runUpdateStatus,
		},
		{
			Name:      "purchase",
			Usage:     "buy a property that is on sale",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{propertyFlag}, userFlags...),
			Action:    runPurchase,
		},
		{
			Name:   "info",
			Usage:  "display regnetd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display regnet-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "connect: %q\n", connect)
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: connect,
				verbose: verbose,
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}
