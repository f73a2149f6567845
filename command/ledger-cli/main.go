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

	"github.com/bitmark-inc/assetledger/chain"
)

type metadata struct {
	network string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// flags shared by every command that produces a record
var recordFlags = []cli.Flag{
	cli.Uint64Flag{
		Name:  "seed, s",
		Usage: " uniqueness `NUMBER` [default random]",
	},
	cli.StringFlag{
		Name:  "output, o",
		Value: "",
		Usage: " also write the packed record to `FILE`",
	},
	cli.BoolFlag{
		Name:  "hex, x",
		Usage: " also print the packed record as hex",
	},
}

func withRecordFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, recordFlags...)
}

func main() {

	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Usage = "create and sign ledger transaction records"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Ledger,
			Usage: " records for `NETWORK` [ledger|testing|local]",
		},
		cli.StringFlag{
			Name:  "key-file, k",
			Value: "",
			Usage: " private key of the signer in `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a private key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write the private key to `FILE`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " derive from 32 byte `HEX` seed",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "account",
			Usage:  "display the account of the key file",
			Action: runAccount,
		},
		{
			Name:   "create-wallet",
			Usage:  "open a wallet for the key file account",
			Flags:  withRecordFlags(),
			Action: runCreateWallet,
		},
		{
			Name:   "mint",
			Usage:  "credit the issuance to the key file account",
			Flags:  withRecordFlags(),
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "send value and assets to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: withRecordFlags(
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: " value to send `AMOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "asset",
					Usage: " asset to send `ID:QUANTITY` (repeatable)",
				},
			),
			Action: runTransfer,
		},
		{
			Name:      "add-assets",
			Usage:     "add assets to the key file account",
			ArgsUsage: "\n   (* = required)",
			Flags: withRecordFlags(
				cli.StringSliceFlag{
					Name:  "asset",
					Usage: "*asset to add `ID:QUANTITY` (repeatable)",
				},
			),
			Action: runAddAssets,
		},
		{
			Name:      "del-assets",
			Usage:     "remove assets from the key file account",
			ArgsUsage: "\n   (* = required)",
			Flags: withRecordFlags(
				cli.StringSliceFlag{
					Name:  "asset",
					Usage: "*asset to remove `ID:QUANTITY` (repeatable)",
				},
			),
			Action: runDelAssets,
		},
		{
			Name:      "trade",
			Usage:     "offer to buy assets, the seller must countersign",
			ArgsUsage: "\n   (* = required)",
			Flags: withRecordFlags(
				cli.StringFlag{
					Name:  "seller, r",
					Value: "",
					Usage: "*selling `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: " value paid to the seller `AMOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "asset",
					Usage: "*asset bought `ID:QUANTITY` (repeatable)",
				},
			),
			Action: runTrade,
		},
		{
			Name:      "exchange",
			Usage:     "offer a two way swap, the recipient must countersign",
			ArgsUsage: "\n   (* = required)",
			Flags: withRecordFlags(
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*other party `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "value",
					Usage: " value given `AMOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "asset",
					Usage: " asset given `ID:QUANTITY` (repeatable)",
				},
				cli.Uint64Flag{
					Name:  "want-value",
					Usage: " value received `AMOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "want-asset",
					Usage: " asset received `ID:QUANTITY` (repeatable)",
				},
			),
			Action: runExchange,
		},
		{
			Name:      "countersign",
			Usage:     "countersign a trade or exchange offer using the key file",
			ArgsUsage: "FILE\n   FILE is the JSON offer",
			Flags:     withRecordFlags(),
			Action:    runCountersign,
		},
		{
			Name:      "sign",
			Usage:     "sign a record as its sender using the key file",
			ArgsUsage: "FILE\n   FILE is the JSON record",
			Flags:     withRecordFlags(),
			Action:    runSign,
		},
		{
			Name:      "decode",
			Usage:     "display a packed record as JSON",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "+record as `HEX`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+binary record in `FILE`",
				},
			},
			Action: runDecode,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		switch network {
		case chain.Ledger, "live":
			network = chain.Ledger
		case chain.Testing, "test":
			network = chain.Testing
		case chain.Local, "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be ledger/testing/local", network)
		}

		c.App.Metadata["config"] = &metadata{
			network: network,
			testnet: chain.IsTesting(network),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
