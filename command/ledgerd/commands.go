// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/background"
	"github.com/bitmark-inc/assetledger/configuration"
	"github.com/bitmark-inc/assetledger/executor"
	"github.com/bitmark-inc/assetledger/ledger"
	"github.com/bitmark-inc/assetledger/merkle"
	"github.com/bitmark-inc/assetledger/transactionrecord"
	"github.com/bitmark-inc/assetledger/wallet"
)

const (
	defaultListCount = 100
	maximumListCount = 1000
)

// setup command handler
//
// commands that need neither the configuration nor the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg", "fees", "info", "i":
		return false // defer processing until configuration is read

	case "run", "start", "apply", "a", "wallet", "w", "wallets", "list", "dump", "status", "s", "transaction", "tx":
		return false // defer processing until database is opened

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fees                                - display the fee schedule and amounts\n")
		fmt.Printf("\n")

		fmt.Printf("  info FILE                  (i)      - display the records in FILE with their fees\n")
		fmt.Printf("\n")

		fmt.Printf("  apply FILE...              (a)      - execute the records in each FILE in order\n")
		fmt.Printf("                                        FILE is binary records or JSON envelopes\n")
		fmt.Printf("\n")

		fmt.Printf("  run                        (start)  - apply files as they arrive in the inbox directory\n")
		fmt.Printf("                                        until interrupted\n")
		fmt.Printf("\n")

		fmt.Printf("  wallet ACCOUNT             (w)      - display the wallet of ACCOUNT\n")
		fmt.Printf("\n")

		fmt.Printf("  wallets [ACCOUNT [COUNT]]  (list)   - list wallets starting from ACCOUNT\n")
		fmt.Printf("\n")

		fmt.Printf("  dump FILE                           - write all wallets to FILE as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  status TXID                (s)      - display the status of a transaction\n")
		fmt.Printf("\n")

		fmt.Printf("  transaction TXID           (tx)     - display a stored transaction\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "config-test", "cfg":
		printJson("", options)

	case "fees":
		printJson("", options.Ledger)

	case "info", "i":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name argument")
		}
		records, err := readRecords(arguments[0], options.IsTesting())
		if nil != err {
			exitwithstatus.Message("read: %q  error: %s", arguments[0], err)
		}
		replies := make([]*transactionrecord.InfoReply, 0, len(records))
		for i, packed := range records {
			tx, _, err := packed.Unpack(options.IsTesting())
			if nil != err {
				exitwithstatus.Message("record: %d  error: %s", i, err)
			}
			reply, err := transactionrecord.Info(tx, options.Ledger.Fees)
			if nil != err {
				exitwithstatus.Message("record: %d  error: %s", i, err)
			}
			replies = append(replies, reply)
		}
		printJson("", replies)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// true if the command modifies the database
func isWriteCommand(arguments []string) bool {
	if 0 == len(arguments) {
		return false
	}
	switch arguments[0] {
	case "run", "start", "apply", "a":
		return true
	default:
		return false
	}
}

// data command handler
// the database is open so these commands can query and/or change it
func processDataCommand(log *logger.L, arguments []string, options *configuration.Configuration, processor *executor.Processor, verbose bool) {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	testnet := options.IsTesting()

	switch command {

	case "run", "start":
		w, err := newInboxWatcher(options.Inbox, processor, testnet, logger.New(watcherLoggerPrefix))
		if nil != err {
			exitwithstatus.Message("inbox: %q  error: %s", options.Inbox.Directory, err)
		}
		processes := background.Start(background.Processes{w}, nil)

		// wait for CTRL-C SIGINT or SIGTERM
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		log.Infof("received signal: %v", sig)

		processes.Stop()
		printJson("statistics", processor.Statistics())

	case "apply", "a":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name argument")
		}
		for _, fileName := range arguments {
			records, err := readRecords(fileName, testnet)
			if nil != err {
				exitwithstatus.Message("read: %q  error: %s", fileName, err)
			}
			log.Infof("apply: %q  records: %d", fileName, len(records))

			results := processor.ProcessBatch(records)
			if verbose {
				printJson(fileName, results)
			}
		}
		printJson("statistics", processor.Statistics())

	case "wallet", "w":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing account argument")
		}
		owner := getAccount(arguments[0])
		w, err := ledger.GetWallet(owner)
		if nil != err {
			exitwithstatus.Message("wallet: %s  error: %s", owner, err)
		}
		printJson("", w)

	case "wallets", "list":
		var start []byte
		if len(arguments) > 0 {
			start = getAccount(arguments[0]).PublicKeyBytes()
		}
		count := defaultListCount
		if len(arguments) > 1 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err || n <= 0 || n > maximumListCount {
				exitwithstatus.Message("error: count must be in range 1..%d", maximumListCount)
			}
			count = n
		}
		wallets, err := ledger.ListWallets(start, count)
		if nil != err {
			exitwithstatus.Message("list wallets error: %s", err)
		}
		printJson("", wallets)

	case "dump":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name argument")
		}
		all := make([]*wallet.Wallet, 0, defaultListCount)
		var start []byte
		for {
			wallets, err := ledger.ListWallets(start, maximumListCount)
			if nil != err {
				exitwithstatus.Message("list wallets error: %s", err)
			}
			if nil != start && 0 != len(wallets) {
				wallets = wallets[1:] // first is the previous last
			}
			if 0 == len(wallets) {
				break
			}
			all = append(all, wallets...)
			start = wallets[len(wallets)-1].Owner.PublicKeyBytes()
		}
		printJsonToFile(arguments[0], all)
		fmt.Printf("wrote: %d wallets to: %q\n", len(all), arguments[0])

	case "status", "s":
		txId := getTxId(arguments)
		status, err := ledger.GetStatus(txId)
		if nil != err {
			exitwithstatus.Message("status: %s  error: %s", txId, err)
		}
		printJson("", map[string]interface{}{
			"txId":   txId,
			"status": status,
		})

	case "transaction", "tx":
		txId := getTxId(arguments)
		packed, err := ledger.GetTransaction(txId)
		if nil != err {
			exitwithstatus.Message("transaction: %s  error: %s", txId, err)
		}
		tx, _, err := packed.Unpack(testnet)
		if nil != err {
			exitwithstatus.Message("transaction: %s  error: %s", txId, err)
		}
		envelope, err := transactionrecord.MakeEnvelope(tx)
		if nil != err {
			exitwithstatus.Message("transaction: %s  error: %s", txId, err)
		}
		printJson("", envelope)

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}
}

func getAccount(s string) *account.Account {
	a, err := account.AccountFromBase58(s)
	if nil != err {
		exitwithstatus.Message("account: %q  error: %s", s, err)
	}
	return a
}

func getTxId(arguments []string) merkle.Digest {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing transaction id argument")
	}
	var txId merkle.Digest
	err := txId.UnmarshalText([]byte(arguments[0]))
	if nil != err {
		exitwithstatus.Message("transaction id: %q  error: %s", arguments[0], err)
	}
	return txId
}
