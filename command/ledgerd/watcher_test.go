// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetledger/background"
	"github.com/bitmark-inc/assetledger/configuration"
	"github.com/bitmark-inc/assetledger/executor"
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/fixtures"
	"github.com/bitmark-inc/assetledger/ledger"
	"github.com/bitmark-inc/assetledger/storage"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

func setupWatcher(t *testing.T) (*inboxWatcher, configuration.InboxType) {
	dir := fixtures.SetupTestLogger()

	err := storage.Initialise(fixtures.DatabaseName("watcher.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	inbox := configuration.InboxType{
		Directory: filepath.Join(dir, "inbox"),
		Done:      filepath.Join(dir, "done"),
	}
	for _, d := range []string{inbox.Directory, inbox.Done} {
		if err := os.MkdirAll(d, 0700); nil != err {
			t.Fatalf("mkdir: %q error: %s", d, err)
		}
	}

	e := executor.New(executor.DefaultParameters(), logger.New("executor"))
	p := executor.NewProcessor(e, true, logger.New("processor"))

	w, err := newInboxWatcher(inbox, p, true, logger.New(watcherLoggerPrefix))
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	return w, inbox
}

func teardownWatcher() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func readResult(t *testing.T, fileName string) inboxResult {
	buffer, err := ioutil.ReadFile(fileName)
	if nil != err {
		t.Fatalf("read result: %q error: %s", fileName, err)
	}
	result := inboxResult{}
	err = json.Unmarshal(buffer, &result)
	if nil != err {
		t.Fatalf("decode result: %q error: %s", fileName, err)
	}
	return result
}

func TestWatcherProcessFile(t *testing.T) {
	w, inbox := setupWatcher(t)
	defer teardownWatcher()
	defer w.watcher.Close()

	records, packed := signedRecords(t)
	binary := append(append([]byte{}, packed[0]...), packed[1]...)

	fileName := filepath.Join(inbox.Directory, "batch.bin")
	err := ioutil.WriteFile(fileName, binary, 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	w.processFile(fileName)

	_, err = os.Stat(fileName)
	assert.True(t, os.IsNotExist(err), "file still in inbox")
	_, err = os.Stat(filepath.Join(inbox.Done, "batch.bin"))
	assert.Nil(t, err, "file moved to done")

	result := readResult(t, filepath.Join(inbox.Done, "batch.bin"+resultSuffix))
	assert.Equal(t, "batch.bin", result.File, "file")
	assert.Equal(t, "", result.Error, "error")
	if assert.Equal(t, 2, len(result.Results), "result count") {
		assert.Equal(t, packed[0].MakeLink(), result.Results[0].TxId, "create tx id")
		assert.Equal(t, executor.OutcomeApplied, result.Results[0].Outcome, "create outcome")
		assert.Equal(t, packed[1].MakeLink(), result.Results[1].TxId, "transfer tx id")
	}

	owner := records[0].(*transactionrecord.CreateWallet).Owner
	_, err = ledger.GetWallet(owner)
	assert.Nil(t, err, "wallet created")
}

func TestWatcherProcessBadFile(t *testing.T) {
	w, inbox := setupWatcher(t)
	defer teardownWatcher()
	defer w.watcher.Close()

	fileName := filepath.Join(inbox.Directory, "garbage")
	err := ioutil.WriteFile(fileName, []byte{0xff, 0xff, 0xff}, 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	w.processFile(fileName)

	result := readResult(t, filepath.Join(inbox.Done, "garbage"+resultSuffix))
	assert.NotEqual(t, "", result.Error, "error")
	assert.Equal(t, 0, len(result.Results), "result count")
}

func TestWatcherIgnoresHiddenFiles(t *testing.T) {
	w, inbox := setupWatcher(t)
	defer teardownWatcher()
	defer w.watcher.Close()

	fileName := filepath.Join(inbox.Directory, ".partial")
	err := ioutil.WriteFile(fileName, []byte{1, 2, 3}, 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	w.processFile(fileName)

	_, err = os.Stat(fileName)
	assert.Nil(t, err, "hidden file left in inbox")

	// absent files are ignored
	w.processFile(filepath.Join(inbox.Directory, "absent"))
}

func TestWatcherRun(t *testing.T) {
	w, inbox := setupWatcher(t)
	defer teardownWatcher()

	// present before the watcher starts
	_, packed := signedRecords(t)
	err := ioutil.WriteFile(filepath.Join(inbox.Directory, "first.bin"), packed[0], 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	processes := background.Start(background.Processes{w}, nil)

	// arrives while running
	err = ioutil.WriteFile(filepath.Join(inbox.Directory, "second.bin"), packed[1], 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	second := filepath.Join(inbox.Done, "second.bin"+resultSuffix)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(second); nil == err {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	processes.Stop()

	first := readResult(t, filepath.Join(inbox.Done, "first.bin"+resultSuffix))
	assert.Equal(t, 1, len(first.Results), "first results")
	result := readResult(t, second)
	assert.Equal(t, 1, len(result.Results), "second results")

	stats := w.processor.Statistics()
	assert.Equal(t, uint64(2), stats.Applied+stats.Skipped, "processed")
}

func TestNewWatcherErrors(t *testing.T) {
	dir := fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(watcherLoggerPrefix)

	_, err := newInboxWatcher(configuration.InboxType{
		Directory: filepath.Join(dir, "absent"),
		Done:      dir,
	}, nil, true, log)
	assert.NotNil(t, err, "absent inbox")

	_, err = newInboxWatcher(configuration.InboxType{
		Directory: dir,
		Done:      dir,
	}, nil, true, log)
	assert.Equal(t, fault.ErrInboxIsDoneDirectory, err, "same directory")

	fileName := filepath.Join(dir, "plain")
	err = ioutil.WriteFile(fileName, []byte{}, 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	_, err = newInboxWatcher(configuration.InboxType{
		Directory: fileName,
		Done:      dir,
	}, nil, true, log)
	assert.Equal(t, fault.ErrNotADirectory, err, "not a directory")
}
