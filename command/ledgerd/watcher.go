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
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/assetledger/configuration"
	"github.com/bitmark-inc/assetledger/executor"
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/util"
)

const (
	watcherLoggerPrefix = "watcher"

	// a file must be quiet for this long before it is applied
	settleDelay = 250 * time.Millisecond

	resultSuffix = ".result.json"
)

// inboxResult - written alongside each file moved to the done directory
type inboxResult struct {
	File    string            `json:"file"`
	Error   string            `json:"error,omitempty"`
	Results []executor.Result `json:"results"`
}

// inboxWatcher - applies each record file written to the inbox
type inboxWatcher struct {
	log       *logger.L
	watcher   *fsnotify.Watcher
	processor *executor.Processor
	inbox     string
	done      string
	testnet   bool
}

func newInboxWatcher(inbox configuration.InboxType, processor *executor.Processor, testnet bool, log *logger.L) (*inboxWatcher, error) {
	if nil == log {
		logger.Panic("watcher: nil logger")
	}

	if !util.IsDirectory(inbox.Directory) || !util.IsDirectory(inbox.Done) {
		return nil, fault.ErrNotADirectory
	}
	if inbox.Directory == inbox.Done {
		return nil, fault.ErrInboxIsDoneDirectory
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	err = watcher.Add(inbox.Directory)
	if nil != err {
		log.Errorf("watcher add: %q  error: %s", inbox.Directory, err)
		watcher.Close()
		return nil, err
	}

	return &inboxWatcher{
		log:       log,
		watcher:   watcher,
		processor: processor,
		inbox:     inbox.Directory,
		done:      inbox.Done,
		testnet:   testnet,
	}, nil
}

// Run - background process loop
func (w *inboxWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log

	log.Infof("watching: %q", w.inbox)
	defer w.watcher.Close()

	w.scan()

	pending := make(map[string]time.Time)
	tick := time.NewTicker(settleDelay)
	defer tick.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			log.Debugf("file event: %v", event)
			switch {
			case watcherEventFileRemove(event):
				delete(pending, event.Name)
			case watcherEventFileChange(event):
				pending[event.Name] = time.Now()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)

		case now := <-tick.C:
			for fileName, changed := range pending {
				if now.Sub(changed) >= settleDelay {
					delete(pending, fileName)
					w.processFile(fileName)
				}
			}
		}
	}
	log.Info("shutting down…")
}

// apply any files left in the inbox from a previous run
func (w *inboxWatcher) scan() {
	files, err := ioutil.ReadDir(w.inbox)
	if nil != err {
		w.log.Errorf("read inbox: %q  error: %s", w.inbox, err)
		return
	}
	for _, f := range files {
		w.processFile(filepath.Join(w.inbox, f.Name()))
	}
}

// apply one file then move it to the done directory
func (w *inboxWatcher) processFile(fileName string) {
	log := w.log

	baseName := filepath.Base(fileName)
	if strings.HasPrefix(baseName, ".") {
		return
	}
	fileInfo, err := os.Stat(fileName)
	if nil != err || !fileInfo.Mode().IsRegular() {
		return
	}

	result := inboxResult{
		File:    baseName,
		Results: []executor.Result{},
	}

	records, err := readRecords(fileName, w.testnet)
	if nil != err {
		log.Errorf("read: %q  error: %s", fileName, err)
		result.Error = err.Error()
	} else {
		log.Infof("apply: %q  records: %d", fileName, len(records))
		result.Results = w.processor.ProcessBatch(records)
	}

	doneName := filepath.Join(w.done, baseName)
	err = os.Rename(fileName, doneName)
	if nil != err {
		log.Errorf("move: %q  to: %q  error: %s", fileName, doneName, err)
		return
	}

	buffer, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		log.Errorf("result: %q  marshal error: %s", baseName, err)
		return
	}
	err = ioutil.WriteFile(doneName+resultSuffix, append(buffer, '\n'), 0600)
	if nil != err {
		log.Errorf("result: %q  write error: %s", baseName, err)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Write == fsnotify.Write
}
