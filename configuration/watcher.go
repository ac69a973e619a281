// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Watcher - notify when a configuration file is written or replaced
//
// the directory is watched rather than the file so that editors that
// save by rename are still seen
type Watcher struct {
	sync.Mutex
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	done     chan struct{}
	stopped  bool
}

// NewWatcher - watch an existing file
func NewWatcher(fileName string, log *logger.L) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		log.Errorf("parse file %s error: %s", fileName, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		log.Errorf("watch file %s error: %s", filePath, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// Changes - receives one value for each burst of changes
func (w *Watcher) Changes() <-chan struct{} {
	return w.change
}

// Start - begin watching in the background
func (w *Watcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.run()
	return nil
}

// Stop - end watching, repeated calls do nothing
func (w *Watcher) Stop() {
	w.Lock()
	defer w.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true
	close(w.done)
	_ = w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %s", event)

			if event.Op&fsnotify.Remove == fsnotify.Remove {
				w.log.Warnf("file %s removed", w.filePath)
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.notify()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// a pending notification already covers this change
func (w *Watcher) notify() {
	select {
	case w.change <- struct{}{}:
	default:
	}
}
