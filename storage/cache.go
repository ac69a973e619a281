// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// writeSet - values written by the open transaction
//
// reads check here first so a transaction sees its own writes
type writeSet struct {
	cache *cache.Cache
}

// expiry is disabled, the set is cleared at the end of each transaction
func newWriteSet() *writeSet {
	return &writeSet{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (w *writeSet) Get(key string) ([]byte, bool) {
	obj, found := w.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (w *writeSet) Set(key string, value []byte) {
	w.cache.Set(key, value, cache.NoExpiration)
}

func (w *writeSet) Clear() {
	w.cache.Flush()
}
