// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/kycledger/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	State    *PoolHandle `prefix:"S"`
	History  *PoolHandle `prefix:"H"`
	Sequence *PoolHandle `prefix:"N"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	log      *logger.L
	database *leveldb.DB
	writeSet *writeSet

	// only one transaction at a time
	transaction sync.Mutex
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.database {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("storage")

	ok := false
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}
	poolData.database = db

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fault.ErrIncompatibleDatabase
	}

	if 0 == version {
		if readOnly {
			log.Critical("read only access to an untagged database")
			return fault.ErrIncompatibleDatabase
		}

		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return err
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	poolData.log = log
	poolData.writeSet = newWriteSet()

	log.Infof("opened: %q  version: %d  read only: %v", database, currentDBVersion, readOnly)

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.database {
		_ = poolData.database.Close()
		poolData.database = nil
	}
}

// Finalise - close the database connection
//
// waits for any open transaction to finish
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// open the database and read its version tag, 0 if untagged
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	db, err := leveldb.OpenFile(name, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return nil, 0, err
	}

	tag, err := db.Get(versionKey, nil)
	switch {
	case leveldb.ErrNotFound == err:
		return db, 0, nil
	case nil != err:
		db.Close()
		return nil, 0, err
	case 4 != len(tag):
		db.Close()
		return nil, 0, fmt.Errorf("%w: version tag length: %d", fault.ErrIncompatibleDatabase, len(tag))
	}

	return db, int(binary.BigEndian.Uint32(tag)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	tag := make([]byte, 4)
	binary.BigEndian.PutUint32(tag, uint32(version))
	return db.Put(versionKey, tag, nil)
}
