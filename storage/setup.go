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
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will fail
type Pools struct {
	Assets   *PoolHandle `prefix:"A"`
	Access   *PoolHandle `prefix:"G"`
	Counters *PoolHandle `prefix:"N"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDatabaseVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open LevelDB and its pools
type Database struct {
	sync.RWMutex
	log      *logger.L
	db       *leveldb.DB
	readOnly bool
	trx      *transaction

	Pool Pools
}

// Open - open up a database file
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(name, db, readOnly)
}

// OpenMemory - open an empty database that only lives in memory
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup("memory", db, ReadWrite)
}

func setup(name string, db *leveldb.DB, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDatabaseVersion {
		log.Criticalf("database: %s version: %d > current version: %d", name, version, currentDatabaseVersion)
		db.Close()
		return nil, fault.DatabaseVersionTooNew
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %s has no version", name)
			db.Close()
			return nil, fault.UnversionedDatabase
		}

		// database was empty so tag as current version
		if err := putVersion(db, currentDatabaseVersion); nil != err {
			db.Close()
			return nil, err
		}
	}

	d := &Database{
		log:      log,
		db:       db,
		readOnly: readOnly,
	}
	d.trx = newTransaction(d)

	if err := d.makePools(); nil != err {
		db.Close()
		return nil, err
	}

	log.Infof("opened: %s  read only: %v", name, readOnly)
	return d, nil
}

// fill in every field of Pools from its prefix tag
func (d *Database) makePools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) || 0 == prefixTag[0] {
			d.log.Errorf("pool: %s has invalid prefix: %q", fieldInfo.Name, prefixTag)
			return fault.InvalidPrefix
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil != d.db {
		d.db.Close()
		d.db = nil
		d.log.Info("closed")
	}
}

// IsReadOnly - true if writes are refused
func (d *Database) IsReadOnly() bool {
	return d.readOnly
}

// Version - the version tag of the open database
func (d *Database) Version() int {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return 0
	}
	v, err := getVersion(d.db)
	fault.PanicIfError("storage.Version", err)
	return v
}

// Begin - start the single write transaction of this database
func (d *Database) Begin() (Transaction, error) {
	if d.readOnly {
		return nil, fault.DatabaseIsReadOnly
	}
	err := d.trx.begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

// return the version number; zero if the database is untagged
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
