// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/assetregistry/fault"
)

// Transaction - a set of writes that reach the database together
//
// reads through the transaction see its own staged writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse    bool
	database *Database
	batch    *leveldb.Batch
	cache    Cache
}

func newTransaction(database *Database) *transaction {
	return &transaction{
		inUse:    false,
		database: database,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbPut, string(k), value)
	t.batch.Put(k, value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.Put(handle, key, encodeN(value))
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	value, op, found := t.cache.Get(string(handle.prefixKey(key)))
	if !found {
		return handle.Get(key)
	}
	if dbDelete == op {
		return nil
	}
	return value
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	_, op, found := t.cache.Get(string(handle.prefixKey(key)))
	if !found {
		return handle.Has(key)
	}
	return dbPut == op
}

// Commit - write the whole batch; on error nothing was written
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}

	t.database.RLock()
	db := t.database.db
	var err error
	if nil == db {
		err = fault.NotInitialised
	} else {
		err = db.Write(t.batch, nil)
	}
	t.database.RUnlock()

	t.reset()
	return err
}

// Abort - discard all staged writes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.reset()
}

// must hold lock
func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
