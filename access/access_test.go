// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/access"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fixtures"
	"github.com/bitmark-inc/assetregistry/storage"
)

func setup(t *testing.T) (*storage.Database, *access.Store) {
	fixtures.SetupTestLogger()
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db, access.New(db.Pool.Access)
}

func teardown(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

func commit(t *testing.T, db *storage.Database, f func(storage.Transaction)) {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	f(trx)
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestEnableAndRevoke(t *testing.T) {
	db, store := setup(t)
	defer teardown(db)

	id := asset.Identifier(1)

	assert.False(t, store.IsEnabled(nil, id, "alice"), "missing row")

	commit(t, db, func(trx storage.Transaction) {
		store.Enable(trx, id, "alice")
		assert.True(t, store.IsEnabled(trx, id, "alice"), "staged row")
		assert.False(t, store.IsEnabled(nil, id, "alice"), "uncommitted row")
	})
	assert.True(t, store.IsEnabled(nil, id, "alice"), "enabled row")
	assert.False(t, store.IsEnabled(nil, asset.Identifier(2), "alice"), "other asset")
	assert.False(t, store.IsEnabled(nil, id, "alic"), "accessor prefix")

	commit(t, db, func(trx storage.Transaction) {
		trx.Put(db.Pool.Access, access.Key(id, "bob"), []byte{0x00})
	})
	assert.False(t, store.IsEnabled(nil, id, "bob"), "disabled row")

	commit(t, db, func(trx storage.Transaction) {
		store.Revoke(trx, id, "alice")
		assert.False(t, store.IsEnabled(trx, id, "alice"), "staged revoke")
	})
	assert.False(t, store.IsEnabled(nil, id, "alice"), "revoked row")
}

func TestList(t *testing.T) {
	db, store := setup(t)
	defer teardown(db)

	commit(t, db, func(trx storage.Transaction) {
		store.Enable(trx, 1, "carol")
		store.Enable(trx, 1, "alice")
		trx.Put(db.Pool.Access, access.Key(1, "bob"), []byte{0x00})
		store.Enable(trx, 2, "alice")
		store.Enable(trx, 256, "dave")
	})

	grants, err := store.List(1)
	assert.Nil(t, err, "list")
	expected := []access.Grant{
		{Id: 1, Accessor: "alice", Enabled: true},
		{Id: 1, Accessor: "bob", Enabled: false},
		{Id: 1, Accessor: "carol", Enabled: true},
	}
	assert.Equal(t, expected, grants, "grants of 1")

	grants, err = store.List(3)
	assert.Nil(t, err, "list")
	assert.Equal(t, 0, len(grants), "grants of 3")
}

func TestDecode(t *testing.T) {
	g, err := access.Decode(access.Key(9, "eve"), []byte{0x01})
	assert.Nil(t, err, "decode")
	assert.Equal(t, access.Grant{Id: 9, Accessor: "eve", Enabled: true}, g, "grant")

	_, err = access.Decode([]byte{0x00}, []byte{0x01})
	assert.NotNil(t, err, "short key")
}
