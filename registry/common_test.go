// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fixtures"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/registry/mocks"
	"github.com/bitmark-inc/assetregistry/storage"
)

const (
	administrator = account.Identity("administrator")
	alice         = account.Identity("alice")
	bob           = account.Identity("bob")
	carol         = account.Identity("carol")
)

// registry over an in memory database with a controllable height
type testRegistry struct {
	*registry.Registry
	db     *storage.Database
	ctl    *gomock.Controller
	height uint64
}

func setup(t *testing.T) *testRegistry {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return newTestRegistry(t, db, nil)
}

func newTestRegistry(t *testing.T, db *storage.Database, metrics *registry.Metrics) *testRegistry {
	tr := &testRegistry{
		db:     db,
		ctl:    gomock.NewController(t),
		height: 100,
	}

	clock := mocks.NewMockClock(tr.ctl)
	clock.EXPECT().Height().DoAndReturn(func() uint64 {
		return tr.height
	}).AnyTimes()

	r, err := registry.New(db, clock, administrator, metrics)
	if nil != err {
		t.Fatalf("registry error: %s", err)
	}
	tr.Registry = r
	return tr
}

func teardown(tr *testRegistry) {
	tr.ctl.Finish()
	tr.db.Close()
	fixtures.TeardownTestLogger()
}

// create the standard asset as caller
func (tr *testRegistry) createPhoto(t *testing.T, caller account.Identity) asset.Identifier {
	id, err := tr.Create(caller, "Photo", 1024, "desc", []string{"a"})
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	return id
}

// the stored record, nil if absent
func (tr *testRegistry) stored(t *testing.T, id asset.Identifier) *asset.Record {
	packed := tr.db.Pool.Assets.Get(id.Bytes())
	if nil == packed {
		return nil
	}
	record, err := asset.Packed(packed).Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	return record
}
