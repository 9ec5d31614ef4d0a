// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
)

func TestFetchInPages(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	p := db.Pool.Assets
	populate(t, db, p, expectedElements)

	// something in another pool that must not appear
	populate(t, db, db.Pool.Counters, expectedElements[:1])

	cursor := p.NewFetchCursor()
	all := []storage.Element{}
	for {
		page, err := cursor.Fetch(3)
		assert.Nil(t, err, "fetch")
		if 0 == len(page) {
			break
		}
		assert.True(t, len(page) <= 3, "page too long: %d", len(page))
		all = append(all, page...)
	}
	assert.Equal(t, expectedElements, all, "wrong elements")
}

func TestFetchSeek(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	p := db.Pool.Assets
	populate(t, db, p, expectedElements)

	page, err := p.NewFetchCursor().Seek([]byte("key-seven")).Fetch(2)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, expectedElements[3:5], page, "wrong elements after seek")
}

func TestFetchPrefix(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	p := db.Pool.Assets
	populate(t, db, p, expectedElements)

	page, err := p.NewFetchCursor().Prefix([]byte("key-s")).Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, expectedElements[3:5], page, "wrong elements for prefix")
}

func TestFetchErrors(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	var cursor *storage.FetchCursor
	_, err := cursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err, "nil cursor")

	_, err = db.Pool.Assets.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestMap(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	p := db.Pool.Assets
	populate(t, db, p, expectedElements)

	seen := []storage.Element{}
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		seen = append(seen, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, expectedElements, seen, "wrong elements")

	stop := errors.New("stop")
	n := 0
	err = p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		if 2 == n {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err, "map did not return callback error")
	assert.Equal(t, 2, n, "map continued after error")
}
