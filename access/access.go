// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - per asset access grants
//
// a grant row is keyed by asset identifier followed by the accessor:
//
//	G ++ id(8 bytes) ++ accessor  →  0x01 (enabled) | 0x00 (disabled)
//
// a missing row means no access; rows are not removed when the asset
// they refer to is deleted
package access

import (
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/storage"
)

// flag value of an enabled row; any other value reads as disabled
const enabled = 0x01

// Grant - one decoded grant row
type Grant struct {
	Id       asset.Identifier `json:"id"`
	Accessor account.Identity `json:"accessor"`
	Enabled  bool             `json:"enabled"`
}

// Store - grants held in one pool
type Store struct {
	pool *storage.PoolHandle
}

// New - grants over the given pool
func New(pool *storage.PoolHandle) *Store {
	return &Store{
		pool: pool,
	}
}

// Key - the row key for an accessor of an asset
func Key(id asset.Identifier, accessor account.Identity) []byte {
	return append(id.Bytes(), accessor.Bytes()...)
}

// IsEnabled - true only for a row with the enabled flag
func (s *Store) IsEnabled(trx storage.Transaction, id asset.Identifier, accessor account.Identity) bool {
	var value []byte
	if nil == trx {
		value = s.pool.Get(Key(id, accessor))
	} else {
		value = trx.Get(s.pool, Key(id, accessor))
	}
	return 1 == len(value) && enabled == value[0]
}

// Enable - stage an enabled row
func (s *Store) Enable(trx storage.Transaction, id asset.Identifier, accessor account.Identity) {
	trx.Put(s.pool, Key(id, accessor), []byte{enabled})
}

// Revoke - stage removal of the row
func (s *Store) Revoke(trx storage.Transaction, id asset.Identifier, accessor account.Identity) {
	trx.Delete(s.pool, Key(id, accessor))
}

// List - all grant rows of an asset in accessor order
func (s *Store) List(id asset.Identifier) ([]Grant, error) {
	grants := make([]Grant, 0, 4)
	err := s.pool.NewFetchCursor().Prefix(id.Bytes()).Map(func(key []byte, value []byte) error {
		g, err := Decode(key, value)
		if nil != err {
			return err
		}
		grants = append(grants, g)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return grants, nil
}

// Decode - split a stored row into its parts
func Decode(key []byte, value []byte) (Grant, error) {
	id, err := asset.IdentifierFromBytes(key)
	if nil != err {
		return Grant{}, err
	}
	return Grant{
		Id:       id,
		Accessor: account.FromBytes(key[len(id.Bytes()):]),
		Enabled:  1 == len(value) && enabled == value[0],
	}, nil
}
