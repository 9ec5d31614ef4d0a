// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/bitmark-inc/assetregistry/access"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/storage"
)

type assetItem struct {
	Id     asset.Identifier `json:"id"`
	Digest asset.Digest     `json:"digest"`
	Record *asset.Record    `json:"record"`
}

type counterItem struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

type rawItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Error string `json:"error"`
}

// find the pool whose prefix tag matches
func poolForTag(db *storage.Database, tag string) (*storage.PoolHandle, error) {
	poolType := reflect.TypeOf(db.Pool)
	poolValue := reflect.ValueOf(db.Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		if tag == fieldInfo.Tag.Get("prefix") {
			if p, ok := poolValue.Field(i).Interface().(*storage.PoolHandle); ok && nil != p {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("no pool corresponding to: %q", tag)
}

// write count decoded rows of a pool as JSON lines, starting from the
// asset identifier start
func dump(w io.Writer, db *storage.Database, tag string, start uint64, count int) error {
	p, err := poolForTag(db, tag)
	if nil != err {
		return err
	}

	cursor := p.NewFetchCursor()
	if start > 0 && p != db.Pool.Counters {
		cursor.Seek(asset.Identifier(start).Bytes())
	}

	data, err := cursor.Fetch(count)
	if nil != err {
		return err
	}

	encoder := json.NewEncoder(w)
	for _, e := range data {
		if err := encoder.Encode(decode(db, p, e)); nil != err {
			return err
		}
	}
	return nil
}

// convert a row to its printable form; undecodable rows are shown raw
func decode(db *storage.Database, p *storage.PoolHandle, e storage.Element) interface{} {
	raw := func(err error) interface{} {
		return rawItem{
			Key:   hex.EncodeToString(e.Key),
			Value: hex.EncodeToString(e.Value),
			Error: err.Error(),
		}
	}

	switch p {
	case db.Pool.Assets:
		id, err := asset.IdentifierFromBytes(e.Key)
		if nil != err {
			return raw(err)
		}
		packed := asset.Packed(e.Value)
		record, err := packed.Unpack()
		if nil != err {
			return raw(err)
		}
		return assetItem{
			Id:     id,
			Digest: packed.Digest(),
			Record: record,
		}

	case db.Pool.Access:
		g, err := access.Decode(e.Key, e.Value)
		if nil != err {
			return raw(err)
		}
		return g

	case db.Pool.Counters:
		if len(e.Value) < 8 {
			return raw(fmt.Errorf("truncated counter"))
		}
		return counterItem{
			Name:  string(e.Key),
			Value: binary.BigEndian.Uint64(e.Value[:8]),
		}
	}
	return raw(fmt.Errorf("unknown pool"))
}
