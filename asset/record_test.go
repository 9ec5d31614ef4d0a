// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fault"
)

func makeRecord() *asset.Record {
	return &asset.Record{
		Name:      "Photo",
		Owner:     "alice",
		Size:      1024,
		CreatedAt: 7,
		Summary:   "desc",
		Labels:    []string{"a"},
	}
}

func TestIdentifierBytes(t *testing.T) {
	id := asset.Identifier(0x0102030405060708)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, id.Bytes(), "key bytes")
	assert.Equal(t, "72623859790382856", id.String(), "string")

	decoded, err := asset.IdentifierFromBytes(append(id.Bytes(), 'x'))
	assert.Nil(t, err, "decode")
	assert.Equal(t, id, decoded, "decoded identifier")

	_, err = asset.IdentifierFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.RecordCorrupt, err, "short key")
}

func TestIdentifierOrdering(t *testing.T) {
	assert.True(t, string(asset.Identifier(255).Bytes()) < string(asset.Identifier(256).Bytes()), "key order")
}

func TestPack(t *testing.T) {
	expected := asset.Packed{
		0x01,
		0x05, 'P', 'h', 'o', 't', 'o',
		0x04, 'd', 'e', 's', 'c',
		0x05, 'a', 'l', 'i', 'c', 'e',
		0x80, 0x08,
		0x07,
		0x01, 0x01, 'a',
	}

	packed, err := makeRecord().Pack()
	assert.Nil(t, err, "pack")
	assert.Equal(t, expected, packed, "packed bytes")

	r, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, makeRecord(), r, "unpacked record")
}

func TestPackLongOwner(t *testing.T) {
	r := makeRecord()
	r.Owner = account.Identity(strings.Repeat("k", 9000))

	packed, err := r.Pack()
	assert.Nil(t, err, "pack")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, r, unpacked, "unpacked record")
}

func TestPackInvalid(t *testing.T) {
	r := makeRecord()
	r.Size = 0
	_, err := r.Pack()
	assert.Equal(t, fault.SizeConstraintViolation, err, "zero size")
}

func TestUnpackCorrupt(t *testing.T) {
	packed, err := makeRecord().Pack()
	assert.Nil(t, err, "pack")

	for i := 0; i < len(packed); i += 1 {
		_, err := packed[:i].Unpack()
		assert.Equal(t, fault.RecordCorrupt, err, "truncated to %d", i)
	}

	extra := append(append(asset.Packed{}, packed...), 0x00)
	_, err = extra.Unpack()
	assert.Equal(t, fault.RecordCorrupt, err, "trailing byte")

	wrongTag := append(asset.Packed{0x02}, packed[1:]...)
	_, err = wrongTag.Unpack()
	assert.Equal(t, fault.RecordCorrupt, err, "tag")
}

func TestDigest(t *testing.T) {
	p1, _ := makeRecord().Pack()
	p2, _ := makeRecord().Pack()
	assert.Equal(t, p1.Digest(), p2.Digest(), "same record")

	r := makeRecord()
	r.Owner = "bob"
	p3, _ := r.Pack()
	assert.NotEqual(t, p1.Digest(), p3.Digest(), "different owner")
	assert.Equal(t, 64, len(p1.Digest().String()), "hex length")
}

func TestAge(t *testing.T) {
	r := makeRecord()
	assert.Equal(t, uint64(3), r.Age(10), "age")
	assert.Equal(t, uint64(0), r.Age(7), "same height")
	assert.Equal(t, uint64(0), r.Age(2), "clock behind creation")
}

func TestRecordJSON(t *testing.T) {
	buffer, err := json.Marshal(makeRecord())
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"name":"Photo","owner":"alice","size":1024,"created_at":7,"summary":"desc","labels":["a"]}`, string(buffer), "json")
}
