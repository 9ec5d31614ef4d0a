// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/util"
)

// Packed - the stored form of a record
type Packed []byte

// leading tag of a packed record
const recordTag = 0x01

// Pack - Varint64(tag) followed by the fields in this order:
//
//	name, summary, owner          Varint64(length) ++ bytes
//	size, created at              Varint64
//	labels                        Varint64(count) ++ count × (Varint64(length) ++ bytes)
//
// only a record that passes Validate can be packed
func (r *Record) Pack() (Packed, error) {
	if err := r.Validate(); nil != err {
		return nil, err
	}

	message := appendUint64(nil, recordTag)
	message = appendString(message, r.Name)
	message = appendString(message, r.Summary)
	message = appendBytes(message, r.Owner.Bytes())
	message = appendUint64(message, r.Size)
	message = appendUint64(message, r.CreatedAt)
	message = appendUint64(message, uint64(len(r.Labels)))
	for _, l := range r.Labels {
		message = appendString(message, l)
	}
	return message, nil
}

// Unpack - decode a packed record
func (packed Packed) Unpack() (*Record, error) {
	u := unpacker{buffer: packed}

	if recordTag != u.uint64() {
		return nil, fault.RecordCorrupt
	}

	r := &Record{}
	r.Name = string(u.bytes())
	r.Summary = string(u.bytes())
	r.Owner = account.FromBytes(u.bytes())
	r.Size = u.uint64()
	r.CreatedAt = u.uint64()

	count := u.uint64()
	if count > MaxLabelCount {
		return nil, fault.RecordCorrupt
	}
	r.Labels = make([]string, 0, count)
	for i := uint64(0); i < count; i += 1 {
		r.Labels = append(r.Labels, string(u.bytes()))
	}

	if u.failed || u.n != len(packed) {
		return nil, fault.RecordCorrupt
	}
	return r, nil
}

// Digest - SHA3-256 of the packed record
type Digest [32]byte

// String - hex form
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText - hex form for JSON
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Digest - hash of the stored form of the record
func (packed Packed) Digest() Digest {
	return Digest(sha3.Sum256(packed))
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = appendUint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// sequential reader; once failed all reads return zero values
type unpacker struct {
	buffer []byte
	n      int
	failed bool
}

func (u *unpacker) uint64() uint64 {
	if u.failed {
		return 0
	}
	value, count := util.FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.failed = true
		return 0
	}
	u.n += count
	return value
}

func (u *unpacker) bytes() []byte {
	length := u.uint64()
	if u.failed {
		return nil
	}
	if uint64(len(u.buffer)-u.n) < length {
		u.failed = true
		return nil
	}
	result := make([]byte, length)
	copy(result, u.buffer[u.n:u.n+int(length)])
	u.n += int(length)
	return result
}
