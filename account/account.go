// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identities of registry principals
//
// an identity arrives already authenticated; the registry only ever
// compares identities for equality and uses their bytes as keys
package account

// Identity - opaque principal
type Identity string

// FromBytes - rebuild an identity from its key bytes
func FromBytes(b []byte) Identity {
	return Identity(b)
}

// Bytes - the key form of the identity
func (id Identity) Bytes() []byte {
	return []byte(id)
}

// String - printable form
func (id Identity) String() string {
	return string(id)
}

// IsEmpty - true for the zero identity
func (id Identity) IsEmpty() bool {
	return 0 == len(id)
}

// MarshalText - identities appear as plain strings in JSON
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id), nil
}
