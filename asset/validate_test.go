// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fault"
)

func TestValidTextLength(t *testing.T) {
	tests := []struct {
		s        string
		max      int
		expected bool
	}{
		{"", 64, false},
		{"a", 64, true},
		{strings.Repeat("x", 64), 64, true},
		{strings.Repeat("x", 65), 64, false},
		{strings.Repeat("é", 64), 64, true}, // 128 bytes, 64 characters
		{strings.Repeat("界", 65), 64, false},
		{strings.Repeat("y", 128), 128, true},
		{strings.Repeat("y", 129), 128, false},
	}

	for i, item := range tests {
		actual := asset.ValidTextLength(item.s, asset.MinTextLength, item.max)
		assert.Equal(t, item.expected, actual, "%d: length of %q", i, item.s)
	}
}

func TestValidSize(t *testing.T) {
	assert.False(t, asset.ValidSize(0), "zero")
	assert.True(t, asset.ValidSize(1), "one")
	assert.True(t, asset.ValidSize(999999999), "largest")
	assert.False(t, asset.ValidSize(1000000000), "limit")
	assert.False(t, asset.ValidSize(^uint64(0)), "max uint64")
}

func TestValidLabelSet(t *testing.T) {
	ten := make([]string, 10)
	for i := range ten {
		ten[i] = "l"
	}

	assert.False(t, asset.ValidLabelSet(nil), "nil")
	assert.False(t, asset.ValidLabelSet([]string{}), "empty")
	assert.True(t, asset.ValidLabelSet([]string{"a"}), "single")
	assert.True(t, asset.ValidLabelSet(ten), "ten")
	assert.False(t, asset.ValidLabelSet(append(ten, "l")), "eleven")
	assert.True(t, asset.ValidLabelSet([]string{strings.Repeat("z", 32)}), "32 character label")
	assert.False(t, asset.ValidLabelSet([]string{strings.Repeat("z", 33)}), "33 character label")
	assert.False(t, asset.ValidLabelSet([]string{"a", ""}), "empty label")
}

func TestCheckFieldsOrder(t *testing.T) {
	long := strings.Repeat("n", 65)

	tests := []struct {
		name     string
		size     uint64
		summary  string
		labels   []string
		expected error
	}{
		{"Photo", 1024, "desc", []string{"a"}, nil},
		{"", 0, "", nil, fault.NameInvalid},
		{long, 1024, "desc", []string{"a"}, fault.NameInvalid},
		{"Photo", 0, "", nil, fault.SizeConstraintViolation},
		{"Photo", 1000000000, "desc", []string{"a"}, fault.SizeConstraintViolation},
		{"Photo", 1, "", nil, fault.NameInvalid},
		{"Photo", 1, strings.Repeat("s", 129), []string{"a"}, fault.NameInvalid},
		{"Photo", 1, "desc", nil, fault.InvalidMetadataStructure},
		{"Photo", 1, "desc", []string{long}, fault.InvalidMetadataStructure},
	}

	for i, item := range tests {
		err := asset.CheckFields(item.name, item.size, item.summary, item.labels)
		assert.Equal(t, item.expected, err, "%d: check fields", i)
	}
}

func TestRecordValidate(t *testing.T) {
	r := &asset.Record{
		Name:    strings.Repeat("n", 64),
		Size:    999999999,
		Summary: strings.Repeat("s", 128),
		Labels:  []string{"one", "two"},
	}
	assert.Nil(t, r.Validate(), "boundary record")

	r.Labels = nil
	assert.Equal(t, fault.InvalidMetadataStructure, r.Validate(), "no labels")
}

func TestAppendLabels(t *testing.T) {
	existing := []string{"a", "b"}

	result, err := asset.AppendLabels(existing, []string{"c"})
	assert.Nil(t, err, "append one")
	assert.Equal(t, []string{"a", "b", "c"}, result, "appended")
	assert.Equal(t, []string{"a", "b"}, existing, "existing modified")

	result, err = asset.AppendLabels(existing, nil)
	assert.Nil(t, err, "append nothing")
	assert.Equal(t, existing, result, "nothing appended")

	eight := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	result, err = asset.AppendLabels(existing, eight)
	assert.Nil(t, err, "fill to ten")
	assert.Equal(t, 10, len(result), "label count")

	_, err = asset.AppendLabels(result, []string{asset.HistoricalLabel})
	assert.Equal(t, fault.InvalidMetadataStructure, err, "eleventh label")

	_, err = asset.AppendLabels(existing, []string{""})
	assert.Equal(t, fault.InvalidMetadataStructure, err, "empty label")

	_, err = asset.AppendLabels(existing, []string{strings.Repeat("q", 33)})
	assert.Equal(t, fault.InvalidMetadataStructure, err, "long label")
}
