// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compositekey_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
)

func TestDeterministic(t *testing.T) {
	k1, err := compositekey.New("user", "alice", "1234")
	require.Nil(t, err, "wrong New")
	k2, err := compositekey.New("user", "alice", "1234")
	require.Nil(t, err, "wrong New")

	assert.Equal(t, k1.Bytes(), k2.Bytes(), "same input gave different bytes")
	assert.True(t, k1.Equal(k2), "same input not equal")
	assert.Equal(t, "\x00user\x00alice\x001234\x00", k1.String(), "wrong canonical form")
}

func TestNoCollisions(t *testing.T) {
	items := []struct {
		namespace  string
		components []string
	}{
		{"user", []string{"alice", "1234"}},
		{"user", []string{"alice1", "234"}},
		{"user", []string{"alice", "1234", ""}},
		{"user", []string{"alice"}},
		{"user", []string{}},
		{"user", []string{""}},
		{"request", []string{"alice", "1234"}},
		{"request", []string{"alice"}},
		{"userx", []string{"alice", "1234"}},
		{"property", []string{"p-1"}},
	}

	seen := make(map[string]int)
	for i, item := range items {
		k, err := compositekey.New(item.namespace, item.components...)
		require.Nil(t, err, "%d: New error", i)

		s := k.String()
		if j, ok := seen[s]; ok {
			t.Errorf("%d: collides with: %d  key: %q", i, j, s)
		}
		seen[s] = i
	}
}

func TestInvalid(t *testing.T) {
	_, err := compositekey.New("")
	assert.Equal(t, fault.ErrInvalidNamespace, err, "empty namespace")

	_, err = compositekey.New("us\x00er", "a")
	assert.Equal(t, fault.ErrInvalidNamespace, err, "delimiter in namespace")

	_, err = compositekey.New("user", "a\x00b")
	assert.Equal(t, fault.ErrInvalidKeyComponent, err, "delimiter in component")

	_, err = compositekey.New("user", string([]byte{0xff, 0xfe}))
	assert.Equal(t, fault.ErrInvalidKeyComponent, err, "invalid utf-8")
}

func TestParse(t *testing.T) {
	k, err := compositekey.New("property", "p-1", "", "x y")
	require.Nil(t, err, "wrong New")

	p, err := compositekey.Parse(k.Bytes())
	require.Nil(t, err, "wrong Parse")
	assert.True(t, k.Equal(p), "round trip changed key")
	assert.Equal(t, "property", p.Namespace(), "wrong namespace")
	assert.Equal(t, []string{"p-1", "", "x y"}, p.Components(), "wrong components")

	for _, bad := range [][]byte{
		nil,
		[]byte("user"),
		[]byte("\x00user"),
		[]byte("\x00\x00"),
		[]byte("\x00\x00alice\x00"),
	} {
		_, err := compositekey.Parse(bad)
		assert.NotNil(t, err, "expected error for: %q", bad)
	}
}

func TestJSON(t *testing.T) {
	type holder struct {
		Owner compositekey.Key `json:"owner"`
	}

	k, err := compositekey.New("user", "bob", "99")
	require.Nil(t, err, "wrong New")

	b, err := json.Marshal(holder{Owner: k})
	require.Nil(t, err, "wrong Marshal")
	assert.Equal(t, `{"owner":"\u0000user\u0000bob\u000099\u0000"}`, string(b), "wrong JSON")

	var h holder
	err = json.Unmarshal(b, &h)
	require.Nil(t, err, "wrong Unmarshal")
	assert.True(t, k.Equal(h.Owner), "JSON changed key")
}

func TestComponentsAreCopied(t *testing.T) {
	components := []string{"a", "b"}
	k, err := compositekey.New("ns", components...)
	require.Nil(t, err, "wrong New")

	components[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, k.Components(), "key shares caller slice")

	c := k.Components()
	c[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, k.Components(), "key exposes internal slice")
}
