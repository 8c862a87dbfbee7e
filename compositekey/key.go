// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compositekey - deterministic record keys
//
// A key is a namespace followed by an ordered list of components.
// The byte form is:
//
//   0x00 ++ namespace ++ 0x00 ++ component[0] ++ 0x00 ++ ... ++ component[n-1] ++ 0x00
//
// Neither the namespace nor any component may contain 0x00, so the
// encoding is injective and two keys are equal exactly when their
// byte forms are equal.
package compositekey

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/regnet/regnetd/fault"
)

const delimiter = byte(0x00)

// Key - a namespace and its identifying components
type Key struct {
	namespace  string
	components []string
}

// New - create a key, components are taken verbatim
func New(namespace string, components ...string) (Key, error) {
	if "" == namespace || !validString(namespace) {
		return Key{}, fault.ErrInvalidNamespace
	}
	for _, c := range components {
		if !validString(c) {
			return Key{}, fault.ErrInvalidKeyComponent
		}
	}

	k := Key{
		namespace:  namespace,
		components: make([]string, len(components)),
	}
	copy(k.components, components)
	return k, nil
}

func validString(s string) bool {
	return utf8.ValidString(s) && -1 == strings.IndexByte(s, delimiter)
}

// Namespace - the first element of the key
func (k Key) Namespace() string {
	return k.namespace
}

// Components - a copy of the identifying components
func (k Key) Components() []string {
	c := make([]string, len(k.components))
	copy(c, k.components)
	return c
}

// IsZero - true for the uninitialised key
func (k Key) IsZero() bool {
	return "" == k.namespace
}

// Bytes - the canonical byte form
func (k Key) Bytes() []byte {
	n := 2 + len(k.namespace)
	for _, c := range k.components {
		n += len(c) + 1
	}

	buffer := make([]byte, 0, n)
	buffer = append(buffer, delimiter)
	buffer = append(buffer, k.namespace...)
	buffer = append(buffer, delimiter)
	for _, c := range k.components {
		buffer = append(buffer, c...)
		buffer = append(buffer, delimiter)
	}
	return buffer
}

// String - canonical form as a string
func (k Key) String() string {
	return string(k.Bytes())
}

// Equal - compare two keys
func (k Key) Equal(other Key) bool {
	if k.namespace != other.namespace || len(k.components) != len(other.components) {
		return false
	}
	for i, c := range k.components {
		if c != other.components[i] {
			return false
		}
	}
	return true
}

// Parse - the inverse of Bytes
func Parse(buffer []byte) (Key, error) {
	if len(buffer) < 3 || delimiter != buffer[0] || delimiter != buffer[len(buffer)-1] {
		return Key{}, fault.ErrInvalidKey
	}

	// strip the leading delimiter and split on the rest, the final
	// delimiter produces an empty trailing element
	parts := bytes.Split(buffer[1:len(buffer)-1], []byte{delimiter})

	components := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		components = append(components, string(p))
	}
	return New(string(parts[0]), components...)
}

// MarshalText - keys are stored in records in canonical form
func (k Key) MarshalText() ([]byte, error) {
	if k.IsZero() {
		return []byte{}, nil
	}
	return k.Bytes(), nil
}

// UnmarshalText - convert canonical form back to a key
func (k *Key) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*k = Key{}
		return nil
	}
	key, err := Parse(s)
	if nil != err {
		return err
	}
	*k = key
	return nil
}
