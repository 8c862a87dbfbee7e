// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the ledger networks
package chain

// names of all chains
const (
	Regnet  = "regnet"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Regnet, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - chains whose data may be thrown away
func IsTesting(name string) bool {
	return Testing == name || Local == name
}

// DatabaseName - default database file name for a chain
func DatabaseName(name string) string {
	if Regnet == name {
		return "regnet.leveldb"
	}
	return name + "-regnet.leveldb"
}
