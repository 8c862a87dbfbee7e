// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// Now - fixed clock for reproducible records
var Now = time.Date(2020, time.March, 4, 5, 6, 7, 0, time.UTC)

// Clock - returns Now
func Clock() time.Time {
	return Now
}

// SetupTestLogger - log to a throw-away directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

var tlsData struct {
	sync.Once
	certificate []byte
	key         []byte
	err         error
}

// Certificate - a self signed localhost certificate and its private
// key, both PEM encoded, created once per test binary
func Certificate() (string, string, error) {
	tlsData.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		tlsData.certificate, tlsData.key, tlsData.err = certgen.NewTLSCertPair("regnet test", validUntil, false, []string{"127.0.0.1"})
	})
	return string(tlsData.certificate), string(tlsData.key), tlsData.err
}
