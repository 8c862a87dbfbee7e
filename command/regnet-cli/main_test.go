// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckConnect(t *testing.T) {
	c, err := checkConnect(" 127.0.0.1:2130 ")
	assert.Nil(t, err, "wrong connect")
	assert.Equal(t, "127.0.0.1:2130", c, "not trimmed")

	_, err = checkConnect("")
	assert.Equal(t, ErrRequiredConnect, err, "wrong error")

	_, err = checkConnect("localhost")
	assert.NotNil(t, err, "missing port accepted")
}

func TestCheckUser(t *testing.T) {
	u, err := checkUser("alice", "A1")
	assert.Nil(t, err, "wrong user")
	assert.Equal(t, "alice", u.Name, "wrong name")
	assert.Equal(t, "A1", u.AadharNumber, "wrong aadhar")

	_, err = checkUser(" ", "A1")
	assert.Equal(t, ErrRequiredName, err, "wrong error")

	_, err = checkUser("alice", "")
	assert.Equal(t, ErrRequiredAadhar, err, "wrong error")
}

func TestMissingArgumentsFailBeforeConnect(t *testing.T) {
	items := []struct {
		args     []string
		expected error
	}{
		{[]string{"user", "--aadhar", "A1"}, ErrRequiredName},
		{[]string{"recharge", "-n", "alice", "-a", "A1"}, ErrRequiredTransaction},
		{[]string{"property"}, ErrRequiredPropertyId},
		{[]string{"update-status", "-n", "alice", "-a", "A1", "-p", "p1"}, ErrRequiredStatus},
		{[]string{"purchase", "-n", "bob", "-a", "B1"}, ErrRequiredPropertyId},
	}

	for _, item := range items {
		var w, e bytes.Buffer
		app := newApp(&w, &e)
		err := app.Run(append([]string{"regnet-cli"}, item.args...))
		assert.Equal(t, item.expected, err, "wrong error for: %v", item.args)
	}
}

func TestVersion(t *testing.T) {
	var w, e bytes.Buffer
	app := newApp(&w, &e)
	err := app.Run([]string{"regnet-cli", "version"})
	assert.Nil(t, err, "wrong version")
	assert.Equal(t, version+"\n", w.String(), "wrong output")
}
