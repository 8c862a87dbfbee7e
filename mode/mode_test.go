// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regnet/regnetd/chain"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/fixtures"
	"github.com/regnet/regnetd/mode"
)

func TestModeLifecycle(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise("bitmark")
	assert.Equal(t, fault.ErrInvalidChain, err, "unknown chain")

	err = mode.Initialise(chain.Testing)
	assert.Nil(t, err, "initialise")

	err = mode.Initialise(chain.Testing)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	assert.True(t, mode.Is(mode.Starting), "initial mode")
	assert.True(t, mode.IsTesting(), "testing chain")
	assert.Equal(t, chain.Testing, mode.ChainName(), "chain name")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "normal mode")
	assert.False(t, mode.IsNot(mode.Normal), "normal mode")
	assert.Equal(t, "Normal", mode.String(), "mode string")

	// out of range is ignored
	mode.Set(mode.Mode(99))
	assert.True(t, mode.Is(mode.Normal), "mode after invalid set")

	assert.Nil(t, mode.Finalise(), "finalise")
	assert.True(t, mode.Is(mode.Stopped), "mode after finalise")
	assert.Equal(t, fault.ErrNotInitialised, mode.Finalise(), "second finalise")
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Stopped", mode.Stopped.String())
	assert.Equal(t, "Starting", mode.Starting.String())
	assert.Equal(t, "Normal", mode.Normal.String())
	assert.Equal(t, "*Unknown*", mode.Mode(-1).String())
}
