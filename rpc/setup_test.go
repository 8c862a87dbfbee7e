// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"io/ioutil"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regnet/regnetd/chain"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/fixtures"
	"github.com/regnet/regnetd/mode"
	"github.com/regnet/regnetd/record"
	regnetrpc "github.com/regnet/regnetd/rpc"
	"github.com/regnet/regnetd/rpc/listeners"
	"github.com/regnet/regnetd/rpc/participant"
	"github.com/regnet/regnetd/rpc/registrar"
	"github.com/regnet/regnetd/storage"
)

func configurations(t *testing.T, dir string) (*listeners.RPCConfiguration, *listeners.RPCConfiguration) {
	certificate, key, err := fixtures.Certificate()
	require.Nil(t, err, "certificate")

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	require.Nil(t, ioutil.WriteFile(certificateFile, []byte(certificate), 0600), "write certificate")
	require.Nil(t, ioutil.WriteFile(keyFile, []byte(key), 0600), "write key")

	client := &listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
	}
	registrar := &listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
		Allow:              []string{"127.0.0.0/8"},
	}
	return client, registrar
}

func dial(t *testing.T, name string) *rpc.Client {
	addresses := regnetrpc.Addresses(name)
	require.Equal(t, 1, len(addresses), "addresses of "+name)

	conn, err := tls.Dial("tcp", addresses[0], &tls.Config{InsecureSkipVerify: true})
	require.Nil(t, err, "dial "+name)
	return jsonrpc.NewClient(conn)
}

func TestWorkflowAcrossListeners(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "regnet-rpc")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	require.Nil(t, mode.Initialise(chain.Testing), "mode")
	defer mode.Finalise()

	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")
	defer db.Close()

	clientConfiguration, registrarConfiguration := configurations(t, dir)
	err = regnetrpc.Initialise(clientConfiguration, registrarConfiguration, "1.0", db, fixtures.Clock)
	require.Nil(t, err, "initialise")
	defer regnetrpc.Finalise()

	err = regnetrpc.Initialise(clientConfiguration, registrarConfiguration, "1.0", db, fixtures.Clock)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	client := dial(t, regnetrpc.ClientName)
	defer client.Close()
	reg := dial(t, regnetrpc.RegistrarName)
	defer reg.Close()

	// refused until the daemon finishes starting
	var request record.UserRequest
	args := participant.RequestArguments{Name: "alice", EmailId: "a@example.com", PhoneNumber: "555", AadharNumber: "A1"}
	err = client.Call("User.RequestNewUser", args, &request)
	require.NotNil(t, err, "call while starting")
	assert.Equal(t, fault.ErrNotAvailable.Error(), err.Error(), "wrong error")

	mode.Set(mode.Normal)

	err = client.Call("User.RequestNewUser", args, &request)
	require.Nil(t, err, "request user")
	assert.Equal(t, fixtures.Now, request.CreatedAt, "wrong created at")

	var user record.User
	err = reg.Call("Registrar.ApproveNewUser", registrar.UserArguments{Name: "alice", AadharNumber: "A1"}, &user)
	require.Nil(t, err, "approve user")
	assert.Equal(t, uint64(0), user.UpgradCoins, "wrong initial balance")

	err = client.Call("User.RechargeAccount", participant.RechargeArguments{Name: "alice", AadharNumber: "A1", BankTransactionId: "upg1000"}, &user)
	require.Nil(t, err, "recharge")
	assert.Equal(t, uint64(1000), user.UpgradCoins, "wrong balance")

	err = client.Call("User.RechargeAccount", participant.RechargeArguments{Name: "alice", AadharNumber: "A1", BankTransactionId: "upg42"}, &user)
	require.NotNil(t, err, "bad recharge")
	assert.Equal(t, fault.ErrInvalidTransactionId.Error(), err.Error(), "wrong error")

	assert.Equal(t, uint64(1), regnetrpc.Connections(regnetrpc.RegistrarName), "wrong registrar connections")
}

func TestDisabledListener(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")
	defer db.Close()

	err = regnetrpc.Initialise(&listeners.RPCConfiguration{}, nil, "1.0", db, nil)
	require.Nil(t, err, "initialise")

	assert.Nil(t, regnetrpc.Addresses(regnetrpc.ClientName), "client listener enabled")
	assert.Nil(t, regnetrpc.Addresses(regnetrpc.RegistrarName), "registrar listener enabled")

	assert.Nil(t, regnetrpc.Finalise(), "finalise")
	assert.Equal(t, fault.ErrNotInitialised, regnetrpc.Finalise(), "second finalise")
}

func TestMissingCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")
	defer db.Close()

	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        "/nonexistent/rpc.crt",
		PrivateKey:         "/nonexistent/rpc.key",
	}
	err = regnetrpc.Initialise(configuration, nil, "1.0", db, nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
	assert.Equal(t, fault.ErrNotInitialised, regnetrpc.Finalise(), "initialised after failure")
}
