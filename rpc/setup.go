// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/background"
	"github.com/regnet/regnetd/contract"
	"github.com/regnet/regnetd/counter"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/rpc/certificate"
	"github.com/regnet/regnetd/rpc/listeners"
	"github.com/regnet/regnetd/rpc/server"
)

// listener names, also the identity of their callers
const (
	ClientName    = "client_rpc"
	RegistrarName = "registrar_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners map[string]*listeners.RPCListener
	counts    map[string]*counter.Counter

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start both listeners
//
// a listener with no listen addresses is disabled
func Initialise(clientConfiguration *listeners.RPCConfiguration, registrarConfiguration *listeners.RPCConfiguration, version string, store contract.Store, clock func() time.Time) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	contractLog := logger.New("contract")
	contracts := server.Contracts{
		Registrar: contract.NewRegistrar(contractLog, store),
		User:      contract.NewUser(contractLog, store, clock),
	}

	globalData.listeners = make(map[string]*listeners.RPCListener)
	globalData.counts = make(map[string]*counter.Counter)

	type setup struct {
		name          string
		role          contract.Role
		configuration *listeners.RPCConfiguration
	}
	processes := background.Processes{}
	for _, s := range []setup{
		{name: ClientName, role: contract.Participant, configuration: clientConfiguration},
		{name: RegistrarName, role: contract.Registrar, configuration: registrarConfiguration},
	} {
		if nil == s.configuration || 0 == len(s.configuration.Listen) {
			log.Infof("disable: %s", s.name)
			continue
		}

		l, err := start(log, s.name, s.role, s.configuration, version, contracts)
		if nil != err {
			stopAll(processes)
			globalData.listeners = nil
			globalData.counts = nil
			return err
		}
		processes = append(processes, l)
	}

	globalData.background = background.Start(processes, nil)

	// all data initialised
	globalData.initialised = true

	return nil
}

func start(log *logger.L, name string, role contract.Role, configuration *listeners.RPCConfiguration, version string, contracts server.Contracts) (*listeners.RPCListener, error) {

	tlsConfig, fingerprint, err := certificate.Load(log, name, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	count := new(counter.Counter)
	caller := contract.Caller{
		Role:     role,
		Identity: name,
	}

	l, err := listeners.NewRPC(
		name,
		configuration,
		log,
		count,
		server.Create(log, version, count, caller, contracts),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return nil, err
	}

	err = l.Serve()
	if nil != err {
		return nil, err
	}

	globalData.listeners[name] = l
	globalData.counts[name] = count

	return l, nil
}

// close sockets of listeners that were served before a later one failed
func stopAll(processes background.Processes) {
	background.Start(processes, nil).Stop()
}

// Addresses - bound addresses of a listener, empty if it is disabled
func Addresses(name string) []string {
	globalData.RLock()
	defer globalData.RUnlock()

	l, ok := globalData.listeners[name]
	if !ok {
		return nil
	}
	return l.Addresses()
}

// Connections - current connection count of a listener
func Connections(name string) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	count, ok := globalData.counts[name]
	if !ok {
		return 0
	}
	return count.Uint64()
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.listeners = nil
	globalData.counts = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
