// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/contract"
	"github.com/regnet/regnetd/counter"
	"github.com/regnet/regnetd/mode"
	"github.com/regnet/regnetd/rpc/node"
	"github.com/regnet/regnetd/rpc/participant"
	"github.com/regnet/regnetd/rpc/registrar"
)

// Contracts - the operation sets that listeners may serve
type Contracts struct {
	Registrar contract.RegistrarOperations
	User      contract.UserOperations
}

// Create - an rpc.Server whose services match the caller's role
//
// Node is always present; a caller with no role gets nothing else
func Create(log *logger.L, version string, rpcCount *counter.Counter, caller contract.Caller, contracts Contracts) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, caller.Role, rpcCount))

	switch caller.Role {
	case contract.Registrar:
		_ = server.Register(registrar.New(log, caller, mode.Is, contracts.Registrar))
	case contract.Participant:
		_ = server.Register(participant.New(log, caller, mode.Is, contracts.User))
	default:
		log.Warnf("%s: no services for role: %s", caller.Identity, caller.Role)
	}

	return server
}
