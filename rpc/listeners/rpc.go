// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS JSON-RPC listeners
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/counter"
	"github.com/regnet/regnetd/fault"
)

// RPCConfiguration - configuration file data for RPC setup
//
// an empty allow list accepts connections from any address
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	Allow              []string `gluamapper:"allow" json:"allow"`
}

// RPCListener - one set of listening sockets serving one rpc.Server
type RPCListener struct {
	sync.Mutex

	name           string
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	ipType         []string
	listen         []string
	allow          []*net.IPNet
	listeners      []net.Listener
}

// NewRPC - validate the configuration and create an unstarted listener
func NewRPC(
	name string,
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (*RPCListener, error) {
	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid %s maximum connection limit: %d", name, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", name)
		return nil, fault.ErrMissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", name, certificateFingerprint)

	r := &RPCListener{
		name:           name,
		log:            log,
		maxConnections: configuration.MaximumConnections,
		server:         server,
		count:          count,
		tlsConfig:      tlsConfig,
	}

	var err error
	r.listen, r.ipType, err = parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	r.allow, err = parseAllow(configuration.Allow, log)
	if nil != err {
		return nil, err
	}

	return r, nil
}

// Serve - open all the sockets and start accepting connections
func (r *RPCListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listen {
		r.log.Infof("starting %s server: %s", r.name, listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if err != nil {
			r.log.Errorf("%s server listen error: %s", r.name, err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, l)

		go r.accept(l)
	}
	return nil
}

// Addresses - the bound socket addresses
func (r *RPCListener) Addresses() []string {
	r.Lock()
	defer r.Unlock()

	result := make([]string, len(r.listeners))
	for i, l := range r.listeners {
		result[i] = l.Addr().String()
	}
	return result
}

// Run - background process that closes the sockets on shutdown
func (r *RPCListener) Run(args interface{}, shutdown <-chan struct{}) {
	<-shutdown

	r.Lock()
	r.closeAll()
	r.Unlock()

	r.log.Infof("%s: stopped", r.name)
}

func (r *RPCListener) closeAll() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *RPCListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			r.log.Infof("%s: accept terminated: %s", r.name, err)
			return
		}

		if !r.allowed(conn.RemoteAddr()) {
			r.log.Warnf("%s: %s: %s", r.name, fault.ErrForbiddenAddress, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("%s: connection limit: %d reached, refused: %s", r.name, r.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			r.count.Release()
		}()
	}
}

func (r *RPCListener) allowed(address net.Addr) bool {
	if 0 == len(r.allow) {
		return true
	}

	tcp, ok := address.(*net.TCPAddr)
	if !ok {
		return false
	}
	for _, cidr := range r.allow {
		if cidr.Contains(tcp.IP) {
			return true
		}
	}
	return false
}

// returns the listen addresses with "*" expanded and the network for each
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	listen := make([]string, len(addrs))
	parsed := make([]string, len(addrs))
	for i, address := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(address))
		if nil != err {
			log.Errorf("rpc server listen: %q error: %s", address, err)
			return nil, nil, fault.ErrInvalidIpAddress
		}

		switch {
		case "*" == host:
			// on the assumption that this will listen on tcp4 and tcp6
			host = "::"
			parsed[i] = "tcp"
		case strings.Contains(host, ":"):
			parsed[i] = "tcp6"
		default:
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.ErrInvalidIpAddress
			log.Errorf("rpc server listen: %q error: %s", address, err)
			return nil, nil, err
		}
		listen[i] = net.JoinHostPort(host, port)
	}

	return listen, parsed, nil
}

func parseAllow(cidrs []string, log *logger.L) ([]*net.IPNet, error) {
	allow := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, cidr, err := net.ParseCIDR(strings.TrimSpace(c))
		if nil != err {
			log.Errorf("rpc server allow: %q error: %s", c, err)
			return nil, fault.ErrInvalidIpAddress
		}
		allow = append(allow, cidr)
	}
	return allow, nil
}
