// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/counter"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/ledger"
	"github.com/PepeCosmico/soldb/rpc/certificate"
	"github.com/PepeCosmico/soldb/rpc/listeners"
	"github.com/PepeCosmico/soldb/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// Configuration - configuration file data for RPC setup
//
// certificate and private_key are PEM text, both blank for plain TCP
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"-"`
	Airdrop            bool     `gluamapper:"airdrop" json:"airdrop"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
func Initialise(configuration *Configuration, l ledger.Handle, programID address.Address, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if configuration.Airdrop {
		log.Warn("airdrop is enabled")
	}

	options := server.Options{
		Version:   version,
		ProgramID: programID,
		Airdrop:   configuration.Airdrop,
	}

	var tlsConfig *tls.Config
	switch {
	case "" == configuration.Certificate && "" == configuration.PrivateKey:
		log.Warn("TLS is disabled")
	case "" == configuration.Certificate || "" == configuration.PrivateKey:
		log.Error("certificate and private key must both be set")
		return fault.ErrMissingParameters
	default:
		var fingerprint [32]byte
		var err error
		tlsConfig, fingerprint, err = certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)
	}

	rpcConfiguration := &listeners.RPCConfiguration{
		MaximumConnections: configuration.MaximumConnections,
		Listen:             configuration.Listen,
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, l, options, &connectionCountRPC),
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		_ = rpcListener.Close()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
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

	_ = globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
