// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

const (
	dialTimeout = 10 * time.Second
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a soldbd
//
// soldbd uses a self-signed certificate so it is not verified
func NewClient(connect string, useTLS bool, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	if useTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.DialWithDialer(&net.Dialer{Timeout: dialTimeout}, "tcp", connect, tlsConfig)
	} else {
		conn, err = net.DialTimeout("tcp", connect, dialTimeout)
	}
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the soldbd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}
