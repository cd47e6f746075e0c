// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/PepeCosmico/soldb/rpc/node"
)

// GetNodeInfo - fetch the soldbd information
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	err := client.client.Call("Node.Info", node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return &reply, nil
}
