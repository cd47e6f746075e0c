// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/rpc/cells"
)

// GetCell - committed state of one cell
func (client *Client) GetCell(a address.Address) (*cells.GetReply, error) {

	getArgs := cells.GetArguments{
		Address: a,
	}

	client.printJson("Get Request", getArgs)

	var reply cells.GetReply
	err := client.client.Call("Cell.Get", getArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return &reply, nil
}

// Airdrop - credit a system owned cell
func (client *Client) Airdrop(a address.Address, amount uint64) (*cells.AirdropReply, error) {

	airdropArgs := cells.AirdropArguments{
		Address: a,
		Amount:  amount,
	}

	client.printJson("Airdrop Request", airdropArgs)

	var reply cells.AirdropReply
	err := client.client.Call("Cell.Airdrop", airdropArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Airdrop Reply", reply)

	return &reply, nil
}

// MinimumBalance - rent exempt balance for a data size
func (client *Client) MinimumBalance(size int) (*cells.MinimumBalanceReply, error) {

	rentArgs := cells.MinimumBalanceArguments{
		Size: size,
	}

	client.printJson("Rent Request", rentArgs)

	var reply cells.MinimumBalanceReply
	err := client.client.Call("Cell.MinimumBalance", rentArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Rent Reply", reply)

	return &reply, nil
}
