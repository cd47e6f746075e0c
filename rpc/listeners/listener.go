// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

// Listener - a started server that accepts connections
type Listener interface {
	Serve() error
	Close() error
}
