// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tick defines the logical time step identifier used to order
// items buffered by this module.
package tick

import "fmt"

// Max is the highest representable tick. Wraparound past [Max] is not
// special-cased by this module; simulations that run long enough to reach
// it must reset their sequences explicitly.
const Max = ID(^uint32(0))

// ID is a monotonically increasing logical time step identifier.
//
// IDs compare with the usual integer operators. The zero value is a valid
// initial tick.
type ID uint32

// Next returns the tick immediately following [id].
func (id ID) Next() ID {
	return id + 1
}

func (id ID) String() string {
	return fmt.Sprintf("#%d", uint32(id))
}
