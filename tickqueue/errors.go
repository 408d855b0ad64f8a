// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tickqueue

import (
	"errors"
	"fmt"

	"github.com/ava-labs/tickqueue/tick"
)

var ErrWrongTick = errors.New("wrong tick")

// WrongTickError reports a push whose tick did not continue the sequence.
// It wraps [ErrWrongTick] and carries both the tick the queue expected and
// the one it encountered, so callers can resynchronize.
type WrongTickError struct {
	Expected    tick.ID
	Encountered tick.ID
}

func (e *WrongTickError) Error() string {
	return fmt.Sprintf("%s: expected %s, encountered %s", ErrWrongTick, e.Expected, e.Encountered)
}

func (*WrongTickError) Unwrap() error {
	return ErrWrongTick
}
