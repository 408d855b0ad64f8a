// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tick

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	require := require.New(t)

	require.Equal(ID(1), ID(0).Next())
	require.Equal(ID(24), ID(23).Next())

	// No wrap special-casing; Max rolls over to zero
	require.Equal(ID(0), Max.Next())
}

func TestOrdering(t *testing.T) {
	require := require.New(t)

	require.True(ID(23) < ID(24))
	require.True(Max > ID(0))

	var zero ID
	require.Equal(ID(0), zero)
}

func TestString(t *testing.T) {
	require := require.New(t)

	require.Equal("#23", ID(23).String())
	require.Equal("#0", ID(0).String())
}
