// SPDX-License-Identifier: MIT
// Dev KryperAI

package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"signal-attestation/types"
)

func TestJournal_AppendAdvancesHeadOncePerRecord(t *testing.T) {
	j := NewJournal()
	require.Equal(t, types.ZeroHash(), j.Head())
	require.Equal(t, 0, j.Len())

	var addr types.Address
	addr[0] = 0x01

	seq := j.Append(addr, []byte("record-one"))
	require.Equal(t, uint64(1), seq)
	head1 := j.Head()
	require.NotEqual(t, types.ZeroHash(), head1)

	addr[0] = 0x02
	seq = j.Append(addr, []byte("record-two"))
	require.Equal(t, uint64(2), seq)
	require.NotEqual(t, head1, j.Head())
	require.Equal(t, 2, j.Len())
}

func TestJournal_Deterministic(t *testing.T) {
	var addr types.Address
	addr[0] = 0x01

	j1 := NewJournal()
	j2 := NewJournal()
	j1.Append(addr, []byte("same-record"))
	j2.Append(addr, []byte("same-record"))
	require.Equal(t, j1.Head(), j2.Head())

	j2b := NewJournal()
	j2b.Append(addr, []byte("other-record"))
	require.NotEqual(t, j1.Head(), j2b.Head())
}

func TestJournal_Verify(t *testing.T) {
	j := NewJournal()
	require.NoError(t, j.Verify())

	var addr types.Address
	for i := byte(1); i <= 5; i++ {
		addr[0] = i
		j.Append(addr, []byte{i})
	}
	require.NoError(t, j.Verify())
}
