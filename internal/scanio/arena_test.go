package scanio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteArenaTakeAndText(t *testing.T) {
	var arena ByteArena
	_, err := arena.WriteString("hello ")
	require.NoError(t, err)
	first := arena.Take()
	require.Equal(t, "hello ", first.Text())

	_, err = arena.WriteString("world")
	require.NoError(t, err)
	second := arena.Take()
	require.Equal(t, "world", second.Text())
	require.Equal(t, "hello ", first.Text())
}

func TestByteArenaReset(t *testing.T) {
	var arena ByteArena
	_, _ = arena.WriteString("stale")
	tok := arena.Take()
	require.False(t, tok.Empty())

	arena.Reset()
	_, _ = arena.WriteString("fresh")
	tok2 := arena.Take()
	require.Equal(t, "fresh", tok2.Text())
}

func TestByteArenaTokenSlice(t *testing.T) {
	var arena ByteArena
	_, _ = arena.WriteString("abcdef")
	tok := arena.Take()
	require.Equal(t, "bcd", tok.Slice(1, 4).Text())
	require.Equal(t, "cdef", tok.Slice(2, -1).Text())
}
