package hwloc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// A closed (or never-allocated) bitmap must behave like an empty set
// rather than hand a nil pointer to the native library.
func TestBitmapClosedGuards(t *testing.T) {
	var b Bitmap

	b.Set(3)
	b.SetRange(0, 7)
	b.Clear(3)
	b.ClearRange(0, 7)
	b.Zero()
	b.Singlify()

	require.Equal(t, 0, b.Weight())
	require.True(t, b.IsZero())
	require.False(t, b.IsFull())
	require.False(t, b.IsSet(0))
	require.Equal(t, -1, b.First())
	require.Equal(t, -1, b.Last())
	require.Equal(t, -1, b.Next(-1))
	require.Nil(t, b.Slice())
	require.Equal(t, "", b.String())

	_, err := b.Dup()
	require.True(t, errors.Is(err, ErrBitmapClosed))
	_, err = b.Not()
	require.True(t, errors.Is(err, ErrBitmapClosed))

	require.NoError(t, b.Close())
}

func TestBitmapClosedCompare(t *testing.T) {
	var a, b Bitmap
	require.Equal(t, 0, a.Compare(&b))
	require.True(t, a.Equal(&b))
}
