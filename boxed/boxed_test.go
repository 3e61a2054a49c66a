package boxed

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slotvec/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reading struct {
	Sensor uint8
	Value  int16
}

func TestBoxedLifecycle(t *testing.T) {
	var v Vector[reading]
	_, err := v.Size().Get()
	assert.ErrorIs(t, err, vector.ErrInvalidState)
	require.NoError(t, v.Init())
	assert.ErrorIs(t, v.Init(), vector.ErrInvalidState)
	n, err := v.Size().Get()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	require.NoError(t, v.Free())
	assert.ErrorIs(t, v.Free(), vector.ErrInvalidState)
	assert.ErrorIs(t, v.Append(reading{}), vector.ErrInvalidState)

	var nilvec *Vector[int]
	assert.ErrorIs(t, nilvec.Init(), vector.ErrInvalidArg)
	assert.ErrorIs(t, nilvec.Append(1), vector.ErrInvalidArg)
}

func TestBoxedScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slotvec.boxed")
	defer teardown()
	//
	var v Vector[uint32]
	require.NoError(t, v.Init())
	for _, x := range []uint32{1, 2, 3} {
		require.NoError(t, v.Append(x))
	}
	assert.Equal(t, 3, v.Size().WithDefault(-1))
	require.NoError(t, v.Delete(1))
	t.Logf("after delete:\n%s", v.String())
	assert.Equal(t, 2, v.Size().WithDefault(-1))
	assert.Equal(t, 2, v.Cap())
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), *x)
	x, err = v.At(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), *x)
	require.NoError(t, v.Free())
	_, err = v.At(0)
	assert.ErrorIs(t, err, vector.ErrInvalidState)
}

func TestBoxedValueSemantics(t *testing.T) {
	var v Vector[reading]
	require.NoError(t, v.Init())
	defer v.Free()
	r := reading{Sensor: 1, Value: -40}
	require.NoError(t, v.Append(r))
	r.Value = 100
	box, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, int16(-40), box.Value, "append must copy the value")
	require.NoError(t, v.Set(0, reading{Sensor: 2, Value: 7}))
	assert.Equal(t, reading{Sensor: 2, Value: 7}, *box, "set must overwrite in place")
}

func TestBoxedOutOfRange(t *testing.T) {
	var v Vector[int]
	require.NoError(t, v.Init())
	defer v.Free()
	require.NoError(t, v.Append(10))
	for _, i := range []int{-1, 1, 5} {
		_, err := v.At(i)
		assert.ErrorIs(t, err, vector.ErrOutOfRange)
		assert.ErrorIs(t, v.Set(i, 0), vector.ErrOutOfRange)
		assert.ErrorIs(t, v.Delete(i), vector.ErrOutOfRange)
		assert.True(t, v.Get(i).IsNothing())
	}
	assert.Equal(t, 1, v.Size().WithDefault(-1))
	x, ok := v.Get(0).Get()
	require.True(t, ok)
	assert.Equal(t, 10, *x)
}

func TestBoxedCapacityFollowsSize(t *testing.T) {
	var v Vector[string]
	require.NoError(t, v.Init())
	defer v.Free()
	words := []string{"a", "b", "c", "d", "e"}
	for _, w := range words {
		require.NoError(t, v.Append(w))
		assert.Equal(t, v.Size().WithDefault(-1), v.Cap())
	}
	for range words {
		require.NoError(t, v.Delete(0))
		assert.Equal(t, v.Size().WithDefault(-1), v.Cap())
	}
}
