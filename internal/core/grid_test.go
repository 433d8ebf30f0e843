package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternFromRows(t *testing.T) {
	p, err := PatternFromRows([][]uint8{
		{1, 0, 0},
		{1, 1, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, p.W)
	assert.Equal(t, 2, p.H)
	assert.True(t, p.At(0, 0))
	assert.False(t, p.At(1, 0))
	assert.True(t, p.At(2, 1))
	assert.Equal(t, 4, p.Count())
}

func TestPatternFromRowsRejectsBadInput(t *testing.T) {
	_, err := PatternFromRows(nil)
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = PatternFromRows([][]uint8{{}})
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = PatternFromRows([][]uint8{{1, 1}, {1}})
	assert.True(t, errors.Is(err, ErrRaggedPattern), "got %v", err)
}

func TestPatternAtOutOfRange(t *testing.T) {
	p := Filled(2, 2)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		assert.False(t, p.At(c[0], c[1]), "cell %v", c)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	p := MustPattern([][]uint8{
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	})
	got, err := p.Rotate()
	require.NoError(t, err)

	want := MustPattern([][]uint8{
		{0, 1, 1},
		{0, 1, 0},
		{0, 1, 0},
	})
	assert.True(t, want.Equal(got), "rotated rows %v", got.Rows())
	assert.Equal(t, uint8(1), p.Rows()[0][0], "source must not change")
}

func TestRotateNonSquare(t *testing.T) {
	p := Filled(3, 1)
	_, err := p.Rotate()
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestCloneIsIndependent(t *testing.T) {
	p := Filled(2, 2)
	c := p.Clone()
	c.Cells()[0] = 0
	assert.True(t, p.At(0, 0))
	assert.False(t, p.Equal(c))
}
