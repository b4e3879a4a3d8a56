package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReversedIsInvolution(t *testing.T) {
	b := Breakpoint{LeftRefIndex: 0, LeftPos: 100, LeftPositive: true, RightRefIndex: 1, RightPos: 200, RightPositive: false}
	assert.Equal(t, b, b.Reversed().Reversed())
}

func TestCanonicalize(t *testing.T) {
	// Already canonical.
	b := Breakpoint{LeftRefIndex: 0, LeftPos: 100, LeftPositive: true, RightRefIndex: 0, RightPos: 200, RightPositive: true}
	c, wasCanonical := Canonicalize(b)
	assert.True(t, wasCanonical)
	assert.Equal(t, b, c)

	// Reversed: left > right.
	b2 := Breakpoint{LeftRefIndex: 0, LeftPos: 200, LeftPositive: true, RightRefIndex: 0, RightPos: 100, RightPositive: true}
	c2, wasCanonical2 := Canonicalize(b2)
	assert.False(t, wasCanonical2)
	assert.Equal(t, b2.Reversed(), c2)

	// Idempotence on canonical input.
	c3, _ := Canonicalize(c2)
	assert.Equal(t, c2, c3)
}

func TestCanonicalTieBreaksOnStrand(t *testing.T) {
	// Same (refIndex, pos) on both sides: canonical iff LeftPositive.
	neg := Breakpoint{LeftRefIndex: 0, LeftPos: 100, LeftPositive: false, RightRefIndex: 0, RightPos: 100, RightPositive: true}
	_, wasCanonical := Canonicalize(neg)
	assert.False(t, wasCanonical)

	pos := Breakpoint{LeftRefIndex: 0, LeftPos: 100, LeftPositive: true, RightRefIndex: 0, RightPos: 100, RightPositive: false}
	_, wasCanonical2 := Canonicalize(pos)
	assert.True(t, wasCanonical2)
}

func TestEvidenceTypeSnakeName(t *testing.T) {
	assert.Equal(t, "split_read", SplitRead.SnakeName())
	assert.Equal(t, "read_pair", ReadPair.SnakeName())
}
