package genomicrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	a := New(0, 100, 200)
	b := New(0, 150, 250)
	c := New(0, 201, 300)
	d := New(1, 150, 250)

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
	assert.False(t, a.Overlaps(d))
}

func TestUnion(t *testing.T) {
	a := New(0, 100, 200)
	b := New(0, 150, 250)
	assert.Equal(t, New(0, 100, 250), a.Union(b))

	assert.Panics(t, func() { a.Union(New(0, 201, 300)) })
}

func TestLess(t *testing.T) {
	assert.True(t, New(0, 100, 200).Less(New(1, 1, 2)))
	assert.True(t, New(0, 100, 200).Less(New(0, 101, 200)))
	assert.True(t, New(0, 100, 200).Less(New(0, 100, 201)))
	assert.False(t, New(0, 100, 200).Less(New(0, 100, 200)))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 101, New(0, 100, 200).Len())
}
