package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerAssignsStableIncreasingIds(t *testing.T) {
	tr := NewTracker()
	a := Breakpoint{LeftRefIndex: 0, LeftPos: 100, LeftPositive: true, RightRefIndex: 0, RightPos: 200, RightPositive: true}
	b := Breakpoint{LeftRefIndex: 0, LeftPos: 300, LeftPositive: true, RightRefIndex: 0, RightPos: 400, RightPositive: true}

	assert.Equal(t, 0, tr.Count(a, SplitRead))
	assert.Equal(t, 1, tr.Count(b, ReadPair))
	assert.Equal(t, 0, tr.Count(a, ReadPair)) // same breakpoint, same id
	assert.Equal(t, 2, tr.Len())

	entries := tr.Entries()
	assert.Equal(t, a, entries[0].Breakpoint)
	assert.Equal(t, 1, entries[0].Info.SplitRead)
	assert.Equal(t, 1, entries[0].Info.ReadPair)
	assert.Equal(t, 2, entries[0].Info.Total())
}

func TestPairedOrdering(t *testing.T) {
	a := Breakpoint{LeftRefIndex: 0, RightRefIndex: 1, LeftPos: 10, RightPos: 20}
	b := Breakpoint{LeftRefIndex: 0, RightRefIndex: 1, LeftPos: 10, RightPos: 30}
	c := Breakpoint{LeftRefIndex: 1, RightRefIndex: 1, LeftPos: 1, RightPos: 1}
	assert.True(t, PairedOrdering(a, b))
	assert.False(t, PairedOrdering(b, a))
	assert.True(t, PairedOrdering(a, c))
}

func TestSortedByPairedOrdering(t *testing.T) {
	tr := NewTracker()
	b2 := Breakpoint{LeftRefIndex: 0, LeftPos: 300, RightRefIndex: 0, RightPos: 400, LeftPositive: true, RightPositive: true}
	b1 := Breakpoint{LeftRefIndex: 0, LeftPos: 100, RightRefIndex: 0, RightPos: 200, LeftPositive: true, RightPositive: true}
	tr.Count(b2, SplitRead)
	tr.Count(b1, SplitRead)

	sorted := tr.SortedByPairedOrdering()
	assert.Equal(t, b1, sorted[0].Breakpoint)
	assert.Equal(t, b2, sorted[1].Breakpoint)
}
