package aggregate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatedTableRoundTrip(t *testing.T) {
	freq := 0.5
	overlap := true
	rows := []Aggregated{
		{
			ID: "0", Category: "Possible deletion",
			LeftContig: "chr1", LeftMinPos: 100, LeftMaxPos: 300, LeftStrand: true,
			RightContig: "chr1", RightMinPos: 100, RightMaxPos: 200, RightStrand: false,
			SplitReads: 1, ReadPairs: 3, Total: 4,
			LeftPileups: []int{100, 200, 300}, RightPileups: []int{100, 150, 200},
			LeftFrequency: &freq, LeftOverlapsTarget: &overlap,
			LeftTargets: "TP53",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rows))

	parsed, err := ParseAggregatedTable(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, rows[0].ID, parsed[0].ID)
	assert.Equal(t, rows[0].LeftMinPos, parsed[0].LeftMinPos)
	assert.Equal(t, rows[0].LeftPileups, parsed[0].LeftPileups)
	require.NotNil(t, parsed[0].LeftFrequency)
	assert.Equal(t, 0.5, *parsed[0].LeftFrequency)
	assert.Nil(t, parsed[0].RightFrequency)
	require.NotNil(t, parsed[0].LeftOverlapsTarget)
	assert.True(t, *parsed[0].LeftOverlapsTarget)
	assert.Equal(t, "TP53", parsed[0].LeftTargets)
}
