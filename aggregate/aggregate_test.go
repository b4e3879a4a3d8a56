package aggregate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkPileup(id, leftPos, rightPos, total int) Pileup {
	return Pileup{
		ID: id, LeftContig: "chr1", LeftPos: leftPos, LeftStrand: true,
		RightContig: "chr2", RightPos: rightPos, RightStrand: false,
		SplitReads: 0, ReadPairs: total, Total: total,
	}
}

func TestClusterMergesWithinMaxDistChain(t *testing.T) {
	pileups := []Pileup{
		mkPileup(0, 100, 200, 1),
		mkPileup(1, 200, 100, 2),
		mkPileup(2, 300, 200, 1),
		mkPileup(3, 300, 401, 1),
	}
	rows := Aggregate(pileups, nil, nil, nil, Options{MaxDist: 100})
	require.Len(t, rows, 2)

	var merged, lone Aggregated
	for _, r := range rows {
		if len(r.LeftPileups) == 3 {
			merged = r
		} else {
			lone = r
		}
	}
	assert.Equal(t, 100, merged.LeftMinPos)
	assert.Equal(t, 300, merged.LeftMaxPos)
	assert.Equal(t, 100, merged.RightMinPos)
	assert.Equal(t, 200, merged.RightMaxPos)
	assert.Equal(t, 4, merged.Total)

	assert.Equal(t, 300, lone.LeftMinPos)
	assert.Equal(t, 401, lone.RightMaxPos)
	assert.Equal(t, 1, lone.Total)
}

func TestCategoryAssignment(t *testing.T) {
	assert.Equal(t, "Inter-contig rearrangement", category("chr1", "chr2", true, true))
	assert.Equal(t, "Intra-contig rearrangement", category("chr1", "chr1", true, false))
	assert.Equal(t, "Possible deletion", category("chr1", "chr1", true, true))
}

func TestParsePileupsRejectsBadTotal(t *testing.T) {
	table := "id\tleft_contig\tleft_pos\tleft_strand\tright_contig\tright_pos\tright_strand\tsplit_reads\tread_pairs\ttotal\tleft_targets\tright_targets\n" +
		"0\tchr1\t100\t+\tchr2\t200\t-\t1\t1\t3\t\t\n"
	_, err := ParsePileups(strings.NewReader(table))
	require.Error(t, err)
}

func TestParsePileupsRoundTrip(t *testing.T) {
	table := "id\tleft_contig\tleft_pos\tleft_strand\tright_contig\tright_pos\tright_strand\tsplit_reads\tread_pairs\ttotal\tleft_targets\tright_targets\n" +
		"0\tchr1\t100\t+\tchr2\t200\t-\t1\t0\t1\tTP53\t\n"
	rows, err := ParsePileups(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "chr1", rows[0].LeftContig)
	assert.True(t, rows[0].LeftStrand)
	assert.False(t, rows[0].RightStrand)
	assert.Equal(t, "TP53", rows[0].LeftTargets)
}
