package template

import (
	"testing"

	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChainEmptyTemplate(t *testing.T) {
	_, err := BuildChain(Raw{Name: "q1"}, Options{MinUniqueBasesToAdd: 20, Slop: 5})
	assert.Error(t, err)
}

func TestBuildChainSingleEndOnly(t *testing.T) {
	primary := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	chain, err := BuildChain(Raw{Name: "q1", R1Primary: primary}, Options{MinUniqueBasesToAdd: 20, Slop: 5})
	require.NoError(t, err)
	assert.Len(t, chain, 1)
}

func TestBuildChainPlainFRPair(t *testing.T) {
	// R1 chr1:100 + 100M, R2 chr1:250 - 100M: no overlap, unmerged chain of 2.
	r1 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	r2 := rec(t, "q1", chr1, 249, 60, sam.Paired|sam.Read2|sam.Reverse, cig(sam.CigarMatch, 100))
	chain, err := BuildChain(Raw{Name: "q1", R1Primary: r1, R2Primary: r2}, Options{MinUniqueBasesToAdd: 20, Slop: 5})
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.True(t, chain[0].PositiveStrand)
	assert.True(t, chain[1].PositiveStrand) // R2 was negated: reverse -> positive
	assert.Equal(t, 100, chain[0].Range.Start)
	assert.Equal(t, 250, chain[1].Range.Start)
}

func TestBuildChainMergesOverlappingMates(t *testing.T) {
	// Same range, same strand after negation: R1 and R2 fully overlap and merge.
	r1 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	r2 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read2|sam.Reverse, cig(sam.CigarMatch, 100))
	chain, err := BuildChain(Raw{Name: "q1", R1Primary: r1, R2Primary: r2}, Options{MinUniqueBasesToAdd: 20, Slop: 5})
	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, 100, chain[0].Range.Start)
	assert.Equal(t, 199, chain[0].Range.End)
}
