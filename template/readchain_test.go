package template

import (
	"testing"

	"github.com/biogo/hts/sam"
	"github.com/grailbio/svpileup/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSegment(t *testing.T, r *sam.Record) segment.AlignedSegment {
	s, err := segment.New(r)
	require.NoError(t, err)
	return s
}

func TestPerReadChainKeepsUniqueSupplementary(t *testing.T) {
	primary := mustSegment(t, rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 30, sam.CigarSoftClipped, 70)))
	supp := mustSegment(t, rec(t, "q1", chr2, 499, 60, sam.Paired|sam.Read1|sam.Supplementary, cig(sam.CigarSoftClipped, 30, sam.CigarMatch, 70)))

	kept := perReadChain(primary, []segment.AlignedSegment{supp}, 100, 20)
	assert.Len(t, kept, 2)
	assert.Equal(t, 1, kept[0].ReadStart)
	assert.Equal(t, 31, kept[1].ReadStart)
}

func TestPerReadChainDropsRedundantSupplementary(t *testing.T) {
	primary := mustSegment(t, rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100)))
	// Fully covered by the primary: contributes zero unique bases.
	supp := mustSegment(t, rec(t, "q1", chr2, 499, 60, sam.Paired|sam.Read1|sam.Supplementary, cig(sam.CigarMatch, 100)))

	kept := perReadChain(primary, []segment.AlignedSegment{supp}, 100, 20)
	assert.Len(t, kept, 1)
}

func TestPerReadChainThresholdIsInclusive(t *testing.T) {
	primary := mustSegment(t, rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 50, sam.CigarSoftClipped, 50)))
	// Adds exactly 20 unique bases (positions 51-70 overlap primary's 1-50
	// by zero; supplementary spans 31-70, 20 unique past the primary).
	supp := mustSegment(t, rec(t, "q1", chr2, 499, 60, sam.Paired|sam.Read1|sam.Supplementary, cig(sam.CigarSoftClipped, 30, sam.CigarMatch, 40)))

	kept := perReadChain(primary, []segment.AlignedSegment{supp}, 100, 20)
	assert.Len(t, kept, 2)
}

func TestPerReadChainNoSupplementaries(t *testing.T) {
	primary := mustSegment(t, rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100)))
	kept := perReadChain(primary, nil, 100, 20)
	assert.Equal(t, []segment.AlignedSegment{primary}, kept)
}
