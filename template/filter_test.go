package template

import (
	"testing"

	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
)

func TestFilterDropsLowMapqPrimary(t *testing.T) {
	r1 := rec(t, "q1", chr1, 99, 10, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	r2 := rec(t, "q1", chr1, 249, 40, sam.Paired|sam.Read2, cig(sam.CigarMatch, 100))
	out, ok := Filter(Raw{Name: "q1", R1Primary: r1, R2Primary: r2}, FilterOptions{MinPrimaryMapq: 30, MinSupplementaryMapq: 18})
	assert.True(t, ok)
	assert.Nil(t, out.R1Primary)
	assert.Equal(t, r2, out.R2Primary)
}

func TestFilterDropsTemplateWithNoOkPrimary(t *testing.T) {
	r1 := rec(t, "q1", chr1, 99, 10, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	_, ok := Filter(Raw{Name: "q1", R1Primary: r1}, FilterOptions{MinPrimaryMapq: 30, MinSupplementaryMapq: 18})
	assert.False(t, ok)
}

func TestFilterSupplementaryMapq(t *testing.T) {
	r1 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	supGood := rec(t, "q1", chr2, 499, 20, sam.Paired|sam.Read1|sam.Supplementary, cig(sam.CigarMatch, 100))
	supBad := rec(t, "q1", chr3, 499, 10, sam.Paired|sam.Read1|sam.Supplementary, cig(sam.CigarMatch, 100))
	out, ok := Filter(Raw{Name: "q1", R1Primary: r1, R1Supps: []*sam.Record{supGood, supBad}}, FilterOptions{MinPrimaryMapq: 30, MinSupplementaryMapq: 18})
	assert.True(t, ok)
	assert.Equal(t, []*sam.Record{supGood}, out.R1Supps)
}
