package detector

import (
	"testing"

	"github.com/biogo/hts/sam"
	"github.com/grailbio/svpileup/breakpoint"
	"github.com/grailbio/svpileup/segment"
	"github.com/grailbio/svpileup/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chr1, chr2, chr3 *sam.Reference

func init() {
	chr1, _ = sam.NewReference("chr1", "", "", 10000, nil, nil)
	chr2, _ = sam.NewReference("chr2", "", "", 10000, nil, nil)
	chr3, _ = sam.NewReference("chr3", "", "", 10000, nil, nil)
	if _, err := sam.NewHeader(nil, []*sam.Reference{chr1, chr2, chr3}); err != nil {
		panic(err)
	}
}

func rec(t *testing.T, name string, ref *sam.Reference, pos0 int, mapq byte, flags sam.Flags, cigStr []sam.CigarOp) *sam.Record {
	consumed := 0
	for _, c := range cigStr {
		consumed += c.Len() * c.Type().Consumes().Query
	}
	seq := make([]byte, consumed)
	for i := range seq {
		seq[i] = 'A'
	}
	r, err := sam.NewRecord(name, ref, nil, pos0, -1, 0, mapq, cigStr, seq, nil, nil)
	require.NoError(t, err)
	r.Flags = flags
	return r
}

func cig(pairs ...interface{}) []sam.CigarOp {
	ops := make([]sam.CigarOp, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		ops = append(ops, sam.NewCigarOp(pairs[i].(sam.CigarOpType), pairs[i+1].(int)))
	}
	return ops
}

func neverCircular(int) bool { return false }

var defaultOpts = Options{MaxWithinReadDistance: 100, MaxReadPairInnerDistance: 1000}

func buildChain(t *testing.T, raw template.Raw) []segment.AlignedSegment {
	chain, err := template.BuildChain(raw, template.Options{MinUniqueBasesToAdd: 20, Slop: 5})
	require.NoError(t, err)
	return chain
}

func TestScenario1PlainFRPairNoBreakpoint(t *testing.T) {
	r1 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	r2 := rec(t, "q1", chr1, 249, 60, sam.Paired|sam.Read2|sam.Reverse, cig(sam.CigarMatch, 100))
	chain := buildChain(t, template.Raw{Name: "q1", R1Primary: r1, R2Primary: r2})
	evs := Detect(chain, neverCircular, defaultOpts)
	assert.Empty(t, evs)
}

func TestScenario2TandemSameStrandReadPair(t *testing.T) {
	r1 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	r2 := rec(t, "q1", chr1, 249, 60, sam.Paired|sam.Read2, cig(sam.CigarMatch, 100))
	chain := buildChain(t, template.Raw{Name: "q1", R1Primary: r1, R2Primary: r2})
	evs := Detect(chain, neverCircular, defaultOpts)
	require.Len(t, evs, 1)
	bp := evs[0].Breakpoint
	assert.Equal(t, breakpoint.Breakpoint{LeftRefIndex: 0, LeftPos: 199, LeftPositive: true, RightRefIndex: 0, RightPos: 349, RightPositive: false}, bp)
	assert.Equal(t, breakpoint.ReadPair, evs[0].Kind)
}

func TestScenario3RFPair(t *testing.T) {
	r1 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1|sam.Reverse, cig(sam.CigarMatch, 100))
	r2 := rec(t, "q1", chr1, 249, 60, sam.Paired|sam.Read2, cig(sam.CigarMatch, 100))
	chain := buildChain(t, template.Raw{Name: "q1", R1Primary: r1, R2Primary: r2})
	evs := Detect(chain, neverCircular, defaultOpts)
	require.Len(t, evs, 1)
	bp := evs[0].Breakpoint
	assert.Equal(t, breakpoint.Breakpoint{LeftRefIndex: 0, LeftPos: 100, LeftPositive: false, RightRefIndex: 0, RightPos: 349, RightPositive: false}, bp)
	assert.Equal(t, breakpoint.ReadPair, evs[0].Kind)
}

func TestScenario4LargeInsertAcrossChromosomes(t *testing.T) {
	r1 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	r2 := rec(t, "q1", chr2, 299, 60, sam.Paired|sam.Read2|sam.Reverse, cig(sam.CigarMatch, 100))
	chain := buildChain(t, template.Raw{Name: "q1", R1Primary: r1, R2Primary: r2})
	evs := Detect(chain, neverCircular, defaultOpts)
	require.Len(t, evs, 1)
	bp := evs[0].Breakpoint
	assert.Equal(t, breakpoint.Breakpoint{LeftRefIndex: 0, LeftPos: 199, LeftPositive: true, RightRefIndex: 1, RightPos: 300, RightPositive: true}, bp)
}

func TestScenario5SplitReadWithMate(t *testing.T) {
	r1Primary := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 50, sam.CigarSoftClipped, 50))
	r1Supp := rec(t, "q1", chr3, 799, 60, sam.Paired|sam.Read1|sam.Supplementary, cig(sam.CigarSoftClipped, 50, sam.CigarMatch, 50))
	r2Primary := rec(t, "q1", chr3, 849, 60, sam.Paired|sam.Read2|sam.Reverse, cig(sam.CigarMatch, 100))

	chain := buildChain(t, template.Raw{
		Name:      "q1",
		R1Primary: r1Primary,
		R1Supps:   []*sam.Record{r1Supp},
		R2Primary: r2Primary,
	})
	evs := Detect(chain, neverCircular, defaultOpts)
	require.Len(t, evs, 1)
	bp := evs[0].Breakpoint
	assert.Equal(t, breakpoint.SplitRead, evs[0].Kind)
	assert.Equal(t, chr1.ID(), bp.LeftRefIndex)
	assert.Equal(t, 149, bp.LeftPos)
	assert.True(t, bp.LeftPositive)
	assert.Equal(t, chr3.ID(), bp.RightRefIndex)
	assert.Equal(t, 800, bp.RightPos)
	assert.True(t, bp.RightPositive)
}

func TestCircularContigSuppressesIntraBreakpoint(t *testing.T) {
	r1 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	r2 := rec(t, "q1", chr1, 249, 60, sam.Paired|sam.Read2, cig(sam.CigarMatch, 100))
	chain := buildChain(t, template.Raw{Name: "q1", R1Primary: r1, R2Primary: r2})
	evs := Detect(chain, func(int) bool { return true }, defaultOpts)
	assert.Empty(t, evs)
}

func TestThresholdIsStrict(t *testing.T) {
	// Inner distance exactly equal to the threshold must not fire.
	r1 := rec(t, "q1", chr1, 0, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 50))
	r2Pos := 49 + defaultOpts.MaxReadPairInnerDistance // 0-based pos such that gap == threshold exactly
	r2 := rec(t, "q1", chr1, r2Pos, 60, sam.Paired|sam.Read2|sam.Reverse, cig(sam.CigarMatch, 50))
	chain := buildChain(t, template.Raw{Name: "q1", R1Primary: r1, R2Primary: r2})
	evs := Detect(chain, neverCircular, defaultOpts)
	assert.Empty(t, evs)
}

func TestSingleSegmentChainNoBreakpoints(t *testing.T) {
	r1 := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 100))
	chain := buildChain(t, template.Raw{Name: "q1", R1Primary: r1})
	evs := Detect(chain, neverCircular, defaultOpts)
	assert.Empty(t, evs)
}

func TestStrandFlipZeroGapDetectedIntraContig(t *testing.T) {
	r1Primary := rec(t, "q1", chr1, 99, 60, sam.Paired|sam.Read1, cig(sam.CigarMatch, 50, sam.CigarSoftClipped, 50))
	r1Supp := rec(t, "q1", chr1, 149, 60, sam.Paired|sam.Read1|sam.Supplementary|sam.Reverse, cig(sam.CigarMatch, 50, sam.CigarSoftClipped, 50))
	chain := buildChain(t, template.Raw{Name: "q1", R1Primary: r1Primary, R1Supps: []*sam.Record{r1Supp}})
	evs := Detect(chain, neverCircular, defaultOpts)
	require.Len(t, evs, 1)
	assert.Equal(t, breakpoint.SplitRead, evs[0].Kind)
}
