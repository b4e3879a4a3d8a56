package targets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(refs map[string]int) ContigLookup {
	return func(name string) (int, bool) {
		r, ok := refs[name]
		return r, ok
	}
}

func TestLoadAndOverlapsAny(t *testing.T) {
	bed := "chr1\t100\t200\texon1\nchr1\t500\t600\texon2\nchr2\t10\t20\tgeneX\n"
	idx, err := Load(strings.NewReader(bed), lookup(map[string]int{"chr1": 0, "chr2": 1}))
	require.NoError(t, err)

	assert.True(t, idx.OverlapsAny(0, 150, 160))
	assert.True(t, idx.OverlapsAny(0, 199, 250))
	assert.False(t, idx.OverlapsAny(0, 201, 499))
	assert.False(t, idx.OverlapsAny(1, 100, 200))
	assert.True(t, idx.OverlapsAny(1, 1, 15))
}

func TestNamesSortedAndDeduplicated(t *testing.T) {
	bed := "chr1\t100\t200\texon1\nchr1\t150\t250\texon1\nchr1\t150\t250\texon0\n"
	idx, err := Load(strings.NewReader(bed), lookup(map[string]int{"chr1": 0}))
	require.NoError(t, err)

	assert.Equal(t, []string{"exon0", "exon1"}, idx.Names(0, 160, 170))
	assert.Equal(t, "exon0,exon1", idx.JoinedNames(0, 160, 170))
}

func TestUnrecognizedContigSkipped(t *testing.T) {
	bed := "chrUn\t0\t10\tfoo\n"
	idx, err := Load(strings.NewReader(bed), lookup(map[string]int{"chr1": 0}))
	require.NoError(t, err)
	assert.False(t, idx.OverlapsAny(0, 1, 100))
}

func TestNilIndexIsSafe(t *testing.T) {
	var idx *Index
	assert.False(t, idx.OverlapsAny(0, 1, 10))
	assert.Nil(t, idx.Names(0, 1, 10))
	assert.Equal(t, "", idx.JoinedNames(0, 1, 10))
}

func TestParseRequirement(t *testing.T) {
	for _, s := range []string{"AnnotateOnly", "OverlapAny", "OverlapBoth"} {
		_, ok := ParseRequirement(s)
		assert.True(t, ok)
	}
	_, ok := ParseRequirement("bogus")
	assert.False(t, ok)
}
