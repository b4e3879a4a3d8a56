package bedpe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/svpileup/aggregate"
)

func TestProjectConvertsToHalfOpen(t *testing.T) {
	a := aggregate.Aggregated{
		ID: "112_456_5", LeftContig: "chr1", LeftMinPos: 100, LeftMaxPos: 300, LeftStrand: true,
		RightContig: "chr2", RightMinPos: 100, RightMaxPos: 200, RightStrand: false, Total: 4,
	}
	row := Project(a)
	assert.Equal(t, 99, row.Start1)
	assert.Equal(t, 300, row.End1)
	assert.Equal(t, 99, row.Start2)
	assert.Equal(t, 200, row.End2)
	assert.Equal(t, "+", row.Strand1)
	assert.Equal(t, "-", row.Strand2)
}

func TestWriteTableHasNoHeader(t *testing.T) {
	a := aggregate.Aggregated{
		ID: "0", LeftContig: "chr1", LeftMinPos: 100, LeftMaxPos: 300, LeftStrand: true,
		RightContig: "chr2", RightMinPos: 100, RightMaxPos: 200, RightStrand: false, Total: 4,
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []aggregate.Aggregated{a}))
	assert.Equal(t, "chr1\t99\t300\tchr2\t99\t200\t0\t4\t+\t-\n", buf.String())
}
