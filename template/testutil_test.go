package template

import (
	"testing"

	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/require"
)

var (
	chr1, chr2, chr3 *sam.Reference
)

func init() {
	var err error
	chr1, err = sam.NewReference("chr1", "", "", 10000, nil, nil)
	if err != nil {
		panic(err)
	}
	chr2, err = sam.NewReference("chr2", "", "", 10000, nil, nil)
	if err != nil {
		panic(err)
	}
	chr3, err = sam.NewReference("chr3", "", "", 10000, nil, nil)
	if err != nil {
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
