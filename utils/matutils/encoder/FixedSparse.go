package encoder

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/utils/intutils"
)

// FixedSparseEncoder encodes each dimension of an observation as a
// one-hot vector and concatenates the results. Encoded vectors have
// exactly one nonzero element per observation dimension.
type FixedSparseEncoder struct {
	nvec    []int
	offsets []int
	length  int
}

// NewFixedSparse returns a new FixedSparseEncoder
func NewFixedSparse(nvec []int) *FixedSparseEncoder {
	offsets := make([]int, len(nvec))
	for i := 1; i < len(nvec); i++ {
		offsets[i] = offsets[i-1] + nvec[i-1]
	}

	n := make([]int, len(nvec))
	copy(n, nvec)

	return &FixedSparseEncoder{
		nvec:    n,
		offsets: offsets,
		length:  intutils.Sum(nvec...),
	}
}

// Encode encodes an observation
func (f *FixedSparseEncoder) Encode(obs mat.Vector) *mat.VecDense {
	checkObs(obs, f.nvec)

	features := mat.NewVecDense(f.length, nil)
	for i, offset := range f.offsets {
		features.SetVec(offset+int(obs.AtVec(i)), 1.0)
	}
	return features
}

// VecLength returns the length of encoded vectors, the sum of the
// number of values each dimension takes
func (f *FixedSparseEncoder) VecLength() int {
	return f.length
}
