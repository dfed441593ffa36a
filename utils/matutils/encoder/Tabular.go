package encoder

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/utils/intutils"
	"github.com/samuelfneumann/farl/utils/matutils"
)

// TabularEncoder encodes an observation as a one-hot vector over all
// joint observations. The observation is flattened in row-major order,
// with the first dimension most significant.
type TabularEncoder struct {
	nvec   []int
	length int
}

// NewTabular returns a new TabularEncoder
func NewTabular(nvec []int) *TabularEncoder {
	n := make([]int, len(nvec))
	copy(n, nvec)

	return &TabularEncoder{nvec: n, length: intutils.Prod(nvec...)}
}

// Index returns the index of the single nonzero feature in the
// encoding of obs
func (t *TabularEncoder) Index(obs mat.Vector) int {
	checkObs(obs, t.nvec)

	values := matutils.Ints(obs)
	index := values[0]
	for i := 1; i < len(t.nvec); i++ {
		index = index*t.nvec[i] + values[i]
	}
	return index
}

// Encode encodes an observation
func (t *TabularEncoder) Encode(obs mat.Vector) *mat.VecDense {
	return matutils.OneHot(t.length, t.Index(obs))
}

// VecLength returns the length of encoded vectors, the product of the
// number of values each dimension takes
func (t *TabularEncoder) VecLength() int {
	return t.length
}
