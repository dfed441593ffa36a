package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from
// a multi-dimensional uniform categorical distribution. Dimension i is
// sampled from (0, 1, 2, ... nvec[i]-1).
type CategoricalStarter struct {
	features int
	seed     uint64
	rand     []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... nvec[i]-1)
func NewCategoricalStarter(nvec []int, seed uint64) *CategoricalStarter {
	source := rand.NewSource(seed)

	rand := make([]distuv.Categorical, len(nvec))
	for i := range rand {
		weights := make([]float64, nvec[i])
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		rand[i] = distuv.NewCategorical(weights, source)
	}

	return &CategoricalStarter{len(nvec), seed, rand}
}

// Start returns a starting state vector
func (c *CategoricalStarter) Start() mat.Vector {
	start := make([]float64, c.features)
	for i := range start {
		start[i] = c.rand[i].Rand()
	}

	return mat.NewVecDense(c.features, start)
}

// FixedStarter always starts episodes in the same state
type FixedStarter struct {
	state *mat.VecDense
}

// NewFixedStarter returns a Starter which always starts in state
func NewFixedStarter(state []float64) FixedStarter {
	return FixedStarter{mat.NewVecDense(len(state), state)}
}

// Start returns a copy of the starting state
func (f FixedStarter) Start() mat.Vector {
	return mat.VecDenseCopyOf(f.state)
}
