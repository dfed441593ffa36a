package weights

import (
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LinearUV initializes a vector of linear weights, drawn from a
// univariate distribution
type LinearUV struct {
	distuv.Rander
}

// NewLinearUV  creates and returns a new LinearUV
func NewLinearUV(rand distuv.Rander) LinearUV {
	if rand == nil {
		panic("rand cannot be nil")
	}
	return LinearUV{rand}
}

// NewFanIn returns a LinearUV which draws weights uniformly from
// [-1/sqrt(n), 1/sqrt(n)], where n is the number of weights
func NewFanIn(n int, seed uint64) LinearUV {
	bound := 1.0 / math.Sqrt(float64(n))
	uniform := distuv.Uniform{
		Min: -bound,
		Max: bound,
		Src: rand.NewSource(seed),
	}
	return NewLinearUV(uniform)
}

// Initialize initializes a vector of weights using values drawn from
// a univariate distribution
func (l LinearUV) Initialize(weights *mat.VecDense) {
	if weights == nil {
		return
	}

	for i := 0; i < weights.Len(); i++ {
		weights.SetVec(i, l.Rand())
	}
}
