package environment

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an acion, an observation, a discount, or a reward
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

var (
	errNotDiscrete     = errors.New("space is not discrete")
	errNotZeroBased    = errors.New("discrete values must be enumerated from 0")
	errNotIntegral     = errors.New("discrete bounds must be integers")
	errNotSingleAction = errors.New("space must be 1-dimensional")
)

// Spec implements an environment specification, which tells the type,
// shape, and bounds of an action, observation, discount, or reward in
// an environment
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec constructs a new environment specification
// The shape argument outlines the shape of the data described by the
// specification. The argument t outlines what the specification is
// describing (e.g. actions, observations, etc.). The cardinality
// arguments describes whether the values that the spec describes are
// continuous or discrete.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, cardinality Cardinality) Spec {
	if shape.Len() != lowerBound.Len() {
		panic(fmt.Sprintf("shape length %v must match lower bounds length %v",
			shape.Len(), lowerBound.Len()))
	}
	if shape.Len() != upperBound.Len() {
		panic(fmt.Sprintf("shape length %v must match uuper bounds length %v",
			shape.Len(), upperBound.Len()))
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

// NewMultiDiscreteSpec returns a discrete Spec where dimension i takes
// the values (0, 1, ... nvec[i]-1).
func NewMultiDiscreteSpec(nvec []int, t SpecType) Spec {
	upper := make([]float64, len(nvec))
	for i, n := range nvec {
		if n < 1 {
			panic(fmt.Sprintf("dimension %d must have at least one value, "+
				"have %d", i, n))
		}
		upper[i] = float64(n - 1)
	}

	shape := mat.NewVecDense(len(nvec), nil)
	lower := mat.NewVecDense(len(nvec), nil)
	return NewSpec(shape, t, lower, mat.NewVecDense(len(nvec), upper),
		Discrete)
}

// NewDiscreteSpec returns a 1-dimensional discrete Spec taking the
// values (0, 1, ... n-1)
func NewDiscreteSpec(n int, t SpecType) Spec {
	return NewMultiDiscreteSpec([]int{n}, t)
}

// NVec returns the number of values each dimension of a discrete Spec
// can take. An error is returned if the Spec does not describe a
// multi-dimensional discrete space enumerated from 0.
func (s Spec) NVec() ([]int, error) {
	if s.Cardinality != Discrete {
		return nil, errNotDiscrete
	}

	nvec := make([]int, s.Shape.Len())
	for i := range nvec {
		low, high := s.LowerBound.AtVec(i), s.UpperBound.AtVec(i)
		if low != 0 {
			return nil, errNotZeroBased
		}
		if high != math.Trunc(high) || high < 0 {
			return nil, errNotIntegral
		}
		nvec[i] = int(high) + 1
	}
	return nvec, nil
}

// N returns the number of values a 1-dimensional discrete Spec can
// take
func (s Spec) N() (int, error) {
	if s.Shape.Len() != 1 {
		return 0, errNotSingleAction
	}
	nvec, err := s.NVec()
	if err != nil {
		return 0, err
	}
	return nvec[0], nil
}
