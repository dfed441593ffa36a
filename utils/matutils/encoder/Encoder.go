// Package encoder implements feature representations of observations
// from multi-dimensional discrete spaces.
//
// An observation is a vector whose element i takes one of the values
// (0, 1, ... nvec[i]-1). Encoders turn such observations into binary
// feature vectors suitable for linear function approximation. Two
// representations are available:
//
//	FixedSparse (fsr):	one-hot per dimension, concatenated
//	Tabular:		one-hot over the joint state
//
// For example, with nvec = [2, 3] the observation [1, 2] is encoded as
//
//	FixedSparse: [0, 1, 0, 0, 1]
//	Tabular:     [0, 0, 0, 0, 0, 1]
package encoder

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/utils/matutils"
)

// Representation names a feature representation
type Representation string

const (
	// FixedSparse is the fixed sparse representation (fsr)
	FixedSparse Representation = "fsr"

	// Tabular is the tabular, or joint one-hot, representation
	Tabular Representation = "tabular"
)

// ErrUnknownRepresentation is returned when constructing an Encoder
// for a Representation which is neither FixedSparse nor Tabular
var ErrUnknownRepresentation = errors.New("unknown feature representation")

// Encoder encodes observations as feature vectors
type Encoder interface {
	// Encode returns the feature vector of an observation. Encode
	// panics if any element of the observation is out of range.
	Encode(obs mat.Vector) *mat.VecDense

	// VecLength returns the length of encoded feature vectors
	VecLength() int
}

// New returns a new Encoder using Representation r for observations
// whose dimension i takes nvec[i] distinct values
func New(r Representation, nvec []int) (Encoder, error) {
	if len(nvec) == 0 {
		return nil, fmt.Errorf("new: observations must have at least " +
			"one dimension")
	}
	for i, n := range nvec {
		if n < 1 {
			return nil, fmt.Errorf("new: dimension %d must take at least "+
				"one value, has %d", i, n)
		}
	}

	switch r {
	case FixedSparse:
		return NewFixedSparse(nvec), nil

	case Tabular:
		return NewTabular(nvec), nil
	}

	return nil, fmt.Errorf("new: %w %q, only %q (fixed sparse "+
		"representation) and %q are supported", ErrUnknownRepresentation, r,
		FixedSparse, Tabular)
}

// checkObs panics if an observation does not fit nvec
func checkObs(obs mat.Vector, nvec []int) {
	if obs.Len() != len(nvec) {
		panic(fmt.Sprintf("encode: observation should have %d dimensions, "+
			"have %d", len(nvec), obs.Len()))
	}
	for i, v := range matutils.Ints(obs) {
		if v < 0 || v >= nvec[i] {
			panic(fmt.Sprintf("encode: observation dimension %d = %v "+
				"outside [0, %d)", i, obs.AtVec(i), nvec[i]))
		}
	}
}
