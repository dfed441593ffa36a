// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MaxVec finds and returns the index of the maximum value in a vector.
// If multiple equal max values exist, only the first one is returned.
// NaN values are never selected unless they come first.
func MaxVec(values mat.Vector) int {
	max, idx := values.AtVec(0), 0

	for i := 1; i < values.Len(); i++ {
		if values.AtVec(i) > max {
			max = values.AtVec(i)
			idx = i
		}
	}
	return idx
}

// VecOnes returns a vector of 1.0's
func VecOnes(length int) *mat.VecDense {
	oneSlice := make([]float64, length)
	floats.AddConst(1.0, oneSlice)
	return mat.NewVecDense(length, oneSlice)
}

// OneHot returns a vector of the given length with a single 1.0 at
// index i. OneHot panics if i is out of range.
func OneHot(length, i int) *mat.VecDense {
	vec := mat.NewVecDense(length, nil)
	vec.SetVec(i, 1.0)
	return vec
}

// CountNonZero returns the number of non-zero elements of a vector
func CountNonZero(v mat.Vector) int {
	count := 0
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) != 0 {
			count++
		}
	}
	return count
}

// Ints converts a vector of integral floats to a slice of ints,
// truncating any fractional part
func Ints(v mat.Vector) []int {
	ints := make([]int, v.Len())
	for i := range ints {
		ints[i] = int(v.AtVec(i))
	}
	return ints
}
