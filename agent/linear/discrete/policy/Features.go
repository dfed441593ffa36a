package policy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/utils/matutils"
)

// FeatureMatrix returns the state-action feature matrix of a feature
// vector. The matrix has one row per action and
// features.Len()*actions+1 columns. Row a holds features in columns
// [a*features.Len(), (a+1)*features.Len()) and zeroes elsewhere, except
// for the last column which is a bias unit of 1 shared by all actions.
func FeatureMatrix(features mat.Vector, actions int) *mat.Dense {
	n := features.Len()
	m := mat.NewDense(actions, n*actions+1, nil)

	for a := 0; a < actions; a++ {
		for i := 0; i < n; i++ {
			m.Set(a, a*n+i, features.AtVec(i))
		}
	}
	m.SetCol(n*actions, matutils.VecOnes(actions).RawVector().Data)
	return m
}

// ActionFeatures returns the state-action feature vector for taking
// action in a state with the given features. Only the block of action
// is populated; the bias unit is left at 0.
func ActionFeatures(features mat.Vector, action, actions int) *mat.VecDense {
	n := features.Len()
	x := mat.NewVecDense(n*actions+1, nil)

	block := x.SliceVec(action*n, (action+1)*n).(*mat.VecDense)
	block.CopyVec(features)
	return x
}

// ActionValues returns the value of each action in a state with the
// given features, under linear weights
func ActionValues(weights, features mat.Vector, actions int) *mat.VecDense {
	values := mat.NewVecDense(actions, nil)
	values.MulVec(FeatureMatrix(features, actions), weights)
	return values
}

// Probabilities returns the ε-greedy probability of each action. Each
// action is selected with probability ε / N, and the greedy action
// has an additional 1 - ε probability of selection. Ties are broken
// in favour of the lowest action.
func Probabilities(actionValues mat.Vector, epsilon float64) []float64 {
	numActions := actionValues.Len()

	// Calculate the ε probability of choosing any action at random
	prob := epsilon / float64(numActions)
	probs := make([]float64, numActions)
	for i := range probs {
		probs[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	probs[matutils.MaxVec(actionValues)] += 1.0 - epsilon
	return probs
}
