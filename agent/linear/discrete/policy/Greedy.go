package policy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/utils/matutils/encoder"
)

// NewGreedy creates a new greedy policy. The policy is an EGreedy
// policy with ε = 0 which stays in evaluation mode unless Train is
// called.
func NewGreedy(weights *mat.VecDense, enc encoder.Encoder, actions int,
	seed uint64) (*EGreedy, error) {
	p, err := NewEGreedy(0.0, weights, enc, actions, seed)
	if err != nil {
		return nil, err
	}
	p.Eval()
	return p, nil
}
