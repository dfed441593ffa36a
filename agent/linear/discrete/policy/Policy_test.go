package policy

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/timestep"
	"github.com/samuelfneumann/farl/utils/matutils/encoder"
)

func TestFeatureMatrix(t *testing.T) {
	features := mat.NewVecDense(3, []float64{1, 0, 2})
	m := FeatureMatrix(features, 2)

	want := mat.NewDense(2, 7, []float64{
		1, 0, 2, 0, 0, 0, 1,
		0, 0, 0, 1, 0, 2, 1,
	})
	if !mat.Equal(m, want) {
		t.Errorf("feature matrix:\nwant %v\nhave %v", mat.Formatted(want),
			mat.Formatted(m))
	}
}

func TestActionFeatures(t *testing.T) {
	features := mat.NewVecDense(2, []float64{3, 4})

	for a := 0; a < 3; a++ {
		x := ActionFeatures(features, a, 3)
		if x.Len() != 7 {
			t.Fatalf("length: want 7, have %v", x.Len())
		}

		for i := 0; i < x.Len(); i++ {
			want := 0.0
			if i == 2*a {
				want = 3
			} else if i == 2*a+1 {
				want = 4
			}
			if x.AtVec(i) != want {
				t.Errorf("action %v, index %v: want %v, have %v", a, i,
					want, x.AtVec(i))
			}
		}

		if bias := x.AtVec(x.Len() - 1); bias != 0 {
			t.Errorf("bias should be excluded from update features, have %v",
				bias)
		}
	}
}

func TestActionValues(t *testing.T) {
	actions := 3
	features := mat.NewVecDense(4, []float64{1, 0, 0, 1})
	weights := mat.NewVecDense(4*actions+1, []float64{
		0.5, 1, 2, -1,
		3, -2, 0, 0.25,
		-1, 7, 7, -4,
		0.1,
	})

	values := ActionValues(weights, features, actions)
	m := FeatureMatrix(features, actions)
	for a := 0; a < actions; a++ {
		// Q-values read through the full row, bias included
		direct := mat.Dot(m.RowView(a), weights)
		if values.AtVec(a) != direct {
			t.Errorf("action %v: want %v, have %v", a, direct, values.AtVec(a))
		}

		// Equivalent to the block features plus the bias weight
		x := ActionFeatures(features, a, actions)
		blockValue := mat.Dot(x, weights) + weights.AtVec(weights.Len()-1)
		if math.Abs(values.AtVec(a)-blockValue) > 1e-12 {
			t.Errorf("action %v: want %v, have %v", a, blockValue,
				values.AtVec(a))
		}
	}

	want := []float64{-0.5 + 0.1, 3.25 + 0.1, -5 + 0.1}
	if !floats.EqualApprox(values.RawVector().Data, want, 1e-12) {
		t.Errorf("action values: want %v, have %v", want,
			values.RawVector().Data)
	}
}

func TestProbabilities(t *testing.T) {
	values := mat.NewVecDense(4, []float64{1, 3, 3, -2})

	for _, e := range []float64{0, 0.05, 0.3, 0.5, 1} {
		for k := 1; k <= values.Len(); k++ {
			v := values.SliceVec(0, k)
			probs := Probabilities(v, e)

			if sum := floats.Sum(probs); math.Abs(sum-1) > 1e-12 {
				t.Errorf("ε = %v, k = %v: probabilities sum to %v", e, k, sum)
			}

			best := 0
			if k > 1 {
				// Ties broken by the first index
				best = 1
			}

			for a, p := range probs {
				want := e / float64(k)
				if a == best {
					want += 1 - e
				}
				if math.Abs(p-want) > 1e-12 {
					t.Errorf("ε = %v, k = %v, action %v: want %v, have %v",
						e, k, a, want, p)
				}
			}
		}
	}
}

func newTestPolicy(t *testing.T, e float64) *EGreedy {
	enc := encoder.NewFixedSparse([]int{2, 2})
	actions := 3
	weights := mat.NewVecDense(enc.VecLength()*actions+1, nil)

	// Action 2 is best in every state
	weights.SetVec(2*enc.VecLength(), 1.0)
	weights.SetVec(2*enc.VecLength()+1, 1.0)
	weights.SetVec(2*enc.VecLength()+2, 1.0)
	weights.SetVec(2*enc.VecLength()+3, 1.0)

	p, err := NewEGreedy(e, weights, enc, actions, 1)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEGreedySelectAction(t *testing.T) {
	p := newTestPolicy(t, 0.3)
	step := timestep.New(timestep.First, 0, mat.NewVecDense(2, []float64{1, 0}),
		0)

	samples := 20000
	counts := make([]float64, p.Actions())
	for i := 0; i < samples; i++ {
		counts[p.SelectAction(step)]++
	}

	want := []float64{0.1, 0.1, 0.8}
	for a := range counts {
		if freq := counts[a] / float64(samples); math.Abs(freq-want[a]) > 0.02 {
			t.Errorf("action %v: want frequency %v, have %v", a, want[a], freq)
		}
	}

	p.Eval()
	for i := 0; i < 100; i++ {
		if a := p.SelectAction(step); a != 2 {
			t.Fatalf("evaluation mode should be greedy: want 2, have %v", a)
		}
	}
	if !p.IsEval() {
		t.Error("policy should be in evaluation mode")
	}
	p.Train()
	if p.IsEval() {
		t.Error("policy should be in training mode")
	}
}

func TestEGreedySharesWeights(t *testing.T) {
	p := newTestPolicy(t, 0.0)
	obs := mat.NewVecDense(2, []float64{0, 1})

	if a := p.Greedy(obs); a != 2 {
		t.Fatalf("greedy action: want 2, have %v", a)
	}

	// Updating the shared weights changes the policy
	p.weights.SetVec(0, 10)
	if a := p.Greedy(obs); a != 0 {
		t.Errorf("greedy action after update: want 0, have %v", a)
	}
}

func TestNewEGreedyWeightLength(t *testing.T) {
	enc := encoder.NewTabular([]int{2, 3})
	if _, err := NewEGreedy(0.1, mat.NewVecDense(6, nil), enc, 2, 1); err == nil {
		t.Error("expected error for incorrect number of weights")
	}

	g, err := NewGreedy(mat.NewVecDense(13, nil), enc, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsEval() || g.Epsilon() != 0 {
		t.Errorf("greedy policy should be in evaluation mode with ε = 0")
	}
}

func BenchmarkSample(b *testing.B) {
	enc := encoder.NewFixedSparse([]int{10, 10, 10})
	weights := mat.NewVecDense(enc.VecLength()*5+1, nil)
	p, err := NewEGreedy(0.1, weights, enc, 5, 1)
	if err != nil {
		b.Fatal(err)
	}
	obs := mat.NewVecDense(3, []float64{1, 5, 9})

	for i := 0; i < b.N; i++ {
		p.Sample(obs)
	}
}
