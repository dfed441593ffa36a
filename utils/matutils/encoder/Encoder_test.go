package encoder

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/utils/matutils"
)

// allObservations enumerates every observation of a multi-discrete
// space in row-major order
func allObservations(nvec []int) []*mat.VecDense {
	var obs []*mat.VecDense
	current := make([]int, len(nvec))

	for {
		values := make([]float64, len(nvec))
		for i, v := range current {
			values[i] = float64(v)
		}
		obs = append(obs, mat.NewVecDense(len(values), values))

		i := len(nvec) - 1
		for ; i >= 0; i-- {
			current[i]++
			if current[i] < nvec[i] {
				break
			}
			current[i] = 0
		}
		if i < 0 {
			return obs
		}
	}
}

func TestNew(t *testing.T) {
	Convey("When constructing an Encoder", t, func() {
		nvec := []int{3, 4}

		Convey("The fixed sparse representation sums cardinalities", func() {
			enc, err := New(FixedSparse, nvec)
			So(err, ShouldBeNil)
			So(enc.VecLength(), ShouldEqual, 7)
		})

		Convey("The tabular representation multiplies cardinalities", func() {
			enc, err := New(Tabular, nvec)
			So(err, ShouldBeNil)
			So(enc.VecLength(), ShouldEqual, 12)
		})

		Convey("Unknown representations are rejected", func() {
			enc, err := New("tile-coding", nvec)
			So(enc, ShouldBeNil)
			So(errors.Is(err, ErrUnknownRepresentation), ShouldBeTrue)
		})

		Convey("Empty and zero-valued dimensions are rejected", func() {
			_, err := New(FixedSparse, nil)
			So(err, ShouldNotBeNil)

			_, err = New(Tabular, []int{2, 0})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFixedSparse(t *testing.T) {
	Convey("Given a fixed sparse encoder", t, func() {
		nvec := []int{2, 3, 4}
		enc := NewFixedSparse(nvec)

		Convey("Each dimension sets one feature in its own block", func() {
			features := enc.Encode(mat.NewVecDense(3, []float64{1, 0, 3}))
			want := []float64{0, 1, 1, 0, 0, 0, 0, 0, 1}
			So(features.RawVector().Data, ShouldResemble, want)
		})

		Convey("Every observation has one feature per dimension", func() {
			for _, obs := range allObservations(nvec) {
				features := enc.Encode(obs)
				So(matutils.CountNonZero(features), ShouldEqual, len(nvec))
				So(floats.Sum(features.RawVector().Data), ShouldEqual,
					float64(len(nvec)))
			}
		})

		Convey("Out of range observations panic", func() {
			So(func() {
				enc.Encode(mat.NewVecDense(3, []float64{2, 0, 0}))
			}, ShouldPanic)
			So(func() {
				enc.Encode(mat.NewVecDense(2, []float64{0, 0}))
			}, ShouldPanic)
		})
	})
}

func TestTabular(t *testing.T) {
	Convey("Given a tabular encoder", t, func() {
		nvec := []int{2, 3, 4}
		enc := NewTabular(nvec)

		Convey("The first dimension is most significant", func() {
			obs := mat.NewVecDense(3, []float64{1, 2, 3})
			So(enc.Index(obs), ShouldEqual, 1*12+2*4+3)

			features := enc.Encode(obs)
			So(features.AtVec(23), ShouldEqual, 1.0)
		})

		Convey("Distinct observations have distinct indices", func() {
			seen := make(map[int]bool)
			for i, obs := range allObservations(nvec) {
				index := enc.Index(obs)
				So(seen[index], ShouldBeFalse)
				seen[index] = true

				// Row-major enumeration visits indices in order
				So(index, ShouldEqual, i)

				features := enc.Encode(obs)
				So(matutils.CountNonZero(features), ShouldEqual, 1)
				So(features.AtVec(index), ShouldEqual, 1.0)
			}
			So(len(seen), ShouldEqual, enc.VecLength())
		})
	})
}

func BenchmarkTabular(b *testing.B) {
	enc := NewTabular([]int{8, 8, 8, 8})
	obs := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	for i := 0; i < b.N; i++ {
		enc.Encode(obs)
	}
}
