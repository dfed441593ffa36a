package weights

// ZeroUV is a distuv.Rander which only ever draws 0, for zero
// initialization with LinearUV
type ZeroUV struct{}

// NewZeroUV returns a new ZeroUV
func NewZeroUV() ZeroUV {
	return ZeroUV{}
}

// Rand returns 0
func (z ZeroUV) Rand() float64 {
	return 0.0
}
