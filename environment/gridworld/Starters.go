package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/farl/environment"
)

// NewSingleStart returns a Starter which always starts in position
// (x, y) of a gridworld with r rows and c columns
func NewSingleStart(x, y, r, c int) (environment.Starter, error) {
	if x < 0 || x >= c {
		return nil, fmt.Errorf("newSingleStart: x = %d outside [0, %d)", x, c)
	} else if y < 0 || y >= r {
		return nil, fmt.Errorf("newSingleStart: y = %d outside [0, %d)", y, r)
	}

	return environment.NewFixedStarter([]float64{float64(x), float64(y)}),
		nil
}

// NewRandomStart returns a Starter which starts uniformly at random in
// any position of a gridworld with r rows and c columns
func NewRandomStart(r, c int, seed uint64) environment.Starter {
	return environment.NewCategoricalStarter([]int{c, r}, seed)
}
