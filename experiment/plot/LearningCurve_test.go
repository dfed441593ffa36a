package plot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/farl/experiment"
)

func TestMovingAverage(t *testing.T) {
	have := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	if !floats.Equal(have, want) {
		t.Errorf("moving average: want %v, have %v", want, have)
	}
}

func TestLearningCurve(t *testing.T) {
	stats := experiment.Stats{
		EpisodeRewards: []float64{-10, -8, -5, -3},
		EpisodeLengths: []int{10, 8, 5, 3},
	}

	filename := filepath.Join(t.TempDir(), "curve.html")
	if err := LearningCurve(stats, 2, "GridWorld", filename); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "GridWorld") {
		t.Error("rendered chart should contain its title")
	}

	if err := LearningCurve(experiment.Stats{}, 2, "", filename); err == nil {
		t.Error("expected error for empty stats")
	}
}
