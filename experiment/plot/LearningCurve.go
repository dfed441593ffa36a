// Package plot plots the results of experiments as HTML charts
package plot

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/farl/experiment"
)

// MovingAverage returns the average of each window of values ending at
// each index. The first window-1 averages are taken over all values
// seen so far.
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}

	averages := make([]float64, len(values))
	for i := range values {
		from := i - window + 1
		if from < 0 {
			from = 0
		}
		averages[i] = stat.Mean(values[from:i+1], nil)
	}
	return averages
}

// LearningCurve renders the episodic returns and lengths of an
// experiment, smoothed over window episodes, to an HTML file
func LearningCurve(stats experiment.Stats, window int, title,
	filename string) error {
	episodes := stats.Episodes()
	if episodes == 0 {
		return fmt.Errorf("learningCurve: no episodes to plot")
	}

	lengths := make([]float64, episodes)
	for i, l := range stats.EpisodeLengths {
		lengths[i] = float64(l)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("moving average over %d episodes", window),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "episode"}),
	)

	xs := make([]string, episodes)
	for i := range xs {
		xs[i] = fmt.Sprintf("%d", i+1)
	}

	line.SetXAxis(xs).
		AddSeries("return", lineData(MovingAverage(stats.EpisodeRewards,
			window))).
		AddSeries("length", lineData(MovingAverage(lengths, window)))

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "learningCurve")
	}
	defer file.Close()

	if err := line.Render(file); err != nil {
		return errors.Wrap(err, "learningCurve")
	}
	return nil
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}
