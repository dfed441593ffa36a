package experiment

import (
	"gonum.org/v1/gonum/stat"
)

// Stats holds the return and length of each episode in an experiment,
// in the order the episodes were run
type Stats struct {
	EpisodeRewards []float64
	EpisodeLengths []int
}

// add records a finished episode
func (s *Stats) add(episodeReturn float64, length int) {
	s.EpisodeRewards = append(s.EpisodeRewards, episodeReturn)
	s.EpisodeLengths = append(s.EpisodeLengths, length)
}

// Episodes returns the number of finished episodes
func (s Stats) Episodes() int {
	return len(s.EpisodeRewards)
}

// Timesteps returns the total number of timesteps over all episodes
func (s Stats) Timesteps() int {
	total := 0
	for _, l := range s.EpisodeLengths {
		total += l
	}
	return total
}

// MeanReward returns the average return of episodes [from, to)
func (s Stats) MeanReward(from, to int) float64 {
	return stat.Mean(s.EpisodeRewards[from:to], nil)
}

// MeanLength returns the average length of episodes [from, to)
func (s Stats) MeanLength(from, to int) float64 {
	lengths := make([]float64, to-from)
	for i := range lengths {
		lengths[i] = float64(s.EpisodeLengths[from+i])
	}
	return stat.Mean(lengths, nil)
}
