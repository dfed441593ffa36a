package experiment

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/farl/environment"
	ts "github.com/samuelfneumann/farl/timestep"
)

// chain is an environment whose episodes last a fixed number of steps,
// with a reward of 1 on each step. The last step is truncated if
// truncate is true.
type chain struct {
	length   int
	truncate bool
	failAt   int  // step number at which Step fails, if positive
	endFirst bool // Reset returns a Last step
	current  ts.TimeStep
	resets   int
}

func (c *chain) Reset() (ts.TimeStep, error) {
	c.resets++
	c.current = ts.New(ts.First, 0, mat.NewVecDense(1, nil), 0)
	if c.endFirst {
		c.current.StepType = ts.Last
	}
	return c.current, nil
}

func (c *chain) Step(action int) (ts.TimeStep, error) {
	n := c.current.Number + 1
	if c.failAt > 0 && n == c.failAt {
		return ts.TimeStep{}, fmt.Errorf("simulation diverged")
	}

	stepType := ts.Mid
	if n >= c.length {
		stepType = ts.Last
	}
	obs := mat.NewVecDense(1, []float64{float64(n % 2)})
	c.current = ts.New(stepType, 1, obs, n)
	if c.truncate {
		c.current.SetEnd(ts.Timeout)
	}
	return c.current, nil
}

func (c *chain) CurrentTimeStep() ts.TimeStep { return c.current }

func (c *chain) ObservationSpec() environment.Spec {
	return environment.NewMultiDiscreteSpec([]int{2}, environment.Observation)
}

func (c *chain) ActionSpec() environment.Spec {
	return environment.NewDiscreteSpec(2, environment.Action)
}

// recorder is an agent which records how it is driven
type recorder struct {
	annealed   []float64
	epsilon    float64
	firsts     int
	observed   int
	steps      int
	lastDone   []bool
	episodeEnd int
}

func (r *recorder) Step() error { r.steps++; return nil }

func (r *recorder) Observe(action int, next ts.TimeStep) error {
	r.observed++
	if next.Last() {
		r.lastDone = append(r.lastDone, true)
	}
	return nil
}

func (r *recorder) ObserveFirst(ts.TimeStep) error { r.firsts++; return nil }
func (r *recorder) EndEpisode()                    { r.episodeEnd++ }
func (r *recorder) SelectAction(ts.TimeStep) int   { return 0 }
func (r *recorder) Eval()                          {}
func (r *recorder) Train()                         {}
func (r *recorder) IsEval() bool                   { return false }

func (r *recorder) Anneal(p float64) {
	r.annealed = append(r.annealed, p)
	r.epsilon = p / 3
}

func (r *recorder) Epsilon() float64 { return r.epsilon }

func TestOnlineOvershootsBudget(t *testing.T) {
	env := &chain{length: 4}
	a := &recorder{}

	stats, err := NewOnline(env, a, 10).Run()
	if err != nil {
		t.Fatal(err)
	}

	// Episodes are only stopped between episodes: 4 + 4 + 4 >= 10
	if stats.Episodes() != 3 || stats.Timesteps() != 12 {
		t.Errorf("want 3 episodes and 12 timesteps, have %d and %d",
			stats.Episodes(), stats.Timesteps())
	}
	for i := range stats.EpisodeRewards {
		if stats.EpisodeRewards[i] != 4 || stats.EpisodeLengths[i] != 4 {
			t.Errorf("episode %d: want return 4 and length 4, have %v and %v",
				i, stats.EpisodeRewards[i], stats.EpisodeLengths[i])
		}
	}

	if a.firsts != 3 || a.observed != 12 || a.steps != 12 ||
		a.episodeEnd != 3 || len(a.lastDone) != 3 {
		t.Errorf("agent driven incorrectly: %+v", a)
	}

	want := []float64{1, 1 - 4.0/10, 1 - 8.0/10}
	if len(a.annealed) != len(want) {
		t.Fatalf("annealed: want %v, have %v", want, a.annealed)
	}
	if !floats.EqualApprox(a.annealed, want, 1e-12) {
		t.Errorf("annealed: want %v, have %v", want, a.annealed)
	}
}

func TestOnlineTruncatedEpisodesEnd(t *testing.T) {
	env := &chain{length: 3, truncate: true}
	a := &recorder{}

	stats, err := NewOnline(env, a, 5).Run()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Episodes() != 2 || len(a.lastDone) != 2 {
		t.Errorf("truncated episodes should end: have %d episodes",
			stats.Episodes())
	}
}

func TestOnlineEnvironmentError(t *testing.T) {
	env := &chain{length: 5, failAt: 3}
	a := &recorder{}

	stats, err := NewOnline(env, a, 100).Run()
	if err == nil {
		t.Fatal("expected environment error to abort the run")
	}
	if stats.Episodes() != 0 || env.resets != 1 {
		t.Errorf("run should abort in the first episode, have %d episodes",
			stats.Episodes())
	}
}

func TestOnlineLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	env := &chain{length: 2}
	a := &recorder{}

	_, err := NewOnline(env, a, 10, WithLogger(logger, 2)).Run()
	if err != nil {
		t.Fatal(err)
	}

	// 5 episodes of length 2, logged after episodes 2 and 4
	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("want 2 log entries, have %d", len(entries))
	}

	entry := entries[1]
	if entry.Level != logrus.InfoLevel {
		t.Errorf("level: want info, have %v", entry.Level)
	}
	if entry.Data["episode"] != 4 || entry.Data["total_timesteps"] != 8 {
		t.Errorf("unexpected fields %v", entry.Data)
	}
	if entry.Data["avg_reward"] != 2.0 || entry.Data["avg_length"] != 2.0 {
		t.Errorf("unexpected averages %v", entry.Data)
	}

	// Episode 4 was annealed with 1 - 6/10
	if eps := entry.Data["eps"]; eps != 0.1333 {
		t.Errorf("eps: want 0.1333, have %v", eps)
	}
}

type countingCheckpointer struct{ episodes []int }

func (c *countingCheckpointer) Checkpoint(episode int) error {
	c.episodes = append(c.episodes, episode)
	return nil
}

type countingTracker struct{ steps, saves int }

func (c *countingTracker) Track(ts.TimeStep) { c.steps++ }
func (c *countingTracker) Save() error       { c.saves++; return nil }

func TestOnlineOptions(t *testing.T) {
	env := &chain{length: 3}
	check := &countingCheckpointer{}
	tracker := &countingTracker{}

	exp := NewOnline(env, &recorder{}, 6, WithCheckpointers(check),
		WithTrackers(tracker))
	if _, err := exp.Run(); err != nil {
		t.Fatal(err)
	}
	if err := exp.Save(); err != nil {
		t.Fatal(err)
	}

	if len(check.episodes) != 2 || check.episodes[1] != 2 {
		t.Errorf("checkpoints: want [1 2], have %v", check.episodes)
	}

	// Two episodes of a first step and three more steps
	if tracker.steps != 8 || tracker.saves != 1 {
		t.Errorf("tracker: want 8 steps and 1 save, have %d and %d",
			tracker.steps, tracker.saves)
	}
}

func TestOnlineResetEndsEpisode(t *testing.T) {
	env := &chain{length: 4, endFirst: true}
	a := &recorder{}

	stats, err := NewOnline(env, a, 10).Run()
	if err == nil {
		t.Fatal("expected error when reset ends the episode")
	}
	if env.resets != 1 || stats.Episodes() != 0 || a.steps != 0 {
		t.Errorf("run should stop at the first reset: %d resets, %d "+
			"episodes, %d steps", env.resets, stats.Episodes(), a.steps)
	}
}
