package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/samuelfneumann/farl/agent/linear/discrete/gtd2"
	"github.com/samuelfneumann/farl/environment/gridworld"
	"github.com/samuelfneumann/farl/experiment"
	"github.com/samuelfneumann/farl/experiment/checkpointer"
	"github.com/samuelfneumann/farl/experiment/plot"
	"github.com/samuelfneumann/farl/experiment/trackers"
)

var (
	configPath = flag.String("config", "config.yaml", "experiment config")
	seed       = flag.Uint64("seed", 192382, "random seed")
	savePath   = flag.String("save", "", "save the trained agent to this file")
	loadPath   = flag.String("load", "", "continue training a saved agent")
	plotPath   = flag.String("plot", "", "write an HTML learning curve")
	renderPath = flag.String("render", "", "write a PNG of the greedy policy")
	dbPath     = flag.String("db", "", "record episodes in this SQLite database")
	checkpoint = flag.Int("checkpoint", 0, "checkpoint the agent every N "+
		"episodes")
	returnsPath = flag.String("returns", "", "save episodic returns to this "+
		"gob file")
	lengthsPath = flag.String("lengths", "", "save episode lengths to this "+
		"gob file")
	showPolicy = flag.Bool("policy", false, "print the greedy policy")
	progress   = flag.Bool("progress", false, "display a progress bar")
)

func main() {
	flag.Parse()

	c, err := experiment.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	env, a, err := c.Create(*seed)
	if err != nil {
		log.Fatal(err)
	}

	agent, ok := a.(*gtd2.GTD2)
	if !ok {
		log.Fatalf("cannot train agent of type %T", a)
	}
	if *loadPath != "" {
		agent, err = gtd2.Load(*loadPath, env)
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("loaded agent from %v", *loadPath)
	}

	var db *trackers.SQLite
	var files []trackers.Tracker
	var opts []experiment.Option
	if *progress {
		opts = append(opts, experiment.WithProgressBar(os.Stderr, 50))
	}
	if *checkpoint > 0 {
		name := *savePath
		if name == "" {
			name = "agent"
		}
		cp, err := checkpointer.NewNStep(*checkpoint, agent,
			checkpointer.FilenameEnumerator(0, name+"-", ".gob"))
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, experiment.WithCheckpointers(cp))
	}
	if *dbPath != "" {
		db, err = trackers.NewSQLite(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		log.WithField("run", db.Run()).Info("recording episodes")
		opts = append(opts, experiment.WithTrackers(db))
	}

	if *returnsPath != "" {
		files = append(files, trackers.NewReturn(*returnsPath))
	}
	if *lengthsPath != "" {
		files = append(files, trackers.NewEpisodeLength(*lengthsPath))
	}
	opts = append(opts, experiment.WithTrackers(files...))

	stats, err := agent.Learn(c.TotalTimesteps, c.LogInterval, c.LogPath,
		opts...)
	if err != nil {
		log.Fatal(err)
	}
	if db != nil {
		files = append(files, db)
	}
	for _, tracker := range files {
		if err := tracker.Save(); err != nil {
			log.Fatal(err)
		}
	}
	log.WithFields(log.Fields{
		"episodes":   stats.Episodes(),
		"timesteps":  stats.Timesteps(),
		"avg_reward": stats.MeanReward(0, stats.Episodes()),
	}).Info("finished training")

	if *savePath != "" {
		if err := agent.Save(*savePath); err != nil {
			log.Fatal(err)
		}
	}

	if *plotPath != "" {
		window := c.LogInterval
		if window > stats.Episodes() {
			window = stats.Episodes()
		}
		if err := plot.LearningCurve(stats, window, "GTD2 learning curve",
			*plotPath); err != nil {
			log.Fatal(err)
		}
	}

	grid, isGrid := env.(*gridworld.GridWorld)
	if !isGrid {
		return
	}
	agent.Eval()
	if *showPolicy {
		fmt.Print(grid.PolicyString(agent.Greedy, true))
	}
	if *renderPath != "" {
		if err := grid.Render(*renderPath, 64, agent.Greedy); err != nil {
			log.Fatal(err)
		}
	}
}
