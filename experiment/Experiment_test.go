package experiment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/farl/agent/linear/discrete/gtd2"
	"github.com/samuelfneumann/farl/environment/envconfig"
	"github.com/samuelfneumann/farl/experiment"
)

func writeConfig(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
total_timesteps: 500
environment:
  rows: 3
  cols: 4
agent:
  type: EGreedyGTD2-Linear
  config:
    alpha: 0.05
    feature_representation: tabular
`)

	c, err := experiment.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.TotalTimesteps != 500 {
		t.Errorf("total timesteps: want 500, have %v", c.TotalTimesteps)
	}
	if c.LogInterval != experiment.DefaultLogInterval {
		t.Errorf("log interval: want %v, have %v",
			experiment.DefaultLogInterval, c.LogInterval)
	}

	// Unset environment fields keep their defaults
	want := envconfig.Default()
	want.Rows, want.Cols = 3, 4
	if c.Environment.EpisodeCutoff != want.EpisodeCutoff ||
		c.Environment.Rows != 3 || c.Environment.Cols != 4 ||
		c.Environment.Environment != want.Environment {
		t.Errorf("environment: want %+v, have %+v", want, c.Environment)
	}

	env, a, err := c.Create(1)
	if err != nil {
		t.Fatal(err)
	}
	agent, ok := a.(*gtd2.GTD2)
	if !ok {
		t.Fatalf("agent: want *gtd2.GTD2, have %T", a)
	}
	if agent.Config().Alpha != 0.05 {
		t.Errorf("alpha: want 0.05, have %v", agent.Config().Alpha)
	}

	// Tabular features over a 4 x 3 grid
	if agent.Features() != 12 {
		t.Errorf("features: want 12, have %v", agent.Features())
	}
	if n, _ := env.ActionSpec().N(); n != 4 {
		t.Errorf("actions: want 4, have %v", n)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]string{
		"no agent": `
total_timesteps: 10
`,
		"no budget": `
agent:
  type: EGreedyGTD2-Linear
`,
		"invalid agent": `
total_timesteps: 10
agent:
  type: EGreedyGTD2-Linear
  config:
    gamma: 2
`,
		"invalid log interval": `
total_timesteps: 10
log_interval: 0
agent:
  type: EGreedyGTD2-Linear
`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := experiment.LoadConfig(writeConfig(t, data))
			if err != nil {
				t.Fatal(err)
			}
			if _, _, err := c.Create(1); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := experiment.LoadConfig(writeConfig(t, `
agent:
  type: Unknown
`)); err == nil {
		t.Error("expected error for unknown agent type")
	}
}
