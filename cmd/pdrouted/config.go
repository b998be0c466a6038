package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pdroute/construct"
)

// configEnv names the environment variable holding the optional YAML
// config path. Unset means defaults.
const configEnv = "PDROUTED_CONFIG"

// config is the daemon's YAML-backed configuration. Every field has a
// working default; per-request query parameters override policy, trials
// and beam shape.
type config struct {
	Listen      string `yaml:"listen"`
	Policy      string `yaml:"policy"`
	Trials      int    `yaml:"trials"`
	BeamWidth   int    `yaml:"beam_width"`
	BeamDepth   int    `yaml:"beam_depth"`
	TimeLimitMS int    `yaml:"time_limit_ms"`
	Seed        int64  `yaml:"seed"`
}

func defaultConfig() config {
	return config{
		Listen:    ":8080",
		Policy:    "cost",
		Trials:    1,
		BeamWidth: 2,
		BeamDepth: 2,
	}
}

// loadConfig returns defaults, overlaid with the YAML file named by
// PDROUTED_CONFIG when set.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	path := os.Getenv(configEnv)
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}

	return cfg, nil
}

// parsePolicy maps the wire/config spelling onto a construct policy.
func parsePolicy(name string) (construct.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return construct.RandomPolicy, nil
	case "cost", "cost-greedy", "":
		return construct.CostGreedy, nil
	case "time", "time-greedy":
		return construct.TimeGreedy, nil
	case "beam", "beam-lookahead":
		return construct.BeamLookahead, nil
	default:
		return 0, fmt.Errorf("config: policy %q: %w", name, construct.ErrUnknownPolicy)
	}
}
