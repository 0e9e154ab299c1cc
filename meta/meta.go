// meta/meta.go
package meta

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MAX_TURNS caps the length of a self-play game.
const MAX_TURNS = 300

// Config describes a batch of self-play matches.
type Config struct {
	Matches   int      `yaml:"matches"`
	MaxTurns  int      `yaml:"max_turns"`
	Seed      uint64   `yaml:"seed"`
	Players   []string `yaml:"players"`
	LogLevel  string   `yaml:"log_level"`
	OutputDir string   `yaml:"output_dir"`
}

func Default() Config {
	return Config{
		Matches:  10,
		MaxTurns: MAX_TURNS,
		Seed:     1,
		Players:  []string{"Player1", "Player2"},
		LogLevel: "info",
	}
}

// Load reads a YAML file. Fields missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Matches <= 0 {
		result = multierror.Append(result, errors.Errorf("matches must be positive, got %d", c.Matches))
	}
	if c.MaxTurns <= 0 {
		result = multierror.Append(result, errors.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if len(c.Players) != 2 {
		result = multierror.Append(result, errors.Errorf("need exactly two players, got %d", len(c.Players)))
	} else if c.Players[0] == "" || c.Players[0] == c.Players[1] {
		result = multierror.Append(result, errors.New("players must be distinct and non-empty"))
	}
	return result.ErrorOrNil()
}
