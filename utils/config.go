package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	RendererScreen = "screen"
	RendererText   = "text"
)

// Config holds the configuration for the game
type Config struct {
	Size                int      `json:"size" yaml:"size"`
	FrameRate           Duration `json:"frame_rate" yaml:"frame_rate"`
	InitialLiveCells    int      `json:"initial_live_cells" yaml:"initial_live_cells"`
	Seed                uint64   `json:"seed" yaml:"seed"`
	Patterns            bool     `json:"patterns" yaml:"patterns"`
	InjectionCount      int      `json:"injection_count" yaml:"injection_count"`
	AutoRestart         bool     `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int      `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	MaxGenerations      int      `json:"max_generations" yaml:"max_generations"`
	Renderer            string   `json:"renderer" yaml:"renderer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                50,
		FrameRate:           Duration(200 * time.Millisecond), // 5 FPS
		InitialLiveCells:    500,
		Patterns:            true,
		InjectionCount:      3,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Renderer:            RendererScreen,
	}
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Size < 1:
		return errors.Errorf("size must be positive, got %d", c.Size)
	case c.FrameRate < 0:
		return errors.Errorf("frame_rate must not be negative, got %s", c.FrameRate)
	case c.FrameRate > 0 && c.FrameRate < Duration(time.Millisecond):
		return errors.Errorf("frame_rate must be 0 or at least 1ms, got %s", c.FrameRate)
	case c.InitialLiveCells < 0:
		return errors.Errorf("initial_live_cells must not be negative, got %d", c.InitialLiveCells)
	case c.InjectionCount < 0:
		return errors.Errorf("injection_count must not be negative, got %d", c.InjectionCount)
	case c.StagnationThreshold < 1:
		return errors.Errorf("stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Renderer != RendererScreen && c.Renderer != RendererText:
		return errors.Errorf("unknown renderer %q", c.Renderer)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}
