package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gdavidss/musicolour/engine"
	"github.com/gdavidss/musicolour/feedback"
)

// EngineConfig holds the scoring engine tunables
type EngineConfig struct {
	HistorySize   int     `json:"historySize,omitempty"`
	IOISize       int     `json:"ioiSize,omitempty"`
	VelocitySize  int     `json:"velocitySize,omitempty"`
	ChordWindowMs int64   `json:"chordWindowMs,omitempty"`
	Alpha         float64 `json:"alpha,omitempty"`
	Boost         float64 `json:"boost,omitempty"`
	Decay         float64 `json:"decay,omitempty"`
}

// InputConfig defines the preferred MIDI input
type InputConfig struct {
	PortName string `json:"portName,omitempty"` // empty = first available
}

// UIConfig stores UI preferences
type UIConfig struct {
	DecayRate float64 `json:"decayRate,omitempty"` // excitement drain per second
}

// Config is the main configuration structure
type Config struct {
	Engine EngineConfig `json:"engine,omitempty"`
	Input  InputConfig  `json:"input,omitempty"`
	UI     UIConfig     `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	p := engine.DefaultParams()
	return &Config{
		Engine: EngineConfig{
			HistorySize:   p.HistorySize,
			IOISize:       p.IOISize,
			VelocitySize:  p.VelocitySize,
			ChordWindowMs: p.ChordWindowMs,
			Alpha:         p.Alpha,
			Boost:         p.Boost,
			Decay:         p.Decay,
		},
		UI: UIConfig{
			DecayRate: feedback.DefaultDecayRate,
		},
	}
}

// Params maps the config onto engine tunables (zero fields fall back to
// engine defaults)
func (c *Config) Params() engine.Params {
	return engine.Params{
		HistorySize:   c.Engine.HistorySize,
		IOISize:       c.Engine.IOISize,
		VelocitySize:  c.Engine.VelocitySize,
		ChordWindowMs: c.Engine.ChordWindowMs,
		Alpha:         c.Engine.Alpha,
		Boost:         c.Engine.Boost,
		Decay:         c.Engine.Decay,
	}
}

// SetParams writes engine tunables back into the config
func (c *Config) SetParams(p engine.Params) {
	c.Engine = EngineConfig{
		HistorySize:   p.HistorySize,
		IOISize:       p.IOISize,
		VelocitySize:  p.VelocitySize,
		ChordWindowMs: p.ChordWindowMs,
		Alpha:         p.Alpha,
		Boost:         p.Boost,
		Decay:         p.Decay,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "musicolour"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
