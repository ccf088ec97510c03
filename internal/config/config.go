package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var Config = Default()

type Configuration struct {
	LogLevel     int     `json:"logLevel" toml:"logLevel"`
	CannonSize   float64 `json:"cannonSize" toml:"cannonSize"`
	BallSize     float64 `json:"ballSize" toml:"ballSize"`
	TimeStep     float64 `json:"timeStep" toml:"timeStep"`
	Seed         uint64  `json:"seed" toml:"seed"`
	WinningScore int     `json:"winningScore" toml:"winningScore"`
	ReportPath   string  `json:"reportPath" toml:"reportPath"`
	ReportTrail  bool    `json:"reportTrail" toml:"reportTrail"`
	FieldRows    int     `json:"fieldRows" toml:"fieldRows"`
	FieldCols    int     `json:"fieldCols" toml:"fieldCols"`
}

// Default is the configuration used when no file is given or it can't be read.
func Default() Configuration {
	return Configuration{
		LogLevel:   int(slog.LevelInfo),
		CannonSize: 10,
		BallSize:   3,
		TimeStep:   0.05,
	}
}

// Parse reads a configuration file. Files ending in .toml are decoded as
// TOML, everything else as JSON. Fields missing from the file keep their
// default values.
func Parse(path string) (Configuration, error) {
	c := Default()

	cf, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(cf, &c)
	} else {
		err = json.Unmarshal(cf, &c)
	}
	if err != nil {
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := c.validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c Configuration) validate() error {
	if c.CannonSize <= 0 {
		return fmt.Errorf("cannonSize must be positive, got %v", c.CannonSize)
	}
	if c.BallSize <= 0 {
		return fmt.Errorf("ballSize must be positive, got %v", c.BallSize)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("timeStep must be positive, got %v", c.TimeStep)
	}
	if c.WinningScore < 0 {
		return fmt.Errorf("winningScore must not be negative, got %d", c.WinningScore)
	}
	return nil
}

// LoadConfig fills Config from path, or from config.json when path is empty.
func LoadConfig(path string) {
	if path == "" {
		path = "config.json"
	}

	c, err := Parse(path)
	if err != nil {
		slog.Info("failed to read configuration, using default config instead", slog.Any("error", err))
	}

	Config = c
}
