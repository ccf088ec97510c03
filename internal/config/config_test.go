package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestParse_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"logLevel": -4, "cannonSize": 12, "seed": 99, "winningScore": 3}`)

	c, err := Parse(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.LogLevel != -4 {
		t.Errorf("LogLevel = %d, want -4", c.LogLevel)
	}
	if c.CannonSize != 12 {
		t.Errorf("CannonSize = %v, want 12", c.CannonSize)
	}
	if c.Seed != 99 {
		t.Errorf("Seed = %d, want 99", c.Seed)
	}
	if c.WinningScore != 3 {
		t.Errorf("WinningScore = %d, want 3", c.WinningScore)
	}
	// not in the file
	if c.BallSize != 3 || c.TimeStep != 0.05 {
		t.Errorf("defaults not kept: BallSize = %v, TimeStep = %v", c.BallSize, c.TimeStep)
	}
}

func TestParse_TOML(t *testing.T) {
	path := writeFile(t, "artillery.toml", `
ballSize = 2.5
timeStep = 0.01
reportPath = "shots.jsonl"
fieldCols = 120
`)

	c, err := Parse(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BallSize != 2.5 {
		t.Errorf("BallSize = %v, want 2.5", c.BallSize)
	}
	if c.TimeStep != 0.01 {
		t.Errorf("TimeStep = %v, want 0.01", c.TimeStep)
	}
	if c.ReportPath != "shots.jsonl" {
		t.Errorf("ReportPath = %q, want shots.jsonl", c.ReportPath)
	}
	if c.FieldCols != 120 {
		t.Errorf("FieldCols = %d, want 120", c.FieldCols)
	}
	if c.CannonSize != 10 {
		t.Errorf("CannonSize = %v, want default 10", c.CannonSize)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "bad.json", `{"cannonSize": `},
		{"malformed toml", "bad.toml", `cannonSize = = 1`},
		{"zero time step", "step.json", `{"timeStep": 0}`},
		{"negative ball", "ball.json", `{"ballSize": -1}`},
		{"negative winning score", "win.toml", `winningScore = -2`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if c != Default() {
				t.Errorf("config = %+v, want defaults on error", c)
			}
		})
	}
}

func TestParse_MissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestLoadConfig_FallsBackToDefault(t *testing.T) {
	Config = Configuration{}
	LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if Config != Default() {
		t.Errorf("Config = %+v, want defaults", Config)
	}

	LoadConfig(writeFile(t, "ok.json", `{"winningScore": 5}`))
	if Config.WinningScore != 5 {
		t.Errorf("WinningScore = %d, want 5", Config.WinningScore)
	}
}
