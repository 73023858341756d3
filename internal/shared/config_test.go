package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()
		if config.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Log.Level)
		}
		if config.Log.File != "./tmp/spotid-tui.log" {
			t.Errorf("expected log file ./tmp/spotid-tui.log, got %s", config.Log.File)
		}
		if config.Output.Format != "text" {
			t.Errorf("expected output format text, got %s", config.Output.Format)
		}
		if !config.Output.Pretty {
			t.Error("expected pretty output by default")
		}
		if config.Output.Kind != "auto" {
			t.Errorf("expected input kind auto, got %s", config.Output.Kind)
		}
		if err := config.Validate(); err != nil {
			t.Errorf("default config should be valid: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if *config != *DefaultConfig() {
			t.Errorf("created config %+v doesn't match default", config)
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[log]
level = "debug"

[output]
format = "json"
pretty = false
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.LogLevel() != log.DebugLevel {
			t.Errorf("expected debug level, got %v", config.LogLevel())
		}
		if config.Output.Format != "json" {
			t.Errorf("expected format json, got %s", config.Output.Format)
		}
		if config.Output.Pretty {
			t.Error("expected pretty to be overridden to false")
		}
		if config.Log.File != "./tmp/spotid-tui.log" {
			t.Errorf("expected missing keys to keep defaults, got log file %q", config.Log.File)
		}
		if config.Output.Kind != "auto" {
			t.Errorf("expected missing keys to keep defaults, got kind %q", config.Output.Kind)
		}
	})

	t.Run("LoadConfig errors", func(t *testing.T) {
		tmpDir := t.TempDir()

		if _, err := LoadConfig(filepath.Join(tmpDir, "missing.toml")); !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig for missing file, got %v", err)
		}

		if _, err := LoadConfig(tmpDir); err == nil || errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected read error for a directory, got %v", err)
		}

		badSyntax := filepath.Join(tmpDir, "bad.toml")
		os.WriteFile(badSyntax, []byte("[log\nlevel = "), 0644)
		if _, err := LoadConfig(badSyntax); err == nil {
			t.Error("expected error for malformed TOML")
		}

		badLevel := filepath.Join(tmpDir, "level.toml")
		os.WriteFile(badLevel, []byte("[log]\nlevel = \"loud\"\n"), 0644)
		if _, err := LoadConfig(badLevel); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*Config)
			wantErr bool
		}{
			{name: "defaults", mutate: func(*Config) {}},
			{name: "format alias", mutate: func(c *Config) { c.Output.Format = "MD" }},
			{name: "unknown format", mutate: func(c *Config) { c.Output.Format = "yaml" }, wantErr: true},
			{name: "raw kind", mutate: func(c *Config) { c.Output.Kind = "raw" }},
			{name: "unknown kind", mutate: func(c *Config) { c.Output.Kind = "base64" }, wantErr: true},
			{name: "debug level", mutate: func(c *Config) { c.Log.Level = "debug" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)
				err := config.Validate()
				if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				if !tt.wantErr && err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			})
		}
	})

	t.Run("LogLevel falls back to info", func(t *testing.T) {
		config := &Config{Log: LogConfig{Level: "loud"}}
		if config.LogLevel() != log.InfoLevel {
			t.Errorf("expected info level, got %v", config.LogLevel())
		}
	})
}
