package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected default log level warn, got %s", cfg.LogLevel)
	}
	if cfg.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("LOG_LEVEL", " DEBUG ")
	t.Setenv("LOG_FILE", "/tmp/erqueue.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.IsProduction() {
		t.Errorf("expected production, got %s", cfg.Env)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %s", cfg.Level())
	}
	if cfg.LogFile != "/tmp/erqueue.log" {
		t.Errorf("expected LOG_FILE to be set, got %s", cfg.LogFile)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"development warn", Config{Env: "development", LogLevel: "warn"}, false},
		{"production info", Config{Env: "production", LogLevel: "info"}, false},
		{"disabled logging", Config{Env: "production", LogLevel: "disabled"}, false},
		{"unknown env", Config{Env: "staging", LogLevel: "info"}, true},
		{"unknown level", Config{Env: "development", LogLevel: "loud"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfig_LevelFallsBackToWarn(t *testing.T) {
	c := &Config{LogLevel: "loud"}
	if c.Level() != zerolog.WarnLevel {
		t.Errorf("expected warn fallback, got %s", c.Level())
	}
}
