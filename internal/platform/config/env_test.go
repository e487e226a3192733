package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"FOOD_MCP_TEST_PORT" envDefault:"123"`
	Timeout time.Duration `env:"FOOD_MCP_TEST_TIMEOUT" envDefault:"10s"`
	Hosts   []string      `env:"FOOD_MCP_TEST_HOSTS" envSeparator:","`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout 10s, got %s", cfg.Timeout)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FOOD_MCP_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFrom(t *testing.T) {
	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{
		"FOOD_MCP_TEST_PORT":  "9",
		"FOOD_MCP_TEST_HOSTS": "a.example,b.example",
	})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9 {
		t.Fatalf("expected port 9, got %d", cfg.Port)
	}
	if len(cfg.Hosts) != 2 || cfg.Hosts[1] != "b.example" {
		t.Fatalf("unexpected hosts %v", cfg.Hosts)
	}
}

func TestParseEnvFromNilUsesDefaults(t *testing.T) {
	t.Setenv("FOOD_MCP_TEST_PORT", "77")

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected process env to be ignored, got %d", cfg.Port)
	}
}
