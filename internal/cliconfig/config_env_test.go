package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv(EnvBatchSize, "777")
	t.Setenv(EnvCompressionLevel, "fast")
	t.Setenv(EnvWatch, "true")
	t.Setenv(EnvDebounce, "3s")

	cfg := Config{}
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig: %v", err)
	}

	if cfg.BatchSize != 777 {
		t.Errorf("BatchSize = %d, want 777", cfg.BatchSize)
	}
	if cfg.CompressionLevel != "fast" {
		t.Errorf("CompressionLevel = %q, want fast", cfg.CompressionLevel)
	}
	if !cfg.Watch {
		t.Error("Watch not applied from env")
	}
	if cfg.Debounce != 3*time.Second {
		t.Errorf("Debounce = %v, want 3s", cfg.Debounce)
	}
}

func TestApplyEnvConfigRespectsFlags(t *testing.T) {
	t.Setenv(EnvBatchSize, "777")

	cfg := Config{BatchSize: 100}
	changed := map[string]bool{"batch-size": true}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig: %v", err)
	}
	if cfg.BatchSize != 100 {
		t.Errorf("BatchSize = %d, env should not override an explicit flag", cfg.BatchSize)
	}
}

func TestApplyEnvConfigBadBool(t *testing.T) {
	t.Setenv(EnvWatch, "yes")

	cfg := Config{}
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Fatal("ApplyEnvConfig should reject a malformed watch value")
	}
	if cfg.Watch {
		t.Error("Watch set despite malformed value")
	}
}

func TestApplyEnvConfigBadInt(t *testing.T) {
	t.Setenv(EnvBatchSize, "many")

	cfg := Config{}
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Fatal("ApplyEnvConfig should reject a non-numeric batch size")
	}
}
