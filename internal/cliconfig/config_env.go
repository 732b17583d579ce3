package cliconfig

import "os"

// Environment variable names recognized by the CLI. Env values override the
// config file but are overridden by explicitly set flags.
const (
	EnvBatchSize        = "VCFBATCH_BATCH_SIZE"
	EnvCompressionLevel = "VCFBATCH_COMPRESSION_LEVEL"
	EnvWatch            = "VCFBATCH_WATCH"
	EnvDebounce         = "VCFBATCH_DEBOUNCE"
)

// ApplyEnvConfig applies VCFBATCH_* environment variables to the Config,
// respecting flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("batch-size", os.Getenv(EnvBatchSize), &cfg.BatchSize); err != nil {
		return err
	}
	s.setString("compression-level", os.Getenv(EnvCompressionLevel), &cfg.CompressionLevel)
	if err := s.setBoolFromString("watch", os.Getenv(EnvWatch), &cfg.Watch); err != nil {
		return err
	}

	return s.setDuration("debounce", os.Getenv(EnvDebounce), &cfg.Debounce)
}
