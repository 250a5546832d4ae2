package config

// ApplyDefaults fills every unset field of cfg with its default value.
// Called by the loader before validation; safe to call on a zero Config.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if len(cfg.Log.OutputPaths) == 0 {
		// stderr, so CSV results written to stdout stay machine-readable.
		cfg.Log.OutputPaths = []string{"stderr"}
	}
	// Engine.Workers defaults to 0 (sequential); parallelism is opt-in.
}
