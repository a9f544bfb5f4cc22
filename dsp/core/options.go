package core

// Config holds environmental settings shared by sample-rate-dependent
// components (oscillators, envelope followers, coefficient design).
type Config struct {
	SampleRate float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults for real-time use.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
	}
}

// WithSampleRate sets the processing sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
