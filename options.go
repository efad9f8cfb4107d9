package sampling

// DefaultCapacity is the window length used when New receives no
// WithCapacity option.
const DefaultCapacity = 2

// Option configures Sampler construction.
type Option func(*config)

type config struct {
	capacity int
}

func defaultConfig() config {
	return config{capacity: DefaultCapacity}
}

// WithCapacity sets the initial window length. Values below 1 clamp to 1,
// matching [Sampler.SetCapacity].
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
