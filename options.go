package pairtable

import "github.com/rs/zerolog"

type config struct {
	sizes      []int
	innerSizes []int

	hashFunc      HashFunc
	innerHashFunc HashFunc

	logger zerolog.Logger
}

type Option func(c *config)

// Overrides the capacity schedule. The first entry is the initial capacity.
// For a Table this is the schedule of the primary keys level.
func WithSizes(sizes ...int) Option {
	return func(c *config) {
		c.sizes = cloneSizes(sizes)
	}
}

// Overrides the capacity schedule of the secondary tables.
// When omitted, secondary tables use the primary schedule.
// Ignored by Store.
func WithInnerSizes(sizes ...int) Option {
	return func(c *config) {
		c.innerSizes = cloneSizes(sizes)
	}
}

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(c *config) {
		c.hashFunc = f
	}
}

// Overrides the hash function of the secondary tables.
// When omitted, secondary tables use the primary hash function.
// Ignored by Store.
func WithInnerHashFunc(f HashFunc) Option {
	return func(c *config) {
		c.innerHashFunc = f
	}
}

// Sets the logger used to report growth. Logging is disabled by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts ...Option) (config, error) {
	c := config{
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.sizes == nil {
		c.sizes = cloneSizes(DefaultSizes)
	}

	if c.innerSizes == nil {
		c.innerSizes = c.sizes
	}

	if c.hashFunc == nil {
		c.hashFunc = RollingHash
	}

	if c.innerHashFunc == nil {
		c.innerHashFunc = c.hashFunc
	}

	if err := validateSizes(c.sizes); err != nil {
		return c, err
	}

	if err := validateSizes(c.innerSizes); err != nil {
		return c, err
	}

	return c, nil
}
