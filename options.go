package bitvec

// Option configures a vector on construction
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity reserves room for at least n bits up front. The capacity is
// rounded up to a whole number of bytes, plus one spare byte.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = max(n, 0)
	}
}
