package codec

import "github.com/duocodec/duocodec/option"

// Config carries the façade-level knobs that sit alongside a Dialect:
// none of them change wire format, only local behavior at the call site.
//
// Map and Set carry their own VerifyOrder field for the stronger
// sort-order check (§4.9 only mandates the count-mismatch/duplicate-key
// check); that knob lives on the codec value itself, since Decode is a
// method on the concrete Map[K,V]/Set[T], not a generic façade call.
type Config struct {
	// BufferHint pre-sizes the encode buffer, avoiding growth copies for
	// callers who already know roughly how large the encoded form will be.
	BufferHint int
}

// Opt configures a Config. The name mirrors the dialect façades' own
// exported surface (WithXxx constructors returning an Opt).
type Opt = option.Option[*Config]

// WithBufferHint sets Config.BufferHint.
func WithBufferHint(n int) Opt {
	return option.NoError(func(c *Config) { c.BufferHint = n })
}

// NewConfig builds a Config from zero or more options.
func NewConfig(opts ...Opt) (*Config, error) {
	c := &Config{BufferHint: 0}

	if err := option.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
