package console

import "io"

// Option configures a Console during New.
type Option func(*Console)

// WithName sets the console's name.
func WithName(name string) Option {
	return func(c *Console) {
		c.name = name
	}
}

// WithPrefix sets a prefix prepended to every emitted message.
func WithPrefix(prefix string) Option {
	return func(c *Console) {
		c.prefix = prefix
	}
}

// WithSink directs emitted messages to w instead of stdout.
// It panics if w is nil.
func WithSink(w io.Writer) Option {
	if w == nil {
		panic("console: nil sink")
	}
	return func(c *Console) {
		c.sink = w
	}
}
