// Package console provides the shared message emitter the demos write
// through, plus the process-wide default instance.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Console writes line-oriented messages to a sink. Construction assigns
// a unique identity, which makes it easy to observe whether two callers
// hold the same instance.
//
// A Console is safe for concurrent use: each message is written whole,
// in a single Write call, under an internal mutex, so messages from
// concurrent emitters never interleave below line granularity.
type Console struct {
	id     uuid.UUID
	name   string
	prefix string

	mu   sync.Mutex // serializes writes so concurrent messages stay whole
	sink io.Writer
}

// New returns a Console configured by the given options.
// By default it is named "console", has no prefix, and writes to stdout.
func New(opts ...Option) *Console {
	c := &Console{
		id:   uuid.New(),
		name: "console",
		sink: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Emit writes prefix+message+"\n" to the sink as one Write call.
// A write failure is returned to the caller and leaves the console
// usable; the failed message is simply not delivered.
func (c *Console) Emit(message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.sink.Write([]byte(c.prefix + message + "\n")); err != nil {
		return fmt.Errorf("console: emit: %w", err)
	}
	return nil
}

// ID returns the identity assigned at construction.
func (c *Console) ID() uuid.UUID {
	return c.id
}

// Name returns the console's name.
func (c *Console) Name() string {
	return c.name
}

// Prefix returns the prefix prepended to every emitted message.
func (c *Console) Prefix() string {
	return c.prefix
}

func (c *Console) String() string {
	return fmt.Sprintf("console %q (%s)", c.name, c.id)
}
