package factory

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/naruneph/go-design-patterns/console"
	"github.com/naruneph/go-design-patterns/registry"
)

func init() {
	registry.Register(
		"creational_factory",
		"Demonstrates a simple factory selecting a console sink by string tag.",
		FactoryExample,
	)
}

// ErrUnknownTag is returned by ForTag for tags it does not recognize.
var ErrUnknownTag = errors.New("factory: unknown sink tag")

// ForTag returns the sink registered under tag. The "buffer" tag returns
// a fresh in-memory buffer on every call.
func ForTag(tag string) (io.Writer, error) {
	switch tag {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "discard":
		return io.Discard, nil
	case "buffer":
		return &bytes.Buffer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
}

// Tags returns the tags ForTag accepts, sorted.
func Tags() []string {
	return []string{"buffer", "discard", "stderr", "stdout"}
}

func FactoryExample() {
	for _, tag := range Tags() {
		sink, err := ForTag(tag)
		if err != nil {
			fmt.Println("factory:", err)
			continue
		}

		c := console.New(
			console.WithName(tag),
			console.WithPrefix("["+tag+"] "),
			console.WithSink(sink),
		)
		if err := c.Emit("sink selected by tag"); err != nil {
			fmt.Println(tag, "emit:", err)
			continue
		}

		if buf, ok := sink.(*bytes.Buffer); ok {
			fmt.Print("the buffer console captured: ", buf.String())
		}
	}

	if _, err := ForTag("tape"); err != nil {
		fmt.Println("as expected:", err)
	}
}
