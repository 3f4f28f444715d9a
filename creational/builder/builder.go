package builder

import (
	"fmt"

	"github.com/naruneph/go-design-patterns/console"
	"github.com/naruneph/go-design-patterns/creational/factory"
	"github.com/naruneph/go-design-patterns/registry"
)

func init() {
	registry.Register(
		"creational_builder",
		"Demonstrates assembling a console from a blueprint of named fields.",
		BuilderExample,
	)
}

// Blueprint accumulates the named fields of a console before Build.
// Setters chain; unset fields keep their defaults.
type Blueprint struct {
	name    string
	prefix  string
	sinkTag string
}

// NewBlueprint returns a blueprint for a plain stdout console.
func NewBlueprint() *Blueprint {
	return &Blueprint{name: "console", sinkTag: "stdout"}
}

// Name sets the console's name.
func (b *Blueprint) Name(name string) *Blueprint {
	b.name = name
	return b
}

// Prefix sets the prefix prepended to every message.
func (b *Blueprint) Prefix(prefix string) *Blueprint {
	b.prefix = prefix
	return b
}

// Sink selects the sink by its factory tag.
func (b *Blueprint) Sink(tag string) *Blueprint {
	b.sinkTag = tag
	return b
}

// Build resolves the sink tag through the factory and assembles the
// console. An unknown tag fails the build and yields no console.
func (b *Blueprint) Build() (*console.Console, error) {
	sink, err := factory.ForTag(b.sinkTag)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}
	return console.New(
		console.WithName(b.name),
		console.WithPrefix(b.prefix),
		console.WithSink(sink),
	), nil
}

// Verbose is a preset blueprint for a chatty stdout console.
func Verbose() *Blueprint {
	return NewBlueprint().Name("verbose").Prefix("[verbose] ")
}

// Quiet is a preset blueprint for a console that swallows its messages.
func Quiet() *Blueprint {
	return NewBlueprint().Name("quiet").Sink("discard")
}

func BuilderExample() {
	c, err := Verbose().Build()
	if err != nil {
		fmt.Println("builder:", err)
		return
	}
	if err := c.Emit("built from the verbose preset"); err != nil {
		fmt.Println("emit:", err)
	}

	custom, err := NewBlueprint().Name("custom").Prefix(">> ").Sink("stdout").Build()
	if err != nil {
		fmt.Println("builder:", err)
		return
	}
	if err := custom.Emit("built field by field"); err != nil {
		fmt.Println("emit:", err)
	}

	if _, err := NewBlueprint().Sink("tape").Build(); err != nil {
		fmt.Println("as expected:", err)
	}
}
