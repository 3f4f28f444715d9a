package abstractfactory

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/naruneph/go-design-patterns/console"
	"github.com/naruneph/go-design-patterns/registry"
)

func init() {
	registry.Register(
		"creational_abstract_factory",
		"Demonstrates matched families of console parts selected by name.",
		AbstractFactoryExample,
	)
}

// Kit produces a matched family of console parts. Parts from one kit are
// meant to be used together; mixing families is what this pattern avoids.
type Kit interface {
	Sink() io.Writer
	Prefix() string
}

type verboseKit struct{}

func (verboseKit) Sink() io.Writer { return os.Stdout }
func (verboseKit) Prefix() string  { return "[verbose] " }

type quietKit struct{}

func (quietKit) Sink() io.Writer { return io.Discard }
func (quietKit) Prefix() string  { return "" }

// ErrUnknownKit is returned by KitFor for names it does not recognize.
var ErrUnknownKit = errors.New("abstractfactory: unknown kit")

// KitFor returns the part family registered under name.
func KitFor(name string) (Kit, error) {
	switch name {
	case "verbose":
		return verboseKit{}, nil
	case "quiet":
		return quietKit{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKit, name)
	}
}

// FromKit assembles a console from one family's parts.
func FromKit(name string, kit Kit) *console.Console {
	return console.New(
		console.WithName(name),
		console.WithPrefix(kit.Prefix()),
		console.WithSink(kit.Sink()),
	)
}

func AbstractFactoryExample() {
	for _, name := range []string{"verbose", "quiet"} {
		kit, err := KitFor(name)
		if err != nil {
			fmt.Println("abstractfactory:", err)
			continue
		}

		c := FromKit(name, kit)
		if err := c.Emit("assembled from the " + name + " kit"); err != nil {
			fmt.Println(name, "emit:", err)
		}
		fmt.Printf("%s console ready (prefix %q)\n", name, c.Prefix())
	}

	if _, err := KitFor("loud"); err != nil {
		fmt.Println("as expected:", err)
	}
}
