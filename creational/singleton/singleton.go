package singleton

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/naruneph/go-design-patterns/console"
	"github.com/naruneph/go-design-patterns/lazy"
	"github.com/naruneph/go-design-patterns/registry"
)

func init() {
	registry.Register(
		"creational_singleton",
		"Demonstrates lazy construction of a shared console raced by concurrent users.",
		SingletonExample,
	)
}

func SingletonExample() {
	var builds atomic.Int32
	shared := lazy.NewRef(func() (*console.Console, error) {
		builds.Add(1)
		fmt.Println("constructing the shared console")
		return console.New(console.WithName("shared")), nil
	})

	var wg sync.WaitGroup
	wg.Add(4)

	for i := 0; i < 4; i++ {
		go func(id int) {
			defer wg.Done()
			c, err := shared.Get()
			if err != nil {
				fmt.Println("user", id, "error:", err)
				return
			}
			if err := c.Emit(fmt.Sprintf("message from user%d", id)); err != nil {
				fmt.Println("user", id, "emit:", err)
			}
		}(i)
	}

	wg.Wait()

	c := shared.MustGet()
	fmt.Println("constructions:", builds.Load())
	fmt.Println("shared console id:", c.ID())

	fmt.Println("default console is process-wide:", console.Default() == console.Default())
}
