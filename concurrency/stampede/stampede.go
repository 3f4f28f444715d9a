package stampede

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/naruneph/go-design-patterns/lazy"
	"github.com/naruneph/go-design-patterns/registry"
)

func init() {
	registry.Register(
		"concurrency_stampede",
		"Demonstrates singleflight coalescing duplicate loads, next to process-lifetime lazy memoization.",
		StampedeExample,
	)
}

func StampedeExample() {
	var loads atomic.Int32
	load := func() (any, error) {
		loads.Add(1)
		time.Sleep(150 * time.Millisecond) // a slow dependency
		return "expensive value", nil
	}

	var flight singleflight.Group
	wave := func(name string) {
		var g errgroup.Group
		for i := 0; i < 5; i++ {
			i := i
			g.Go(func() error {
				v, err, shared := flight.Do("resource", load)
				if err != nil {
					return err
				}
				fmt.Printf("%s caller %d got %q (shared=%v)\n", name, i, v, shared)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			fmt.Println(name, "error:", err)
		}
	}

	wave("first")
	wave("second")
	fmt.Println("singleflight deduplicates in-flight callers only; loads:", loads.Load())

	// A lazy ref keeps the first result for the process lifetime, so a
	// second wave never reloads.
	var refLoads atomic.Int32
	ref := lazy.NewRef(func() (string, error) {
		refLoads.Add(1)
		return "memoized value", nil
	})
	for i := 0; i < 2; i++ {
		var g errgroup.Group
		for j := 0; j < 5; j++ {
			g.Go(func() error {
				_, err := ref.Get()
				return err
			})
		}
		if err := g.Wait(); err != nil {
			fmt.Println("ref error:", err)
		}
	}
	fmt.Println("lazy ref memoizes for the process lifetime; loads:", refLoads.Load())
}
