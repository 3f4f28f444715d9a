package throttle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/naruneph/go-design-patterns/console"
	"github.com/naruneph/go-design-patterns/registry"
)

func init() {
	registry.Register(
		"concurrency_throttle",
		"Demonstrates a weighted semaphore capping concurrent emitters on a shared console.",
		ThrottleExample,
	)
}

func emitter(ctx context.Context, id int, sem *semaphore.Weighted, c *console.Console, inFlight *atomic.Int32, wg *sync.WaitGroup) {
	defer wg.Done()

	if err := sem.Acquire(ctx, 1); err != nil {
		fmt.Printf("emitter %d: acquire: %v\n", id, err)
		return
	}
	defer sem.Release(1)

	n := inFlight.Add(1)
	defer inFlight.Add(-1)

	if err := c.Emit(fmt.Sprintf("emitter %d speaking, %d in flight", id, n)); err != nil {
		fmt.Printf("emitter %d: emit: %v\n", id, err)
		return
	}
	time.Sleep(100 * time.Millisecond)
}

func ThrottleExample() {
	const limit = 2

	sem := semaphore.NewWeighted(limit)
	shared := console.New(console.WithName("throttled"), console.WithPrefix("[throttled] "))

	ctx := context.Background()
	var inFlight atomic.Int32

	var wg sync.WaitGroup
	wg.Add(6)
	for i := 0; i < 6; i++ {
		go emitter(ctx, i, sem, shared, &inFlight, &wg)
	}

	wg.Wait()
	fmt.Println("all emitters done, at most", limit, "were ever in flight")
}
