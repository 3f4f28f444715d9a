package ctxemit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dolmen-go/contextio"

	"github.com/naruneph/go-design-patterns/console"
	"github.com/naruneph/go-design-patterns/registry"
)

func init() {
	registry.Register(
		"concurrency_ctxemit",
		"Demonstrates a console whose sink respects context cancellation.",
		CtxEmitExample,
	)
}

func CtxEmitExample() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	c := console.New(
		console.WithName("deadline"),
		console.WithPrefix("[deadline] "),
		console.WithSink(contextio.NewWriter(ctx, os.Stdout)),
	)

	for i := 0; ; i++ {
		if err := c.Emit(fmt.Sprintf("tick %d", i)); err != nil {
			fmt.Println("stopped:", err)
			break
		}
		time.Sleep(200 * time.Millisecond)
	}

	// The failed emit is surfaced to the caller; the console itself is
	// untouched and keeps its identity.
	fmt.Println("console still intact:", c)
}
