package console

import "github.com/naruneph/go-design-patterns/lazy"

// defaultRef holds the process-wide console. The build cannot fail, and
// the lazy publication guarantees every racing first caller receives the
// same fully constructed instance.
var defaultRef = lazy.NewRef(func() (*Console, error) {
	return New(WithName("default")), nil
})

// Default returns the process-wide shared console, constructing it on
// first use. The instance is identity-stable for the rest of the process
// and is never torn down. Prefer passing a *Console to its consumers
// explicitly; reach for Default only where injection is impractical.
func Default() *Console {
	return defaultRef.MustGet()
}
