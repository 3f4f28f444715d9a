package registry

import (
	"fmt"
	"sort"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Example is a runnable, named pattern demonstration.
type Example struct {
	Name string
	Doc  string
	Func func()
}

// examples holds every registered example. Demos register from init, and
// the interactive shell reads the registry while the program runs, so the
// storage must tolerate concurrent access.
var examples = cmap.New[Example]()

// Register adds a new pattern example to the registry.
// It panics if the name is already taken.
func Register(name string, doc string, example func()) {
	ok := examples.SetIfAbsent(name, Example{
		Name: name,
		Doc:  doc,
		Func: example,
	})
	if !ok {
		panic(fmt.Sprintf("example %q already registered", name))
	}
}

// Get returns the example registered under name.
func Get(name string) (Example, bool) {
	return examples.Get(name)
}

// List returns the registered example names in sorted order.
func List() []string {
	names := examples.Keys()
	sort.Strings(names)
	return names
}
