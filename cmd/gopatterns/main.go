package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/naruneph/go-design-patterns/registry"

	_ "github.com/naruneph/go-design-patterns/creational/abstractfactory"
	_ "github.com/naruneph/go-design-patterns/creational/builder"
	_ "github.com/naruneph/go-design-patterns/creational/factory"
	_ "github.com/naruneph/go-design-patterns/creational/singleton"

	_ "github.com/naruneph/go-design-patterns/structural/adapter"

	_ "github.com/naruneph/go-design-patterns/behavioral/observer"

	_ "github.com/naruneph/go-design-patterns/concurrency/ctxemit"
	_ "github.com/naruneph/go-design-patterns/concurrency/stampede"
	_ "github.com/naruneph/go-design-patterns/concurrency/throttle"
)

func printExamples(w io.Writer) {
	for _, name := range registry.List() {
		if ex, ok := registry.Get(name); ok {
			fmt.Fprintf(w, " - %s: %s\n", name, ex.Doc)
		}
	}
}

func runExample(ex registry.Example) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("example panicked:", r)
		}
	}()
	ex.Func()
}

func shell() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "patterns> ",
		HistoryFile:       filepath.Join(os.TempDir(), "gopatterns_history"),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("list"),
			readline.PcItem("exit"),
			readline.PcItemDynamic(func(string) []string { return registry.List() }),
		),
	})
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	fmt.Println("Type an example name to run it, list to see options, exit to quit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("shell: %w", err)
		}

		switch input := strings.TrimSpace(line); input {
		case "":
		case "exit":
			return nil
		case "list":
			printExamples(os.Stdout)
		default:
			ex, ok := registry.Get(input)
			if !ok {
				fmt.Printf("unknown example %q, try list\n", input)
				continue
			}
			runExample(ex)
		}
	}
}

func main() {
	list := flag.Bool("list", false, "list available examples")
	example := flag.String("example", "", "example to run")
	interactive := flag.Bool("shell", false, "run examples from an interactive shell")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nExamples:")
		for _, name := range registry.List() {
			if ex, ok := registry.Get(name); ok && ex.Doc != "" {
				fmt.Fprintf(os.Stderr, " - %s: %s\n", name, ex.Doc)
				continue
			}
			fmt.Fprintf(os.Stderr, " - %s\n", name)
		}
	}

	flag.Parse()

	if *list {
		fmt.Println("Available examples:")
		printExamples(os.Stdout)
		return
	}

	if *interactive {
		if err := shell(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if ex, ok := registry.Get(*example); ok {
		ex.Func()
	} else {
		fmt.Println("Unknown or missing example. Use -list to see options.")
		os.Exit(1)
	}
}
