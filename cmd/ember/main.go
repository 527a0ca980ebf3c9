// Command ember is the CLI/REPL entry point: a driver (banner REPL with
// no arguments, file execution with a path, `-e` for an inline
// expression, `--test` for a file's test sections) built around Go's
// standard `flag` package and a runner-mediated exit contract (0
// success, 1 usage error, 2 parse/runtime error, 3 test failure) so the
// exit code always reflects what actually happened, not just whether
// main() returned.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	ioHandle "github.com/embertide/ember/internal/io"
	"github.com/embertide/ember/internal/repl"
	"github.com/embertide/ember/internal/runner"
)

const (
	version = "v0.1.0"
	author  = "the ember project"
	license = "MIT"
	prompt  = "ember >>> "
	line    = "----------------------------------------------------------------"
	banner = `
  ___ _ __ ___ | |__   ___ _ __
 / _ \ '_ \/ _ \ '_ \ / _ \ '__|
|  __/ | | | | | |_) |  __/ |
 \___|_| |_| |_|_.__/ \___|_|
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	evalExpr := flag.String("e", "", "evaluate a single expression and print its result")
	testMode := flag.Bool("test", false, "run test sections instead of solving")
	includeSlow := flag.Bool("slow", false, "also run @slow-annotated test sections")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		cyanColor.Printf("ember %s (%s, %s)\n", version, author, license)
		os.Exit(0)
	}

	args := flag.Args()

	switch {
	case *evalExpr != "":
		os.Exit(runSource(*evalExpr))
	case *testMode:
		if len(args) != 1 {
			redColor.Fprintln(os.Stderr, "[usage error] --test requires exactly one file argument")
			os.Exit(1)
		}
		os.Exit(runTests(args[0], *includeSlow))
	case len(args) == 1:
		os.Exit(runFile(args[0]))
	case len(args) == 0:
		repl.New(banner, version, author, line, license, prompt).Start(os.Stdout)
		os.Exit(0)
	default:
		redColor.Fprintln(os.Stderr, "[usage error] expected zero or one file argument")
		os.Exit(1)
	}
}

func usage() {
	cyanColor.Println("ember - an Advent-of-Code-flavoured scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  ember                  start the interactive REPL")
	yellowColor.Println("  ember <path>           run a script file (solve mode)")
	yellowColor.Println("  ember -e '<expr>'      evaluate a single expression")
	yellowColor.Println("  ember --test <path>    run the file's test sections")
	yellowColor.Println("  ember --test --slow <path>   also run @slow tests")
	yellowColor.Println("  ember --version        print version information")
}

func runFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[usage error] could not read '%s': %v\n", path, err)
		return 1
	}
	return runSource(string(data))
}

func runSource(source string) int {
	r := runner.New()
	out := r.Run(source, ioHandle.NewLocalHandle(os.Stdout))

	if len(out.ParseErrors) > 0 {
		for _, e := range out.ParseErrors {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return 2
	}
	if out.RuntimeErr != nil {
		redColor.Fprintln(os.Stderr, out.RuntimeErr.Inspect())
		return 2
	}
	for _, name := range []string{"script", "part_one", "part_two"} {
		part, ok := out.Parts[name]
		if !ok {
			continue
		}
		yellowColor.Printf("%s => %s (%dms)\n", name, part.Value, part.DurationMs)
	}
	return 0
}

func runTests(path string, includeSlow bool) int {
	data, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[usage error] could not read '%s': %v\n", path, err)
		return 1
	}

	r := runner.New()
	out := r.RunTests(string(data), ioHandle.NewLocalHandle(os.Stdout), includeSlow)

	if len(out.ParseErrors) > 0 {
		for _, e := range out.ParseErrors {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return 2
	}
	if out.RuntimeErr != nil {
		redColor.Fprintln(os.Stderr, out.RuntimeErr.Inspect())
		return 2
	}

	for _, t := range out.Tests {
		switch {
		case t.Skipped:
			cyanColor.Printf("test %d: skipped (slow)\n", t.Index)
		case t.Err != nil:
			redColor.Printf("test %d: error: %s\n", t.Index, t.Err.Inspect())
		default:
			for name, p := range t.Parts {
				if p.Passed {
					yellowColor.Printf("test %d %s: pass (%s)\n", t.Index, name, p.Actual)
				} else {
					redColor.Printf("test %d %s: FAIL expected %s, got %s\n", t.Index, name, p.Expected, p.Actual)
				}
			}
		}
	}

	if out.Passed() {
		fmt.Fprintln(os.Stdout, "all tests passed")
		return 0
	}
	return 3
}
