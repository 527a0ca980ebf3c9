// Package repl implements the interactive Read-Eval-Print Loop: same
// banner/readline/color shape as a typical tree-walking scripting
// language's REPL, evaluating every line against one persistent root
// Environment so bindings and sections accumulate across the session
// the way a REPL user expects.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/eval"
	ioHandle "github.com/embertide/ember/internal/io"
	"github.com/embertide/ember/internal/object"
	"github.com/embertide/ember/internal/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a self-contained interactive session's configuration and
// display strings.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to ember!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop until '.exit', EOF, or a readline error.
// writer doubles as the REPL's own banner/result stream and the
// injected I/O handle's Output target, so `puts` inside a REPL session
// prints to the same place results do.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := eval.New()
	root := ev.NewRootEnv()
	root.SetIO(ioHandle.NewLocalHandle(writer))

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, ev, root)
	}
}

// executeWithRecovery recovers around parse-and-eval: the REPL must
// survive a bad line and keep prompting, unlike file mode which exits
// on the first error.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, ev *eval.Evaluator, root *env.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime panic] %v\n", recovered)
		}
	}()

	p := parser.New(line)
	prog, errs := p.Parse()
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e.Error())
		}
		return
	}

	result := ev.Eval(prog, root)
	if errObj, ok := result.(*object.Error); ok {
		redColor.Fprintf(writer, "%s\n", errObj.Inspect())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
