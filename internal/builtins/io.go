package builtins

import (
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// ioDefs covers §6's injected I/O boundary. puts/read never touch the
// filesystem or stdout themselves; they close over root so they always
// reach the Handle injected once at the root Environment, regardless of
// which nested scope the call happens to originate from
// (env.Environment.IO walks the parent chain, but a builtin has no
// access to its call-site Environment at all, so the root is captured
// here instead).
func ioDefs(root *env.Environment) []def {
	return []def{
		{"puts", -1, putsDef(root)},
		{"read", 1, readDef(root)},
	}
}

// putsDef formats every argument for display (Strings bare, everything
// else via Inspect) and writes them through the Handle. Called with no
// arguments it is a no-op: no line is emitted at all.
func putsDef(root *env.Environment) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		if len(args) == 0 {
			return object.NilValue
		}
		h := root.IO()
		if h == nil {
			return object.NewIOError("no I/O handle is configured", line, col)
		}
		parts := make([]string, len(args))
		for i, a := range args {
			if s, ok := a.(*object.String); ok {
				parts[i] = s.Go()
			} else {
				parts[i] = a.Inspect()
			}
		}
		h.Output(parts)
		return object.NilValue
	}
}

func readDef(root *env.Environment) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		path, ok := args[0].(*object.String)
		if !ok {
			return object.NewTypeError("read requires a String path, got "+string(args[0].TypeName()), line, col)
		}
		h := root.IO()
		if h == nil {
			return object.NewIOError("no I/O handle is configured", line, col)
		}
		content, err := h.Input(path.Go())
		if err != nil {
			return object.NewIOError(err.Error(), line, col)
		}
		return object.NewString(content)
	}
}
