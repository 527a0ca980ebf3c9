package eval

import "github.com/embertide/ember/internal/object"

// withLoc stamps a location onto errors produced below the AST (e.g. by
// Environment.Define/Assign, which have no node to read a location from)
// so diagnostics still point at the call site.
func withLoc(err *object.Error, line, col int) *object.Error {
	if err == nil {
		return nil
	}
	if err.Line == 0 && err.Column == 0 {
		err.Line, err.Column = line, col
	}
	return err
}
