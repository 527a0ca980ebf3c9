package builtins

import "github.com/embertide/ember/internal/object"

// withLoc fills in an error's position when the underlying call had none
// to give it (e.g. List.Slice reports line 0, col 0 since *List carries no
// AST location).
func withLoc(err *object.Error, line, col int) *object.Error {
	if err == nil {
		return nil
	}
	if err.Line == 0 && err.Column == 0 {
		err.Line, err.Column = line, col
	}
	return err
}
