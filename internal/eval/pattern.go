package eval

import (
	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// match tries pat against val, defining any bindings directly in e on
// success. Callers that need to discard a failed attempt's
// partial bindings (match arms) should pass a throwaway child scope.
func (ev *Evaluator) match(pat ast.Pattern, val object.Object, e *env.Environment, mutable bool) (bool, *object.Error) {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
		return true, nil

	case *ast.IdentifierPattern:
		if defErr := e.Define(p.Name, val, mutable); defErr != nil {
			return false, withLoc(defErr, p.Loc().Line, p.Loc().Column)
		}
		return true, nil

	case *ast.LiteralPattern:
		target := ev.Eval(p.Value, e)
		if errObj, ok := target.(*object.Error); ok {
			return false, errObj
		}
		tv, ok := target.(object.Value)
		if !ok {
			return false, nil
		}
		vv, ok := val.(object.Value)
		if !ok {
			return false, nil
		}
		return vv.Equals(tv), nil

	case *ast.ListPattern:
		return ev.matchList(p, val, e, mutable)

	case *ast.DictPattern:
		return ev.matchDict(p, val, e, mutable)

	case *ast.GuardPattern:
		ok, err := ev.match(p.Inner, val, e, mutable)
		if err != nil || !ok {
			return ok, err
		}
		cond := ev.Eval(p.Condition, e)
		if errObj, ok := cond.(*object.Error); ok {
			return false, errObj
		}
		return cond.IsTruthy(), nil

	default:
		return false, object.NewDomainError("unsupported pattern", pat.Loc().Line, pat.Loc().Column)
	}
}

func (ev *Evaluator) matchList(p *ast.ListPattern, val object.Object, e *env.Environment, mutable bool) (bool, *object.Error) {
	list, ok := val.(*object.List)
	if !ok {
		return false, nil
	}
	n := len(p.Elements)
	if p.Rest == nil {
		if list.Len() != n {
			return false, nil
		}
	} else if list.Len() < n {
		return false, nil
	}
	for i, elemPat := range p.Elements {
		elemVal, _ := list.Get(i)
		ok, err := ev.match(elemPat, elemVal, e, mutable)
		if err != nil || !ok {
			return ok, err
		}
	}
	if p.Rest != nil {
		rest, err := list.Slice(n, list.Len())
		if err != nil {
			return false, err
		}
		if defErr := e.Define(p.Rest.Name, rest, mutable); defErr != nil {
			return false, withLoc(defErr, p.Rest.Loc().Line, p.Rest.Loc().Column)
		}
	}
	return true, nil
}

func (ev *Evaluator) matchDict(p *ast.DictPattern, val object.Object, e *env.Environment, mutable bool) (bool, *object.Error) {
	dict, ok := val.(*object.Dict)
	if !ok {
		return false, nil
	}
	for _, entry := range p.Entries {
		keyObj := ev.Eval(entry.Key, e)
		if errObj, ok := keyObj.(*object.Error); ok {
			return false, errObj
		}
		key, ok := keyObj.(object.Value)
		if !ok {
			return false, object.NewDomainError("dict pattern key is not hashable", entry.Key.Loc().Line, entry.Key.Loc().Column)
		}
		fieldVal, found := dict.Get(key)
		if !found {
			return false, nil
		}
		ok2, err := ev.match(entry.Pattern, fieldVal, e, mutable)
		if err != nil || !ok2 {
			return ok2, err
		}
	}
	return true, nil
}
