package executor

import (
	"path/filepath"

	"github.com/flucium/fsh/pkgs/ast"
	"github.com/flucium/fsh/pkgs/errors"
	"github.com/flucium/fsh/pkgs/vars"
)

// resolveAssignmentValue renders the right-hand side of an assignment to
// the string actually stored in the variable table, grounded on
// execute_assignment in the original execute.rs.
func resolveAssignmentValue(expr ast.Expression) (string, error) {
	switch e := expr.(type) {
	case ast.Null:
		return "", nil
	case ast.String:
		return e.Value, nil
	case ast.Boolean:
		return e.String(), nil
	case ast.Number:
		return e.String(), nil
	case ast.FileDescriptor:
		return e.String(), nil
	default:
		return "", errors.Newf(errors.InvalidInput, "invalid assignment value expression %s", expr)
	}
}

// resolveCommandName renders a command's name expression to a string,
// looking identifiers up in store. Grounded on execute_command's name
// resolution in the original execute.rs.
func resolveCommandName(expr ast.Expression, store *vars.Store) (string, error) {
	switch e := expr.(type) {
	case ast.String:
		return e.Value, nil
	case ast.Number:
		return e.String(), nil
	case ast.Identifier:
		v, ok := store.Get(e.Name)
		if !ok {
			return "", errors.New(errors.NotFound, "command not found in environment")
		}
		return v, nil
	default:
		return "", errors.Newf(errors.InvalidInput, "invalid command name expression %s", expr)
	}
}

// resolveArgs renders a command's argument list to strings, expanding any
// String argument (quoted or bare) as a filesystem glob pattern first — falling
// back to the literal text when the pattern matches nothing. Grounded on
// execute_command's argument loop in the original execute.rs.
func resolveArgs(exprs []ast.Expression, store *vars.Store) ([]string, error) {
	args := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		switch e := expr.(type) {
		case ast.String:
			matches, err := filepath.Glob(e.Value)
			if err == nil && len(matches) > 0 {
				args = append(args, matches...)
				continue
			}
			args = append(args, e.Value)
		case ast.Number:
			args = append(args, e.String())
		case ast.Identifier:
			v, _ := store.Get(e.Name)
			args = append(args, v)
		default:
			return nil, errors.Newf(errors.InvalidInput, "invalid command argument expression %s", expr)
		}
	}
	return args, nil
}

// resolveRedirectTarget renders a redirect's right-hand expression to the
// path to open for the dup2 emulation. A FileDescriptor right-hand side is
// never passed here — the caller (openRedirectTarget) handles that case by
// aliasing an already-open fd slot instead of opening a path.
func resolveRedirectTarget(expr ast.Expression, store *vars.Store) (string, error) {
	switch e := expr.(type) {
	case ast.String:
		return e.Value, nil
	case ast.Number:
		return e.String(), nil
	case ast.Identifier:
		v, ok := store.Get(e.Name)
		if !ok {
			return "", errors.New(errors.NotFound, "redirect target not found in environment")
		}
		return v, nil
	default:
		return "", errors.Newf(errors.InvalidInput, "invalid redirect target expression %s", expr)
	}
}
