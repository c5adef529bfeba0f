package executor

import (
	"github.com/flucium/fsh/pkgs/ast"
	"github.com/flucium/fsh/pkgs/vars"
)

// Run executes every statement in program in order against state and
// store. Grounded on the top-level execute() in the original exec.rs,
// which walks an Ast::Block the same way.
func Run(program ast.Program, state *State, store *vars.Store) error {
	for _, stmt := range program.Statements {
		if err := runStatement(stmt, state, store); err != nil {
			return err
		}
	}
	return nil
}

func runStatement(stmt ast.Statement, state *State, store *vars.Store) error {
	switch stmt.Kind {
	case ast.StmtAssignment:
		return runAssignment(stmt.Assignment, store)
	case ast.StmtPipeline:
		return runPipeline(stmt.Pipeline, state, store)
	default:
		if err := runCommand(stmt.Command, state, store, true); err != nil {
			return err
		}
		state.Processes.Wait()
		return nil
	}
}

func runAssignment(assignment ast.Assignment, store *vars.Store) error {
	value, err := resolveAssignmentValue(assignment.Value)
	if err != nil {
		return err
	}
	return store.Insert(assignment.Identifier.Name, value)
}
