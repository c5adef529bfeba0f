// Package parser builds fsh's AST from a token stream: it partitions tokens
// into statement groups delimited by Semicolon, then classifies and parses
// each group as an Assignment, a Pipeline, or a Command — grounded on the
// original fsh-parser/src/parser.rs and fsh's lite_parser command/pipe/
// assign parsing.
package parser

import (
	"github.com/flucium/fsh/pkgs/ast"
	"github.com/flucium/fsh/pkgs/errors"
	"github.com/flucium/fsh/pkgs/lexer"
	"github.com/flucium/fsh/pkgs/token"
)

// Parse lexes and parses src into a Program.
func Parse(src string) (ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return ast.Program{}, err
	}

	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		return ast.Program{}, errors.New(errors.InvalidSyntax, "unexpected end of input")
	}
	tokens = tokens[:len(tokens)-1] // drop the terminal EOF before grouping

	var program ast.Program
	for _, group := range splitAllOn(token.Semicolon, tokens) {
		if len(group) == 0 {
			continue
		}

		stmt, err := parseGroup(group)
		if err != nil {
			return ast.Program{}, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

func parseGroup(group []token.Token) (ast.Statement, error) {
	if containsPipe(group) {
		pipeline, err := parsePipeline(group)
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.Statement{Kind: ast.StmtPipeline, Pipeline: pipeline}, nil
	}

	if len(group) == 3 && group[1].Type == token.Equal {
		assignment, err := parseAssignment(group)
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.Statement{Kind: ast.StmtAssignment, Assignment: assignment}, nil
	}

	command, err := parseCommand(group)
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.Statement{Kind: ast.StmtCommand, Command: command}, nil
}

func containsPipe(tokens []token.Token) bool {
	for _, tok := range tokens {
		if tok.Type == token.Pipe {
			return true
		}
	}
	return false
}

// parsePipeline splits group on every Pipe token and parses each segment as
// a Command. A pipeline must have at least two segments.
func parsePipeline(group []token.Token) (ast.Pipeline, error) {
	segments := splitAllOn(token.Pipe, group)
	if len(segments) < 2 {
		return ast.Pipeline{}, errors.New(errors.InvalidSyntax, "pipeline requires at least two commands")
	}

	pipeline := ast.Pipeline{Commands: make([]ast.Command, 0, len(segments))}
	for _, seg := range segments {
		if len(seg) == 0 {
			return ast.Pipeline{}, errors.New(errors.InvalidSyntax, "empty command in pipeline")
		}
		cmd, err := parseCommand(seg)
		if err != nil {
			return ast.Pipeline{}, err
		}
		pipeline.Commands = append(pipeline.Commands, cmd)
	}
	return pipeline, nil
}

// parseAssignment parses an exact three-token group: Identifier Equal
// <scalar>.
func parseAssignment(group []token.Token) (ast.Assignment, error) {
	if group[0].Type != token.Identifier {
		return ast.Assignment{}, errors.New(errors.InvalidSyntax, "assignment requires an identifier on the left")
	}
	value, err := scalarExpression(group[2])
	if err != nil {
		return ast.Assignment{}, err
	}
	return ast.Assignment{
		Identifier: ast.Identifier{Name: group[0].Str},
		Value:      value,
	}, nil
}

// scalarExpression converts a token into the Expression kinds legal as an
// assignment value: Null, String, Boolean, Number, FileDescriptor.
func scalarExpression(tok token.Token) (ast.Expression, error) {
	switch tok.Type {
	case token.Null:
		return ast.Null{}, nil
	case token.String:
		return ast.String{Value: tok.Str}, nil
	case token.Boolean:
		return ast.Boolean{Value: tok.Bool}, nil
	case token.Number:
		return ast.Number{Value: tok.Num}, nil
	case token.FileDescriptor:
		return ast.FileDescriptor{FD: tok.FD}, nil
	default:
		return nil, errors.Newf(errors.InvalidSyntax, "unexpected token %s where a value was expected", tok)
	}
}

// nameExpression converts a token into the Expression kinds legal as a
// command name: String, Identifier, Number.
func nameExpression(tok token.Token) (ast.Expression, error) {
	switch tok.Type {
	case token.String:
		return ast.String{Value: tok.Str}, nil
	case token.Identifier:
		return ast.Identifier{Name: tok.Str}, nil
	case token.Number:
		return ast.Number{Value: tok.Num}, nil
	default:
		return nil, errors.Newf(errors.InvalidSyntax, "unexpected token %s where a command name was expected", tok)
	}
}

// argExpression converts a token into the Expression kinds legal as a
// command argument: String, Identifier, Number — the same set as
// nameExpression, kept as a separate name for readability at call sites.
func argExpression(tok token.Token) (ast.Expression, error) {
	return nameExpression(tok)
}

// redirectRightExpression converts a token into the Expression kinds legal
// as a redirect's right-hand side: String, Identifier, Number,
// FileDescriptor.
func redirectRightExpression(tok token.Token) (ast.Expression, error) {
	switch tok.Type {
	case token.String:
		return ast.String{Value: tok.Str}, nil
	case token.Identifier:
		return ast.Identifier{Name: tok.Str}, nil
	case token.Number:
		return ast.Number{Value: tok.Num}, nil
	case token.FileDescriptor:
		return ast.FileDescriptor{FD: tok.FD}, nil
	default:
		return nil, errors.Newf(errors.InvalidSyntax, "unexpected token %s on the right of a redirect", tok)
	}
}

// parseCommand parses name, arguments, redirects, and the trailing
// background flag out of a token group.
func parseCommand(group []token.Token) (ast.Command, error) {
	name, err := nameExpression(group[0])
	if err != nil {
		return ast.Command{}, err
	}

	cmd := ast.Command{Name: name}

	rest := group[1:]
	i := 0
	for i < len(rest) {
		tok := rest[i]

		switch {
		case tok.Type == token.GreaterThan || tok.Type == token.LessThan:
			if i+1 >= len(rest) {
				return ast.Command{}, errors.New(errors.InvalidSyntax, "redirect missing right-hand side")
			}
			right, err := redirectRightExpression(rest[i+1])
			if err != nil {
				return ast.Command{}, err
			}
			op := ast.Gt
			left := ast.FileDescriptor{FD: 1}
			if tok.Type == token.LessThan {
				op = ast.Lt
				left = ast.FileDescriptor{FD: 0}
			}
			cmd.Redirects = append(cmd.Redirects, ast.Redirect{Operator: op, Left: left, Right: right})
			i += 2

		case tok.Type == token.FileDescriptor:
			if i+2 >= len(rest) {
				return ast.Command{}, errors.New(errors.InvalidSyntax, "redirect missing operator or right-hand side")
			}
			opTok := rest[i+1]
			var op ast.RedirectOperator
			switch opTok.Type {
			case token.GreaterThan:
				op = ast.Gt
			case token.LessThan:
				op = ast.Lt
			default:
				return ast.Command{}, errors.Newf(errors.InvalidSyntax, "expected > or < after file descriptor, got %s", opTok)
			}
			right, err := redirectRightExpression(rest[i+2])
			if err != nil {
				return ast.Command{}, err
			}
			cmd.Redirects = append(cmd.Redirects, ast.Redirect{
				Operator: op,
				Left:     ast.FileDescriptor{FD: tok.FD},
				Right:    right,
			})
			i += 3

		case tok.Type == token.Ampersand:
			if i != len(rest)-1 {
				return ast.Command{}, errors.New(errors.InvalidSyntax, "'&' is only legal as the last token of a command")
			}
			cmd.Background = true
			i++

		default:
			arg, err := argExpression(tok)
			if err != nil {
				return ast.Command{}, err
			}
			cmd.Args = append(cmd.Args, arg)
			i++
		}
	}

	return cmd, nil
}
