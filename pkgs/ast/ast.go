// Package ast defines fsh's abstract syntax tree: Expression, Redirect,
// Command, Assignment, Pipeline and Statement. Expression is a closed tagged
// variant expressed as a Go interface implemented by a fixed set of
// exported struct kinds, matched exhaustively by Kind().
package ast

import "fmt"

// ExprKind discriminates the closed set of Expression variants.
type ExprKind int

const (
	KindNull ExprKind = iota
	KindString
	KindNumber
	KindBoolean
	KindIdentifier
	KindFileDescriptor
)

func (k ExprKind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindIdentifier:
		return "Identifier"
	case KindFileDescriptor:
		return "FileDescriptor"
	default:
		return fmt.Sprintf("ExprKind(%d)", int(k))
	}
}

// Expression is fsh's closed AST value type.
type Expression interface {
	Kind() ExprKind
	String() string
}

type Null struct{}

func (Null) Kind() ExprKind  { return KindNull }
func (Null) String() string  { return "null" }

type String struct{ Value string }

func (e String) Kind() ExprKind { return KindString }
func (e String) String() string { return e.Value }

type Number struct{ Value int64 }

func (e Number) Kind() ExprKind { return KindNumber }
func (e Number) String() string { return fmt.Sprintf("%d", e.Value) }

type Boolean struct{ Value bool }

func (e Boolean) Kind() ExprKind { return KindBoolean }
func (e Boolean) String() string { return fmt.Sprintf("%t", e.Value) }

type Identifier struct{ Name string }

func (e Identifier) Kind() ExprKind { return KindIdentifier }
func (e Identifier) String() string { return "$" + e.Name }

type FileDescriptor struct{ FD int }

func (e FileDescriptor) Kind() ExprKind { return KindFileDescriptor }
func (e FileDescriptor) String() string { return fmt.Sprintf("@%d", e.FD) }

// RedirectOperator distinguishes > from <. In this design both perform the
// same dup2(right, left) operation in the child; only the fd numbers chosen
// by the user convey direction. See pkgs/executor for the rationale.
type RedirectOperator int

const (
	Gt RedirectOperator = iota
	Lt
)

func (o RedirectOperator) String() string {
	if o == Lt {
		return "<"
	}
	return ">"
}

// Redirect is (operator, left, right). left is always a FileDescriptor;
// right is String, Identifier, Number, or FileDescriptor.
type Redirect struct {
	Operator RedirectOperator
	Left     FileDescriptor
	Right    Expression
}

// Command is a name, an ordered argument list, an ordered redirect list, and
// a background flag.
type Command struct {
	Name       Expression
	Args       []Expression
	Redirects  []Redirect
	Background bool
}

// Assignment binds an Identifier to a scalar Expression value.
type Assignment struct {
	Identifier Identifier
	Value      Expression
}

// Pipeline is two or more Commands joined by '|'.
type Pipeline struct {
	Commands []Command
}

// StatementKind discriminates the Statement variants.
type StatementKind int

const (
	StmtCommand StatementKind = iota
	StmtAssignment
	StmtPipeline
)

// Statement is a tagged union over Command, Assignment, and Pipeline. Only
// the field matching Kind is populated.
type Statement struct {
	Kind       StatementKind
	Command    Command
	Assignment Assignment
	Pipeline   Pipeline
}

// Program is an ordered sequence of Statements.
type Program struct {
	Statements []Statement
}
