// Package ast defines the Abstract Syntax Tree node types for Oxygen.
//
// The AST is a tagged-variant tree: every node type implements Node
// (and either Expression or Statement), and consumers downstream of the
// parser recognize node kinds with a type switch rather than a reflection-
// based visitor. This mirrors the teacher's ast package shape while
// replacing its DWScript-specific node set with Oxygen's.
package ast

import "fmt"

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() int // source line number; Oxygen has no column tracking
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is a Node that does not produce a value.
type Statement interface {
	Node
	stmtNode()
}

// Compound is an ordered list of statements — a block. Program is the
// root compound of a whole source file.
type Compound struct {
	Statements []Statement
	Line       int
}

func (c *Compound) TokenLiteral() string { return "" }
func (c *Compound) Pos() int             { return c.Line }
func (c *Compound) stmtNode()            {}
func (c *Compound) String() string {
	var out string
	for _, s := range c.Statements {
		out += s.String() + "\n"
	}
	return out
}

// Program is the root node produced by Parser.Parse.
type Program struct {
	Compound
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out string
	for _, s := range p.Statements {
		out += s.String() + "\n"
	}
	return out
}

// joinExpr renders a comma-separated expression list, used by several
// String() implementations below.
func joinExpr(exprs []Expression) string {
	out := ""
	for i, e := range exprs {
		if i > 0 {
			out += ", "
		}
		out += e.String()
	}
	return out
}

func fieldStr(name string, value any) string {
	return fmt.Sprintf("%s=%v", name, value)
}
