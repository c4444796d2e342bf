package ast

import "fmt"

// EnumDecl declares an enum: an ordered, named set of variants.
type EnumDecl struct {
	Name   string
	Fields []string
	Line   int
}

func (e *EnumDecl) TokenLiteral() string { return "type" }
func (e *EnumDecl) Pos() int             { return e.Line }
func (e *EnumDecl) stmtNode()            {}
func (e *EnumDecl) String() string {
	return fmt.Sprintf("enum %s (%d fields)", e.Name, len(e.Fields))
}
