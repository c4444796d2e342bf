package ast

import "fmt"

// ClassDecl declares a class: methods and field type annotations.
// InstanceFields holds no entries: the parser creates it empty and class
// field declarations take no default value.
type ClassDecl struct {
	Name           string
	Base           string
	Methods        []*FuncDecl
	Fields         *OrderedMap[string, *TypeRef]
	InstanceFields *OrderedMap[string, Expression]
	Line           int
}

func (c *ClassDecl) TokenLiteral() string { return "type" }
func (c *ClassDecl) Pos() int             { return c.Line }
func (c *ClassDecl) stmtNode()            {}
func (c *ClassDecl) String() string {
	base := ""
	if c.Base != "" {
		base = " : " + c.Base
	}
	return fmt.Sprintf("class %s%s (%d methods)", c.Name, base, len(c.Methods))
}
