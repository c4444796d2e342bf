package ast

import "fmt"

// StructDecl declares a struct: an ordered set of typed fields, with an
// optional default-value expression per field.
type StructDecl struct {
	Name     string
	Fields   *OrderedMap[string, *TypeRef]
	Defaults *OrderedMap[string, Expression]
	Line     int
}

func (s *StructDecl) TokenLiteral() string { return "type" }
func (s *StructDecl) Pos() int             { return s.Line }
func (s *StructDecl) stmtNode()            {}
func (s *StructDecl) String() string {
	return fmt.Sprintf("struct %s (%d fields)", s.Name, s.Fields.Len())
}
