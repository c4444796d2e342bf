package ast

import "fmt"

// TypeRef names a type: a built-in or user-declared type name, optionally
// parameterized (`list<int>`, `func<int, int> -> int`). Params holds the
// type arguments for list/tuple/dict/func; Return is only set for func.
type TypeRef struct {
	Name   string
	Params []*TypeRef
	Return *TypeRef
	Line   int
}

func (t *TypeRef) TokenLiteral() string { return t.Name }
func (t *TypeRef) Pos() int             { return t.Line }
func (t *TypeRef) exprNode()            {}
func (t *TypeRef) String() string {
	if len(t.Params) == 0 {
		return t.Name
	}
	params := ""
	for i, p := range t.Params {
		if i > 0 {
			params += ", "
		}
		params += p.String()
	}
	ret := ""
	if t.Return != nil {
		ret = " -> " + t.Return.String()
	}
	return fmt.Sprintf("%s<%s>%s", t.Name, params, ret)
}

// Param is one entry of a function's ordered parameter list.
type Param struct {
	Name string
	Type *TypeRef
}

// VarDecl declares a new variable: `x: int = 1` or `const x = 1`. It
// implements both Statement and Expression because an initialized
// declaration is parsed as an Assign whose Left is the VarDecl itself.
type VarDecl struct {
	Name     string
	TypeNode *TypeRef
	Value    Expression
	ReadOnly bool
	Line     int
}

func (v *VarDecl) TokenLiteral() string { return v.Name }
func (v *VarDecl) Pos() int             { return v.Line }
func (v *VarDecl) stmtNode()            {}
func (v *VarDecl) exprNode()            {}
func (v *VarDecl) String() string {
	typ := ""
	if v.TypeNode != nil {
		typ = ": " + v.TypeNode.String()
	}
	val := ""
	if v.Value != nil {
		val = " = " + v.Value.String()
	}
	prefix := ""
	if v.ReadOnly {
		prefix = "const "
	}
	return fmt.Sprintf("%s%s%s%s", prefix, v.Name, typ, val)
}

// Var is a bare variable reference.
type Var struct {
	Name     string
	ReadOnly bool
	Line     int
}

func (v *Var) TokenLiteral() string { return v.Name }
func (v *Var) Pos() int             { return v.Line }
func (v *Var) exprNode()            {}
func (v *Var) String() string       { return v.Name }

// TypeDecl declares a type alias: `type Meters = int`.
type TypeDecl struct {
	Name       string
	Collection *TypeRef
	Line       int
}

func (t *TypeDecl) TokenLiteral() string { return "type" }
func (t *TypeDecl) Pos() int             { return t.Line }
func (t *TypeDecl) stmtNode()            {}
func (t *TypeDecl) String() string {
	return fmt.Sprintf("type %s = %s", t.Name, t.Collection.String())
}

// Void is the absence of a value. The parser never builds one: a function
// with no return arrow gets a TypeRef named "void" as its return type.
type Void struct {
	Line int
}

func (v *Void) TokenLiteral() string { return "void" }
func (v *Void) Pos() int             { return v.Line }
func (v *Void) exprNode()            {}
func (v *Void) String() string       { return "void" }
