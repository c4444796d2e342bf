package ast

import "fmt"

// FuncDecl is a named function or method declaration. Methods are
// represented as a FuncDecl whose Name is "ClassName.methodName" with a
// `self: ClassName` parameter auto-prepended by the parser.
type FuncDecl struct {
	Name              string
	ReturnType        *TypeRef
	Parameters        []*Param
	ParameterDefaults *OrderedMap[string, Expression]
	Varargs           *Param
	Body              *Compound
	Line              int
}

func (f *FuncDecl) TokenLiteral() string { return "fun" }
func (f *FuncDecl) Pos() int             { return f.Line }
func (f *FuncDecl) stmtNode()            {}
func (f *FuncDecl) exprNode()            {}
func (f *FuncDecl) String() string {
	params := ""
	for i, p := range f.Parameters {
		if i > 0 {
			params += ", "
		}
		params += p.Name
		if p.Type != nil {
			params += ": " + p.Type.String()
		}
	}
	ret := ""
	if f.ReturnType != nil {
		ret = " -> " + f.ReturnType.String()
	}
	return fmt.Sprintf("fun %s(%s)%s", f.Name, params, ret)
}

// ExternFuncDecl declares a function implemented outside Oxygen source —
// no body, no parameter defaults.
type ExternFuncDecl struct {
	Name       string
	ReturnType *TypeRef
	Parameters []*Param
	Varargs    *Param
	Line       int
}

func (f *ExternFuncDecl) TokenLiteral() string { return "extern" }
func (f *ExternFuncDecl) Pos() int             { return f.Line }
func (f *ExternFuncDecl) stmtNode()            {}
func (f *ExternFuncDecl) exprNode()            {}
func (f *ExternFuncDecl) String() string {
	return fmt.Sprintf("extern fun %s(...)", f.Name)
}

// AnonymousFunc is a function literal: same shape as FuncDecl minus a name.
type AnonymousFunc struct {
	ReturnType        *TypeRef
	Parameters        []*Param
	ParameterDefaults *OrderedMap[string, Expression]
	Varargs           *Param
	Body              *Compound
	Line              int
}

func (f *AnonymousFunc) TokenLiteral() string { return "fun" }
func (f *AnonymousFunc) Pos() int             { return f.Line }
func (f *AnonymousFunc) exprNode()            {}
func (f *AnonymousFunc) String() string       { return "fun(...)" }

// FuncCall is a call to a named function, e.g. `foo(1, 2, named=3)`. A
// call is valid in both statement position (invoked for its side
// effects) and expression position (its return value used), so it
// implements both Statement and Expression.
type FuncCall struct {
	Name           string
	Arguments      []Expression
	NamedArguments *OrderedMap[string, Expression]
	Line           int
}

func (f *FuncCall) TokenLiteral() string { return f.Name }
func (f *FuncCall) Pos() int             { return f.Line }
func (f *FuncCall) exprNode()            {}
func (f *FuncCall) stmtNode()            {}
func (f *FuncCall) String() string {
	return fmt.Sprintf("%s(%s)", f.Name, joinExpr(f.Arguments))
}

// MethodCall is a call to a method on an object, e.g. `obj.foo(1)`. Same
// dual statement/expression role as FuncCall.
type MethodCall struct {
	Object         Expression
	Name           string
	Arguments      []Expression
	NamedArguments *OrderedMap[string, Expression]
	Line           int
}

func (m *MethodCall) TokenLiteral() string { return m.Name }
func (m *MethodCall) Pos() int             { return m.Line }
func (m *MethodCall) exprNode()            {}
func (m *MethodCall) stmtNode()            {}
func (m *MethodCall) String() string {
	return fmt.Sprintf("%s.%s(%s)", m.Object.String(), m.Name, joinExpr(m.Arguments))
}

// Return exits the enclosing function, optionally with a value.
type Return struct {
	Value Expression
	Line  int
}

func (r *Return) TokenLiteral() string { return "return" }
func (r *Return) Pos() int             { return r.Line }
func (r *Return) stmtNode()            {}
func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}
