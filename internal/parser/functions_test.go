package parser

import (
	"testing"

	"github.com/oxygen-lang/oxygenc/internal/ast"
)

// TestFuncDeclWithDefaultParam is spec scenario 2.
func TestFuncDeclWithDefaultParam(t *testing.T) {
	src := "fun add(a: int, b: int = 1) -> int\n\treturn a + b\n"
	prog := parseSource(t, src)
	stmt := oneStmt(t, prog)

	fn, ok := stmt.(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", stmt)
	}
	if fn.Name != "add" {
		t.Fatalf("name = %q, want %q", fn.Name, "add")
	}
	if fn.ReturnType.Name != "int" {
		t.Fatalf("return type = %q, want %q", fn.ReturnType.Name, "int")
	}
	if len(fn.Parameters) != 2 || fn.Parameters[0].Name != "a" || fn.Parameters[1].Name != "b" {
		t.Fatalf("params = %#v", fn.Parameters)
	}
	def, ok := fn.ParameterDefaults.Get("b")
	if !ok {
		t.Fatalf("expected a default for param b")
	}
	if num, ok := def.(*ast.Num); !ok || num.Value != int64(1) {
		t.Fatalf("default for b = %#v, want Num(1)", def)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("body has %d statements, want 1", len(fn.Body.Statements))
	}
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("body statement = %#v, want Return", fn.Body.Statements[0])
	}
	if _, ok := ret.Value.(*ast.BinOp); !ok {
		t.Fatalf("return value = %#v, want BinOp", ret.Value)
	}
}

func TestFuncDeclWithoutReturnArrowIsVoid(t *testing.T) {
	prog := parseSource(t, "fun log(msg: str)\n\tprint(msg)\n")
	fn := oneStmt(t, prog).(*ast.FuncDecl)
	if fn.ReturnType.Name != "void" {
		t.Fatalf("return type = %q, want %q", fn.ReturnType.Name, "void")
	}
}

func TestFuncDeclWithUntypedParamTreatsNameAsType(t *testing.T) {
	prog := parseSource(t, "fun identity(x)\n\treturn x\n")
	fn := oneStmt(t, prog).(*ast.FuncDecl)
	if fn.Parameters[0].Type.Name != "x" {
		t.Fatalf("param type = %#v, want TypeRef(x)", fn.Parameters[0].Type)
	}
}

func TestFuncDeclWithVarargs(t *testing.T) {
	prog := parseSource(t, "fun total(nums: int...)\n\treturn 0\n")
	fn := oneStmt(t, prog).(*ast.FuncDecl)
	if len(fn.Parameters) != 0 {
		t.Fatalf("expected varargs param not counted among Parameters, got %#v", fn.Parameters)
	}
	if fn.Varargs == nil || fn.Varargs.Name != "nums" {
		t.Fatalf("varargs = %#v, want param nums", fn.Varargs)
	}
}

func TestExternFuncDeclHasNoBody(t *testing.T) {
	prog := parseSource(t, "fun extern puts(s: str) -> int\n")
	stmt := oneStmt(t, prog)

	fn, ok := stmt.(*ast.ExternFuncDecl)
	if !ok {
		t.Fatalf("expected *ast.ExternFuncDecl, got %T", stmt)
	}
	if fn.Name != "puts" {
		t.Fatalf("name = %q, want %q", fn.Name, "puts")
	}
}

func TestExternFuncRejectsDefaultParam(t *testing.T) {
	err := parseSourceErr(t, "fun extern puts(s: str = \"x\") -> int\n")
	if err == nil {
		t.Fatal("expected an error for extern function with default parameter")
	}
}

// TestOperatorOverloadMangling grounds spec.md's operator.NAME.T1[.T2]
// mangling rule.
func TestOperatorOverloadMangling(t *testing.T) {
	src := "type Vec2 = int\nfun operator add(a: Vec2, b: Vec2) -> Vec2\n\treturn a\n"
	prog := parseSource(t, src)
	fn := prog.Statements[1].(*ast.FuncDecl)
	if fn.Name != "operator.add.Vec2.Vec2" {
		t.Fatalf("mangled name = %q, want %q", fn.Name, "operator.add.Vec2.Vec2")
	}
}

func TestOperatorOverloadRejectsWrongArity(t *testing.T) {
	src := "type Vec2 = int\nfun operator neg(a: Vec2, b: Vec2, c: Vec2) -> Vec2\n\treturn a\n"
	err := parseSourceErr(t, src)
	if err == nil {
		t.Fatal("expected an error for a 3-parameter operator overload")
	}
}

func TestAnonymousFuncExpression(t *testing.T) {
	prog := parseSource(t, "f = fun(x: int) -> int\n\treturn x\n")
	stmt := oneStmt(t, prog)

	assign, ok := stmt.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt)
	}
	if _, ok := assign.Right.(*ast.AnonymousFunc); !ok {
		t.Fatalf("right = %#v, want *ast.AnonymousFunc", assign.Right)
	}
}

func TestAnonymousFuncAsBareStatementIsAnError(t *testing.T) {
	err := parseSourceErr(t, "fun(x: int) -> int\n\treturn x\n")
	if err == nil {
		t.Fatal("expected an error for an anonymous function used as a bare statement")
	}
}

func TestPlainFunctionCallStatement(t *testing.T) {
	prog := parseSource(t, "doThing(1, 2, scale=3)\n")
	stmt := oneStmt(t, prog)

	call, ok := stmt.(*ast.FuncCall)
	if !ok {
		t.Fatalf("expected *ast.FuncCall, got %T", stmt)
	}
	if call.Name != "doThing" {
		t.Fatalf("name = %q, want %q", call.Name, "doThing")
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("positional args = %d, want 2", len(call.Arguments))
	}
	if call.NamedArguments.Len() != 1 {
		t.Fatalf("named args = %d, want 1", call.NamedArguments.Len())
	}
	if _, ok := call.NamedArguments.Get("scale"); !ok {
		t.Fatalf("expected a named arg 'scale'")
	}
}

func TestMethodCallOnObject(t *testing.T) {
	prog := parseSource(t, "p.move(1, 2)\n")
	stmt := oneStmt(t, prog)

	call, ok := stmt.(*ast.MethodCall)
	if !ok {
		t.Fatalf("expected *ast.MethodCall, got %T", stmt)
	}
	if call.Name != "move" {
		t.Fatalf("name = %q, want %q", call.Name, "move")
	}
	obj, ok := call.Object.(*ast.Var)
	if !ok || obj.Name != "p" {
		t.Fatalf("object = %#v, want Var(p)", call.Object)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("args = %d, want 2", len(call.Arguments))
	}
}

func TestFieldAssignment(t *testing.T) {
	prog := parseSource(t, "p.x = 5\n")
	stmt := oneStmt(t, prog)

	assign, ok := stmt.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt)
	}
	dot, ok := assign.Left.(*ast.DotAccess)
	if !ok || dot.Field != "x" {
		t.Fatalf("left = %#v, want DotAccess(.x)", assign.Left)
	}
}

func TestSelfIsUsableAsABareName(t *testing.T) {
	prog := parseSource(t, "object Point\n\tx: int\n\tfun reset()\n\t\tself.x = 0\n")
	class := oneStmt(t, prog).(*ast.ClassDecl)
	method := class.Methods[0]
	assign, ok := method.Body.Statements[0].(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", method.Body.Statements[0])
	}
	dot := assign.Left.(*ast.DotAccess)
	obj, ok := dot.Object.(*ast.Var)
	if !ok || obj.Name != "self" {
		t.Fatalf("object = %#v, want Var(self)", dot.Object)
	}
}
