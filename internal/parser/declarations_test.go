package parser

import (
	"testing"

	"github.com/oxygen-lang/oxygenc/internal/ast"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

func TestTypedVarDeclWithInitializer(t *testing.T) {
	prog := parseSource(t, "x: int = 5\n")
	stmt := oneStmt(t, prog)

	assign, ok := stmt.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt)
	}
	if assign.Op != "=" {
		t.Fatalf("op = %q, want %q", assign.Op, "=")
	}
	decl, ok := assign.Left.(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected Assign.Left to be *ast.VarDecl, got %T", assign.Left)
	}
	if decl.Name != "x" || decl.TypeNode.Name != "int" || decl.ReadOnly {
		t.Fatalf("decl = %#v", decl)
	}
	num, ok := assign.Right.(*ast.Num)
	if !ok || num.Value != int64(5) || num.ValType != token.Int {
		t.Fatalf("right = %#v, want Num(5, INT)", assign.Right)
	}
}

func TestTypedVarDeclWithoutInitializer(t *testing.T) {
	prog := parseSource(t, "x: int\n")
	stmt := oneStmt(t, prog)

	decl, ok := stmt.(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected a bare *ast.VarDecl with no initializer, got %T", stmt)
	}
	if decl.Name != "x" || decl.TypeNode.Name != "int" {
		t.Fatalf("decl = %#v", decl)
	}
	if decl.Value != nil {
		t.Fatalf("expected nil Value, got %#v", decl.Value)
	}
}

func TestConstDecl(t *testing.T) {
	prog := parseSource(t, "const x = 5\n")
	stmt := oneStmt(t, prog)

	assign, ok := stmt.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt)
	}
	v, ok := assign.Left.(*ast.Var)
	if !ok || !v.ReadOnly || v.Name != "x" {
		t.Fatalf("left = %#v, want read-only Var(x)", assign.Left)
	}
}

func TestConstDeclWithExplicitType(t *testing.T) {
	prog := parseSource(t, "const x: int = 5\n")
	stmt := oneStmt(t, prog)

	assign, ok := stmt.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt)
	}
	decl, ok := assign.Left.(*ast.VarDecl)
	if !ok || decl.Name != "x" || decl.TypeNode.Name != "int" {
		t.Fatalf("left = %#v, want VarDecl(x: int)", assign.Left)
	}
}

func TestPlainAssignmentWithoutType(t *testing.T) {
	prog := parseSource(t, "x = 5\n")
	stmt := oneStmt(t, prog)

	assign, ok := stmt.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt)
	}
	if _, ok := assign.Left.(*ast.Var); !ok {
		t.Fatalf("expected Left to be bare Var, got %T", assign.Left)
	}
}

func TestOpAssignAndIncrement(t *testing.T) {
	prog := parseSource(t, "x += 1\ny++\n")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	op, ok := prog.Statements[0].(*ast.OpAssign)
	if !ok || op.Op != "+=" {
		t.Fatalf("stmt0 = %#v, want OpAssign(+=)", prog.Statements[0])
	}
	inc, ok := prog.Statements[1].(*ast.IncrementAssign)
	if !ok || inc.Op != "++" {
		t.Fatalf("stmt1 = %#v, want IncrementAssign(++)", prog.Statements[1])
	}
}

func TestTypeAliasDeclRegistersUserType(t *testing.T) {
	prog := parseSource(t, "type Meters = int\nx: Meters = 5\n")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	typeDecl, ok := prog.Statements[0].(*ast.TypeDecl)
	if !ok || typeDecl.Name != "Meters" || typeDecl.Collection.Name != "int" {
		t.Fatalf("stmt0 = %#v", prog.Statements[0])
	}
	assign, ok := prog.Statements[1].(*ast.Assign)
	if !ok {
		t.Fatalf("stmt1 = %#v, want *ast.Assign", prog.Statements[1])
	}
	decl, ok := assign.Left.(*ast.VarDecl)
	if !ok || decl.TypeNode.Name != "Meters" {
		t.Fatalf("decl type = %#v, want TypeRef(Meters)", assign.Left)
	}
}

func TestParameterizedTypeSpec(t *testing.T) {
	prog := parseSource(t, "x: list<int> = [1]\n")
	stmt := oneStmt(t, prog)

	assign := stmt.(*ast.Assign)
	decl := assign.Left.(*ast.VarDecl)
	if decl.TypeNode.Name != "list" {
		t.Fatalf("type name = %q, want %q", decl.TypeNode.Name, "list")
	}
	if len(decl.TypeNode.Params) != 1 || decl.TypeNode.Params[0].Name != "int" {
		t.Fatalf("type params = %#v, want [int]", decl.TypeNode.Params)
	}
}

func TestStructDeclWithDefaults(t *testing.T) {
	prog := parseSource(t, "struct Point\n\tx: int\n\ty: int = 0\n")
	stmt := oneStmt(t, prog)

	s, ok := stmt.(*ast.StructDecl)
	if !ok {
		t.Fatalf("expected *ast.StructDecl, got %T", stmt)
	}
	if s.Name != "Point" || s.Fields.Len() != 2 {
		t.Fatalf("struct = %#v", s)
	}
	if s.Defaults.Len() != 1 {
		t.Fatalf("expected 1 default, got %d", s.Defaults.Len())
	}
	if _, ok := s.Defaults.Get("y"); !ok {
		t.Fatalf("expected default for field y")
	}
}

func TestEnumDecl(t *testing.T) {
	prog := parseSource(t, "enum Color\n\tRed\n\tGreen\n\tBlue\n")
	stmt := oneStmt(t, prog)

	e, ok := stmt.(*ast.EnumDecl)
	if !ok {
		t.Fatalf("expected *ast.EnumDecl, got %T", stmt)
	}
	if e.Name != "Color" {
		t.Fatalf("name = %q, want %q", e.Name, "Color")
	}
	want := []string{"Red", "Green", "Blue"}
	if len(e.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", e.Fields, want)
	}
	for i, f := range want {
		if e.Fields[i] != f {
			t.Fatalf("fields[%d] = %q, want %q", i, e.Fields[i], f)
		}
	}
}

// TestClassDeclWithFieldsAndMethod is spec scenario 5: fields and a method
// whose parameter list is prepended with self and whose name is mangled to
// Class.method.
func TestClassDeclWithFieldsAndMethod(t *testing.T) {
	src := "object Point\n\tx: int\n\ty: int\n\tfun norm() -> int\n\t\treturn self.x * self.x + self.y * self.y\n"
	prog := parseSource(t, src)
	stmt := oneStmt(t, prog)

	class, ok := stmt.(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected *ast.ClassDecl, got %T", stmt)
	}
	if class.Name != "Point" {
		t.Fatalf("name = %q, want %q", class.Name, "Point")
	}
	if class.Fields.Len() != 2 {
		t.Fatalf("fields = %d, want 2", class.Fields.Len())
	}
	if len(class.Methods) != 1 {
		t.Fatalf("methods = %d, want 1", len(class.Methods))
	}
	method := class.Methods[0]
	if method.Name != "Point.norm" {
		t.Fatalf("method name = %q, want %q", method.Name, "Point.norm")
	}
	if len(method.Parameters) != 1 || method.Parameters[0].Name != "self" || method.Parameters[0].Type.Name != "Point" {
		t.Fatalf("params = %#v, want [self: Point]", method.Parameters)
	}
}

func TestClassDeclWithBase(t *testing.T) {
	prog := parseSource(t, "object Animal\n\tname: str\nobject Dog : Animal\n\tname: str\n")

	class := prog.Statements[1].(*ast.ClassDecl)
	if class.Base != "Animal" {
		t.Fatalf("base = %q, want %q", class.Base, "Animal")
	}
}
