package ast

import "testing"

type countingVisitor struct {
	count int
}

func (c *countingVisitor) Visit(node Node) Visitor {
	c.count++
	return c
}

func TestWalkVisitsEveryNode(t *testing.T) {
	prog := &Program{Compound{Statements: []Statement{
		&VarDecl{Name: "x", TypeNode: &TypeRef{Name: "int"}, Value: &Num{Value: int64(1)}},
		&IfExpr{
			Comparisons: []Expression{&BinOp{Left: &Var{Name: "x"}, Op: ">", Right: &Num{Value: int64(0)}}},
			Blocks:      []*Compound{{Statements: []Statement{&PrintStmt{Value: &Var{Name: "x"}}}}},
		},
	}}}

	c := &countingVisitor{}
	Walk(c, prog)

	// Program, VarDecl, TypeRef, Num, IfExpr, BinOp, Var, Num, Compound, PrintStmt, Var = 11
	if c.count != 11 {
		t.Fatalf("visited %d nodes, want 11", c.count)
	}
}

func TestWalkSkipsChildrenWhenVisitReturnsNil(t *testing.T) {
	prog := &Program{Compound{Statements: []Statement{
		&PrintStmt{Value: &Var{Name: "x"}},
	}}}

	var visited []Node
	v := visitFunc(func(node Node) Visitor {
		visited = append(visited, node)
		if _, ok := node.(*PrintStmt); ok {
			return nil
		}
		return visitFunc(func(n Node) Visitor {
			visited = append(visited, n)
			return nil
		})
	})
	Walk(v, prog)

	for _, n := range visited {
		if _, ok := n.(*Var); ok {
			t.Fatalf("Var should not have been visited once PrintStmt's children were skipped")
		}
	}
}

type visitFunc func(Node) Visitor

func (f visitFunc) Visit(node Node) Visitor { return f(node) }
