package ast

import (
	"fmt"

	"github.com/oxygen-lang/oxygenc/internal/token"
)

// Constant is a named literal: true, false or null.
type Constant struct {
	Name string
	Line int
}

func (c *Constant) TokenLiteral() string { return c.Name }
func (c *Constant) Pos() int             { return c.Line }
func (c *Constant) exprNode()            {}
func (c *Constant) String() string       { return c.Name }

// Num is a numeric literal; ValType distinguishes an INT-valued Value
// (int64) from a DOUBLE-valued one (float64).
type Num struct {
	Value   any
	ValType token.NumberKind
	Line    int
}

func (n *Num) TokenLiteral() string { return fmt.Sprintf("%v", n.Value) }
func (n *Num) Pos() int             { return n.Line }
func (n *Num) exprNode()            {}
func (n *Num) String() string       { return fmt.Sprintf("%v", n.Value) }

// Str is a string literal.
type Str struct {
	Value string
	Line  int
}

func (s *Str) TokenLiteral() string { return s.Value }
func (s *Str) Pos() int             { return s.Line }
func (s *Str) exprNode()            {}
func (s *Str) String() string       { return fmt.Sprintf("%q", s.Value) }

// Collection is a list or tuple literal: `[1, 2, 3]` or `(1, 2, 3)`.
type Collection struct {
	CollectionType string // "list" or "tuple"
	ReadOnly       bool
	Items          []Expression
	Line           int
}

func (c *Collection) TokenLiteral() string { return c.CollectionType }
func (c *Collection) Pos() int             { return c.Line }
func (c *Collection) exprNode()            {}
func (c *Collection) String() string {
	open, close := "[", "]"
	if c.CollectionType == "tuple" {
		open, close = "(", ")"
	}
	return open + joinExpr(c.Items) + close
}

// HashMapEntry is one key/value pair of a hash map literal. Keys are kept
// as a slice of entries rather than a Go map, since arbitrary expression
// keys are not comparable and insertion order is observable.
type HashMapEntry struct {
	Key   Expression
	Value Expression
}

// HashMap is a `{k = v, ...}` literal.
type HashMap struct {
	Items []HashMapEntry
	Line  int
}

func (h *HashMap) TokenLiteral() string { return "{" }
func (h *HashMap) Pos() int             { return h.Line }
func (h *HashMap) exprNode()            {}
func (h *HashMap) String() string {
	out := "{"
	for i, e := range h.Items {
		if i > 0 {
			out += ", "
		}
		out += e.Key.String() + " = " + e.Value.String()
	}
	return out + "}"
}
