package ast

import "fmt"

// BinOp is a binary operator expression. Oxygen's grammar parses every
// multiplicative, comparison, logical and bitwise operator at one flat
// precedence level (see the parser's parseAnyTerm), so BinOp does not
// itself encode precedence — the parse tree's shape already does.
type BinOp struct {
	Left  Expression
	Op    string
	Right Expression
	Line  int
}

func (b *BinOp) TokenLiteral() string { return b.Op }
func (b *BinOp) Pos() int             { return b.Line }
func (b *BinOp) exprNode()            {}
func (b *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

// UnaryOp is a prefix operator: +, -, ~ (ones' complement) or not.
type UnaryOp struct {
	Op   string
	Expr Expression
	Line int
}

func (u *UnaryOp) TokenLiteral() string { return u.Op }
func (u *UnaryOp) Pos() int             { return u.Line }
func (u *UnaryOp) exprNode()            {}
func (u *UnaryOp) String() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Expr.String())
}

// Range is `left..right`.
type Range struct {
	Left  Expression
	Right Expression
	Line  int
}

func (r *Range) TokenLiteral() string { return ".." }
func (r *Range) Pos() int             { return r.Line }
func (r *Range) exprNode()            {}
func (r *Range) String() string {
	return fmt.Sprintf("%s..%s", r.Left.String(), r.Right.String())
}

// CollectionAccess is `collection[key]`. It can stand alone as a
// statement (evaluated for side effects, as through an overloaded
// accessor) as well as nest inside a larger expression, so it implements
// both Statement and Expression.
type CollectionAccess struct {
	Collection Expression
	Key        Expression
	Line       int
}

func (c *CollectionAccess) TokenLiteral() string { return "[" }
func (c *CollectionAccess) Pos() int             { return c.Line }
func (c *CollectionAccess) exprNode()            {}
func (c *CollectionAccess) stmtNode()            {}
func (c *CollectionAccess) String() string {
	return fmt.Sprintf("%s[%s]", c.Collection.String(), c.Key.String())
}

// DotAccess is `object.field`.
type DotAccess struct {
	Object Expression
	Field  string
	Line   int
}

func (d *DotAccess) TokenLiteral() string { return "." }
func (d *DotAccess) Pos() int             { return d.Line }
func (d *DotAccess) exprNode()            {}
func (d *DotAccess) String() string {
	return fmt.Sprintf("%s.%s", d.Object.String(), d.Field)
}
