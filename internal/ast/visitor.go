package ast

// Visitor is implemented by AST traversal consumers. Visit is called once
// per node in depth-first order; returning nil skips that node's
// children, returning a (possibly different) Visitor continues descent
// into them with that visitor. Walk and the per-node walk functions that
// drive it are generated by cmd/gen-visitor — see visitor_generated.go.
type Visitor interface {
	Visit(node Node) Visitor
}
