package parser

import (
	"github.com/oxygen-lang/oxygenc/internal/ast"
	"github.com/oxygen-lang/oxygenc/internal/grammar"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

// parseAnyExpr is the lowest expression precedence: additive operators
// bind weakest, iterating left-associatively over parseAnyTerm.
func (p *Parser) parseAnyExpr() (ast.Expression, error) {
	node, err := p.parseAnyTerm()
	if err != nil {
		return nil, err
	}
	for p.current.Str() == grammar.Plus || p.current.Str() == grammar.Minus {
		op, err := p.next()
		if err != nil {
			return nil, err
		}
		right, err := p.parseAnyTerm()
		if err != nil {
			return nil, err
		}
		node = &ast.BinOp{Left: node, Op: op.Str(), Right: right, Line: op.Line}
	}
	return node, nil
}

// parseAnyTerm is the single flattened precedence level occupied by every
// multiplicative, cast, range, comparison, logical and bitwise operator —
// all bind at the same strength and associate left to right in one loop.
func (p *Parser) parseAnyTerm() (ast.Expression, error) {
	node, err := p.parseFactoring()
	if err != nil {
		return nil, err
	}
	for grammar.IsTermOp(p.current.Str()) {
		op, err := p.next()
		if err != nil {
			return nil, err
		}
		switch {
		case grammar.IsComparisonOp(op.Str()) || grammar.IsLogicalOp(op.Str()) || grammar.IsBinaryOp(op.Str()):
			right, err := p.parseAnyExpr()
			if err != nil {
				return nil, err
			}
			node = &ast.BinOp{Left: node, Op: op.Str(), Right: right, Line: op.Line}
		case op.Str() == grammar.Range:
			right, err := p.parseAnyExpr()
			if err != nil {
				return nil, err
			}
			node = &ast.Range{Left: node, Right: right, Line: op.Line}
		default:
			right, err := p.parseFactoring()
			if err != nil {
				return nil, err
			}
			node = &ast.BinOp{Left: node, Op: op.Str(), Right: right, Line: op.Line}
		}
	}
	return node, nil
}

// parseFactoring is the highest-precedence level: literals, unary
// operators, grouping/tuples, calls, collections and dotted access.
func (p *Parser) parseFactoring() (ast.Expression, error) {
	tok := p.current
	preview, err := p.preview(1)
	if err != nil {
		return nil, err
	}

	switch {
	case preview.Str() == grammar.Dot:
		p2, err := p.preview(2)
		if err != nil {
			return nil, err
		}
		p3, err := p.preview(3)
		if err != nil {
			return nil, err
		}
		if p2.Kind == token.NAME && p3.Str() == grammar.LParen {
			name, err := p.next()
			if err != nil {
				return nil, err
			}
			// The preview above guarantees a method call shape (NAME
			// followed by '('), never a field assignment, so this is
			// always a *ast.MethodCall underneath.
			stmt, err := p.parsePropMethod(name)
			if err != nil {
				return nil, err
			}
			expr, ok := stmt.(ast.Expression)
			if !ok {
				return nil, p.fail("file=%s line=%d OxygenC Error: field assignment cannot appear inside an expression", p.file, name.Line)
			}
			return expr, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseDotOperator(tok)

	case tok.Str() == grammar.Plus || tok.Str() == grammar.Minus || tok.Str() == grammar.OnesComplement:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseFactoring()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: tok.Str(), Expr: inner, Line: tok.Line}, nil

	case tok.Str() == grammar.Not:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: tok.Str(), Expr: inner, Line: tok.Line}, nil

	case tok.Kind == token.NUMBER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Num{Value: tok.Value, ValType: tok.NumberKind, Line: tok.Line}, nil

	case tok.Kind == token.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Str{Value: tok.Str(), Line: tok.Line}, nil

	case tok.Str() == "fun":
		return p.functionDeclaration()

	case tok.Kind == token.LTYPE:
		return p.typeSpec()

	case tok.Str() == grammar.LParen:
		return p.parseParenExpr(preview)

	case preview.Str() == grammar.LParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.functionCall(tok)

	case preview.Str() == grammar.LBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseCollectionAccess(tok)

	case tok.Str() == grammar.LBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseSquareBracketExpr(tok)

	case tok.Str() == grammar.LBrace:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseCbraceExpr(tok)

	case tok.Kind == token.NAME || tok.Str() == "self":
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, ok := p.userTypes[tok.Str()]; ok {
			return &ast.TypeRef{Name: tok.Str(), Line: tok.Line}, nil
		}
		return &ast.Var{Name: tok.Str(), Line: tok.Line}, nil

	case tok.Kind == token.CONSTANT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Constant{Name: tok.Str(), Line: tok.Line}, nil
	}

	return nil, p.fail("file=%s line=%d OxygenC Error: unexpected token %s", p.file, tok.Line, tok.Kind)
}

// parseParenExpr resolves the classic `(` ambiguity: func_args forces
// grouping (used while parsing print/input's single argument), otherwise
// parseFindUntil decides tuple vs. grouped expression by scanning ahead
// for a comma before the closing paren.
func (p *Parser) parseParenExpr(preview token.Token) (ast.Expression, error) {
	isTuple := false
	if !p.funcArgs {
		found, err := p.parseFindUntil(grammar.Comma, grammar.RParen)
		if err != nil {
			return nil, err
		}
		isTuple = found
	}

	if p.funcArgs || !isTuple {
		p.funcArgs = false
		if preview.Str() == grammar.RParen {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return nil, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		node, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consumeValue(grammar.RParen); err != nil {
			return nil, err
		}
		return node, nil
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	return p.parseTupleLiteral(tok)
}

func (p *Parser) bracketLiteral() (ast.Expression, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Str() {
	case grammar.LBrace:
		return p.parseCbraceExpr(tok)
	case grammar.LParen:
		return p.parseTupleLiteral(tok)
	}
	return p.parseSquareBracketExpr(tok)
}

// parseSquareBracketExpr handles forms that open with `[` itself: a list
// literal `[1, 2, 3]`, or `[Type]` — the reserved array-of-type-assignment
// / bracket-dict-literal forms (both NotImplemented per spec.md §9).
// Indexed access (`name[key]`) goes through parseCollectionAccess
// instead, entered from a different point in parseFactoring.
func (p *Parser) parseSquareBracketExpr(tok token.Token) (ast.Expression, error) {
	if tok.Str() != grammar.LBracket {
		return nil, p.fail("file=%s line=%d OxygenC Error: expected [", p.file, tok.Line)
	}

	if p.current.Kind == token.LTYPE {
		typeTok, err := p.next()
		if err != nil {
			return nil, err
		}
		if p.current.Str() == grammar.Comma {
			return nil, p.parseDictLiteral(tok)
		}
		if p.current.Str() == grammar.RBracket {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return p.parseCollectionLiteral(tok, typeTok)
		}
		return nil, p.fail("file=%s line=%d OxygenC Error: malformed array-of-type expression", p.file, tok.Line)
	}

	var items []ast.Expression
	for p.current.Str() != grammar.RBracket {
		item, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.current.Str() == grammar.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	if err := p.consumeValue(grammar.RBracket); err != nil {
		return nil, err
	}
	return &ast.Collection{CollectionType: "list", Items: items, Line: tok.Line}, nil
}

// parseCollectionAccess parses `name[key]`, with name already consumed
// (nameTok) and the current token positioned at `[`. A trailing
// assignment operator wraps the resulting access in Assign/OpAssign/
// IncrementAssign, the same way a dotted field access does.
func (p *Parser) parseCollectionAccess(nameTok token.Token) (ast.Expression, error) {
	if err := p.consumeValue(grammar.LBracket); err != nil {
		return nil, err
	}
	key, err := p.parseAnyExpr()
	if err != nil {
		return nil, err
	}
	if p.current.Str() == grammar.Comma {
		return p.parseSliceExpr(key)
	}
	if err := p.consumeValue(grammar.RBracket); err != nil {
		return nil, err
	}
	collection := ast.Expression(&ast.Var{Name: nameTok.Str(), Line: nameTok.Line})
	access := p.parseAccColl(collection, key)
	return p.maybeAssignTarget(access)
}

// parseSliceExpr handles `name[lo, hi]`. Slice expressions are not
// implemented, so this always reports an error.
func (p *Parser) parseSliceExpr(_ ast.Expression) (ast.Expression, error) {
	return nil, p.fail("file=%s line=%d OxygenC Error: slice expressions are not implemented", p.file, p.current.Line)
}

// maybeAssignTarget wraps a CollectionAccess in Assign/OpAssign/
// IncrementAssign when it is immediately followed by an assignment
// operator; otherwise the access itself is returned unchanged.
func (p *Parser) maybeAssignTarget(access *ast.CollectionAccess) (ast.Expression, error) {
	if !isAssignmentOp(p.current.Str()) {
		return access, nil
	}
	op, err := p.next()
	if err != nil {
		return nil, err
	}
	if grammar.IsIncrementalAssignmentOp(op.Str()) {
		return &ast.IncrementAssign{Left: access, Op: op.Str(), Line: op.Line}, nil
	}
	right, err := p.parseAnyExpr()
	if err != nil {
		return nil, err
	}
	if op.Str() == grammar.Assign {
		return &ast.Assign{Left: access, Op: op.Str(), Right: right, Line: op.Line}, nil
	}
	return &ast.OpAssign{Left: access, Op: op.Str(), Right: right, Line: op.Line}, nil
}

func (p *Parser) parseCbraceExpr(tok token.Token) (ast.Expression, error) {
	if tok.Str() != grammar.LBrace {
		return nil, p.fail("file=%s line=%d OxygenC Error: expected {", p.file, tok.Line)
	}
	var items []ast.HashMapEntry
	for p.current.Str() != grammar.RBrace {
		key, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consumeValue(grammar.Assign); err != nil {
			return nil, err
		}
		value, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, ast.HashMapEntry{Key: key, Value: value})
		if p.current.Str() == grammar.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	if err := p.consumeValue(grammar.RBrace); err != nil {
		return nil, err
	}
	return &ast.HashMap{Items: items, Line: tok.Line}, nil
}

func (p *Parser) parseTupleLiteral(tok token.Token) (ast.Expression, error) {
	if tok.Str() != grammar.LParen {
		return nil, p.fail("file=%s line=%d OxygenC Error: expected (", p.file, tok.Line)
	}
	var items []ast.Expression
	for p.current.Str() != grammar.RParen {
		item, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.current.Str() == grammar.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	if err := p.consumeValue(grammar.RParen); err != nil {
		return nil, err
	}
	return &ast.Collection{CollectionType: "tuple", Items: items, Line: tok.Line}, nil
}

// parseCollectionLiteral handles `[Type] = expr`, the "array-of-type
// assignment" form spec.md leaves unimplemented.
func (p *Parser) parseCollectionLiteral(tok, _ token.Token) (ast.Expression, error) {
	if p.current.Str() == grammar.Assign {
		return nil, p.fail("file=%s line=%d OxygenC Error: array-of-type assignment is not implemented", p.file, tok.Line)
	}
	return nil, p.fail("file=%s line=%d OxygenC Error: malformed array-of-type expression", p.file, tok.Line)
}

// parseDictLiteral handles the bracket form `[Type, ...]` of a dict
// literal, which spec.md leaves unimplemented in favor of `{k = v}`.
func (p *Parser) parseDictLiteral(tok token.Token) error {
	return p.fail("file=%s line=%d OxygenC Error: bracket-form dict literals are not implemented", p.file, tok.Line)
}

func (p *Parser) parseAccColl(collection, key ast.Expression) *ast.CollectionAccess {
	line := collection.Pos()
	return &ast.CollectionAccess{Collection: collection, Key: key, Line: line}
}

func (p *Parser) parseDotOperator(tok token.Token) (ast.Expression, error) {
	if err := p.consumeValue(grammar.Dot); err != nil {
		return nil, err
	}
	field := p.current.Str()
	if err := p.advance(); err != nil {
		return nil, err
	}
	object := ast.Expression(&ast.Var{Name: tok.Str(), Line: tok.Line})
	return &ast.DotAccess{Object: object, Field: field, Line: tok.Line}, nil
}

// isAssignmentOp is the parser-local superset consulted when deciding
// whether a NAME or access expression begins an assignment: plain `=`,
// every compound arithmetic operator, `++`/`--`, and `:` (which starts a
// typed declaration rather than a bare assignment).
func isAssignmentOp(v string) bool {
	if v == grammar.Assign || v == grammar.Colon {
		return true
	}
	return grammar.IsArithmeticAssignmentOp(v) || grammar.IsIncrementalAssignmentOp(v)
}
