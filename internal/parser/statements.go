package parser

import (
	"github.com/oxygen-lang/oxygenc/internal/ast"
	"github.com/oxygen-lang/oxygenc/internal/grammar"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

// parseCompoundStmt parses a full statement block: the block-opening
// production (if/while/for/fun/...) has already advanced indentLevel
// before calling this, and parseStmtList stops as soon as a line's
// indent no longer matches.
func (p *Parser) parseCompoundStmt() (*ast.Compound, error) {
	stmts, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	return &ast.Compound{Statements: stmts}, nil
}

func (p *Parser) parseStmtList() ([]ast.Statement, error) {
	node, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	if p.current.Kind == token.NEWLINE {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, ok := node.(*ast.Return); ok {
		return []ast.Statement{node}, nil
	}

	var results []ast.Statement
	if node != nil {
		results = append(results, node)
	}
	for {
		ok, err := p.parseHandleIndents()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		next, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if p.current.Kind == token.NEWLINE {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else if p.current.Kind == token.EOF {
			if next != nil {
				results = append(results, next)
			}
			break
		}
		if next != nil {
			results = append(results, next)
		}
	}
	return results, nil
}

// parseStmt dispatches on the current token's value/kind to the right
// statement production. A token that starts none of these falls through
// to being skipped and re-dispatched, mirroring how the original parser
// tolerates stray tokens between statements.
func (p *Parser) parseStmt() (ast.Statement, error) {
	switch {
	case p.current.Str() == "if":
		return p.parseIfExpr()
	case p.current.Str() == "while":
		return p.parseWhileExpr()
	case p.current.Str() == "for":
		return p.parseForStmt()
	case p.current.Str() == "fallthrough":
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		return &ast.FallthroughStmt{Line: tok.Line}, nil
	case p.current.Str() == "break":
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		return &ast.BreakStmt{Line: tok.Line}, nil
	case p.current.Str() == "continue":
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{Line: tok.Line}, nil
	case p.current.Str() == "pass":
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		return &ast.Pass{Line: tok.Line}, nil
	case p.current.Str() == "const":
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.next()
		if err != nil {
			return nil, err
		}
		return p.parseAssignStmt(name, true)
	case p.current.Str() == "defer":
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		inner, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		return &ast.DeferStmt{Statement: inner, Line: tok.Line}, nil
	case p.current.Str() == "switch":
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseSwitchStmt()
	case p.current.Str() == "return":
		return p.parseReturnStatement()
	case p.current.Str() == "print" || p.current.Str() == "input":
		return p.parseNameStmt()
	case p.current.Kind == token.NAME || p.current.Str() == "self":
		preview, err := p.preview(1)
		if err != nil {
			return nil, err
		}
		switch preview.Str() {
		case grammar.Dot:
			name, err := p.next()
			if err != nil {
				return nil, err
			}
			return p.parsePropMethod(name)
		case grammar.Colon:
			return p.parseVarDeclStmt()
		default:
			return p.parseNameStmt()
		}
	case p.current.Str() == "fun":
		line := p.current.Line
		decl, err := p.functionDeclaration()
		if err != nil {
			return nil, err
		}
		stmt, ok := decl.(ast.Statement)
		if !ok {
			return nil, p.fail("file=%s line=%d OxygenC Error: anonymous functions cannot appear as a statement", p.file, line)
		}
		return stmt, nil
	case p.current.Str() == "type":
		return p.parseTypeDecl()
	case p.current.Str() == "struct":
		return p.parseStructDecl()
	case p.current.Str() == "object":
		return p.parseClassDecl()
	case p.current.Str() == "enum":
		return p.parseEnumDecl()
	case p.current.Kind == token.EOF:
		return nil, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseStmt()
}

// parseNameStmt parses a bare-name statement: a call, an indexed access
// (possibly an assignment target), or a plain assignment.
func (p *Parser) parseNameStmt() (ast.Statement, error) {
	name, err := p.next()
	if err != nil {
		return nil, err
	}
	switch {
	case p.current.Str() == grammar.LParen:
		expr, err := p.functionCall(name)
		if err != nil {
			return nil, err
		}
		return expr.(ast.Statement), nil
	case p.current.Str() == grammar.LBracket:
		expr, err := p.parseCollectionAccess(name)
		if err != nil {
			return nil, err
		}
		return expr.(ast.Statement), nil
	case isAssignmentOp(p.current.Str()):
		return p.parseAssignStmt(name, false)
	}
	return nil, p.fail("file=%s line=%d OxygenC Error: unexpected token after name %s", p.file, name.Line, name.Str())
}

// parsePropMethod parses `obj.field`, continuing into either a method
// call or a field assignment depending on what follows.
func (p *Parser) parsePropMethod(obj token.Token) (ast.Statement, error) {
	if err := p.consumeValue(grammar.Dot); err != nil {
		return nil, err
	}
	field := p.current.Str()
	if err := p.advance(); err != nil {
		return nil, err
	}
	left := &ast.DotAccess{Object: &ast.Var{Name: obj.Str(), Line: obj.Line}, Field: field, Line: obj.Line}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if isAssignmentOp(tok.Str()) {
		return p.parseFieldAssign(tok, left)
	}
	return p.parseMethodCall(left)
}

func (p *Parser) parseFieldAssign(op token.Token, left *ast.DotAccess) (ast.Statement, error) {
	switch {
	case op.Str() == grammar.Assign:
		right, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Left: left, Op: op.Str(), Right: right, Line: op.Line}, nil
	case grammar.IsArithmeticAssignmentOp(op.Str()):
		right, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		return &ast.OpAssign{Left: left, Op: op.Str(), Right: right, Line: op.Line}, nil
	case grammar.IsIncrementalAssignmentOp(op.Str()):
		return &ast.IncrementAssign{Left: left, Op: op.Str(), Line: op.Line}, nil
	}
	return nil, p.fail("file=%s line=%d OxygenC Error: unknown assignment operator %s", p.file, op.Line, op.Str())
}

// parseAssignStmt parses `name = expr`, `name += expr`, `name++`/`name--`,
// and `name: Type [= expr]`. name has already been consumed (readOnly set
// by the caller for the `const` form) and p.current is the operator.
func (p *Parser) parseAssignStmt(name token.Token, readOnly bool) (ast.Statement, error) {
	left := &ast.Var{Name: name.Str(), ReadOnly: readOnly, Line: name.Line}
	op, err := p.next()
	if err != nil {
		return nil, err
	}
	switch {
	case op.Str() == grammar.Assign:
		right, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Left: left, Op: op.Str(), Right: right, Line: op.Line}, nil
	case grammar.IsArithmeticAssignmentOp(op.Str()):
		right, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		return &ast.OpAssign{Left: left, Op: op.Str(), Right: right, Line: op.Line}, nil
	case grammar.IsIncrementalAssignmentOp(op.Str()):
		return &ast.IncrementAssign{Left: left, Op: op.Str(), Line: op.Line}, nil
	case op.Str() == grammar.Colon:
		typeNode, err := p.typeSpec()
		if err != nil {
			return nil, err
		}
		decl := &ast.VarDecl{Name: left.Name, TypeNode: typeNode, ReadOnly: readOnly, Line: op.Line}
		if p.current.Str() == grammar.Assign {
			return p.parseVarAssignment(decl)
		}
		return decl, nil
	}
	return nil, p.fail("file=%s line=%d OxygenC Error: unknown assignment operator %s", p.file, op.Line, op.Str())
}

func (p *Parser) parseReturnStatement() (*ast.Return, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	value, err := p.parseAnyExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Value: value, Line: tok.Line}, nil
}

// parseLoopBlock is identical to parseCompoundStmt in shape but produces
// a LoopBlock node so break/continue/fallthrough resolve against the
// nearest enclosing loop rather than an if/switch body.
func (p *Parser) parseLoopBlock() (*ast.LoopBlock, error) {
	stmts, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	return &ast.LoopBlock{Statements: stmts}, nil
}
