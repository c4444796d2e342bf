package parser

import (
	"github.com/oxygen-lang/oxygenc/internal/ast"
	"github.com/oxygen-lang/oxygenc/internal/grammar"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

// parseIfExpr parses an if/else-if/else chain into one IfExpr, matching
// arms up by position: Comparisons[i] pairs with Blocks[i], with an
// ElseExpr standing in for the (condition-less) else arm.
func (p *Parser) parseIfExpr() (*ast.IfExpr, error) {
	p.indentLevel++
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseAnyExpr()
	if err != nil {
		return nil, err
	}
	block, err := p.parseCompoundStmt()
	if err != nil {
		return nil, err
	}
	comp := &ast.IfExpr{
		Op:          tok.Str(),
		Comparisons: []ast.Expression{cond},
		Blocks:      []*ast.Compound{block},
		IndentLevel: tok.IndentLevel,
		Line:        tok.Line,
	}

	if p.current.IndentLevel < comp.IndentLevel {
		p.indentLevel--
		return comp, nil
	}

	for p.current.Str() == "else if" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elifCond, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		comp.Comparisons = append(comp.Comparisons, elifCond)
		elifBlock, err := p.parseCompoundStmt()
		if err != nil {
			return nil, err
		}
		comp.Blocks = append(comp.Blocks, elifBlock)
	}
	if p.current.Str() == "else" {
		elseLine := p.current.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		comp.Comparisons = append(comp.Comparisons, &ast.ElseExpr{Line: elseLine})
		elseBlock, err := p.parseCompoundStmt()
		if err != nil {
			return nil, err
		}
		comp.Blocks = append(comp.Blocks, elseBlock)
	}

	p.indentLevel--
	return comp, nil
}

func (p *Parser) parseWhileExpr() (*ast.WhileExpr, error) {
	p.indentLevel++
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseAnyExpr()
	if err != nil {
		return nil, err
	}
	block, err := p.parseLoopBlock()
	if err != nil {
		return nil, err
	}
	p.indentLevel--
	return &ast.WhileExpr{Op: tok.Str(), Comparison: cond, Block: block, Line: tok.Line}, nil
}

// parseForStmt parses `for <elements> in <iterator>`, where elements is
// one or more comma-separated loop variables (`for v in xs`,
// `for i, v in xs`, ...).
func (p *Parser) parseForStmt() (*ast.ForExpr, error) {
	p.indentLevel++
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	var elements []ast.Expression
	for p.current.Str() != grammar.In {
		elem, err := p.parseFactoring()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
		if p.current.Str() == grammar.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.consumeValue(grammar.In); err != nil {
		return nil, err
	}
	iterator, err := p.parseAnyExpr()
	if err != nil {
		return nil, err
	}
	if p.current.Kind == token.NEWLINE {
		if err := p.consumeType(token.NEWLINE); err != nil {
			return nil, err
		}
	}
	block, err := p.parseLoopBlock()
	if err != nil {
		return nil, err
	}
	p.indentLevel--
	return &ast.ForExpr{Iterator: iterator, Elements: elements, Block: block, Line: tok.Line}, nil
}

func (p *Parser) parseSwitchStmt() (*ast.SwitchStmt, error) {
	p.indentLevel++
	line := p.current.Line
	value, err := p.parseAnyExpr()
	if err != nil {
		return nil, err
	}
	switchStmt := &ast.SwitchStmt{Value: value, Line: line}

	if p.current.Kind == token.NEWLINE {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	for {
		ok, err := p.parseHandleIndents()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		caseStmt, err := p.caseStatement()
		if err != nil {
			return nil, err
		}
		switchStmt.Cases = append(switchStmt.Cases, caseStmt)
		if p.current.Kind == token.NEWLINE {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else if p.current.Kind == token.EOF {
			return switchStmt, nil
		}
	}
	p.indentLevel--
	return switchStmt, nil
}

// caseStatement parses one `case <expr>` or `default` arm. A nil Value
// marks the default arm.
func (p *Parser) caseStatement() (*ast.CaseStmt, error) {
	p.indentLevel++
	line := p.current.Line
	var value ast.Expression
	switch p.current.Str() {
	case "case":
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		value = v
	case "default":
		if err := p.advance(); err != nil {
			return nil, err
		}
	default:
		return nil, p.fail("file=%s line=%d OxygenC Error: expected case or default", p.file, line)
	}
	block, err := p.parseCompoundStmt()
	if err != nil {
		return nil, err
	}
	p.indentLevel--
	return &ast.CaseStmt{Value: value, Block: block, Line: line}, nil
}
