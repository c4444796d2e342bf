package parser

import (
	"github.com/oxygen-lang/oxygenc/internal/ast"
	"github.com/oxygen-lang/oxygenc/internal/grammar"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

// typeSpec parses a type reference: a plain built-in LTYPE, a user-declared
// name previously registered in the user-type table, or either
// parameterized with `<...>` (list<int>, func<int, int> -> int).
func (p *Parser) typeSpec() (*ast.TypeRef, error) {
	tok := p.current
	line := tok.Line

	if _, ok := p.userTypes[tok.Str()]; ok {
		if err := p.consumeType(token.NAME); err != nil {
			return nil, err
		}
		return &ast.TypeRef{Name: tok.Str(), Line: line}, nil
	}

	if err := p.consumeType(token.LTYPE); err != nil {
		return nil, err
	}
	ref := &ast.TypeRef{Name: tok.Str(), Line: line}

	if p.current.Str() != "<" {
		return ref, nil
	}
	switch tok.Str() {
	case "list", "tuple", "dict", "func":
	default:
		return ref, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	var params []*ast.TypeRef
	for p.current.Str() != ">" {
		param, err := p.typeSpec()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.current.Str() != ">" {
			if err := p.consumeValue(grammar.Comma); err != nil {
				return nil, err
			}
		}
	}
	if err := p.consumeValue(">"); err != nil {
		return nil, err
	}
	ref.Params = params

	if tok.Str() == "func" {
		if p.current.Str() == grammar.Arrow {
			if err := p.advance(); err != nil {
				return nil, err
			}
			ret, err := p.typeSpec()
			if err != nil {
				return nil, err
			}
			ref.Return = ret
		} else {
			ref.Return = &ast.TypeRef{Name: "void", Line: line}
		}
	}
	return ref, nil
}

func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	name := p.current
	line := name.Line
	if err := p.consumeType(token.NAME); err != nil {
		return nil, err
	}
	if err := p.consumeValue(grammar.Colon); err != nil {
		return nil, err
	}
	typeNode, err := p.typeSpec()
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name.Str(), TypeNode: typeNode, Line: line}, nil
}

// parseVarAssignment attaches an `= expr` initializer to a freshly parsed
// VarDecl, wrapping both in an Assign node so initialization reuses the
// same node shape as a plain assignment.
func (p *Parser) parseVarAssignment(decl *ast.VarDecl) (*ast.Assign, error) {
	op, err := p.next()
	if err != nil {
		return nil, err
	}
	value, err := p.parseAnyExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Left: decl, Op: op.Str(), Right: value, Line: decl.Line}, nil
}

// parseVarDeclStmt is the NAME ':' statement production: a bare VarDecl,
// or an Assign wrapping it when an initializer follows.
func (p *Parser) parseVarDeclStmt() (ast.Statement, error) {
	decl, err := p.parseVarDecl()
	if err != nil {
		return nil, err
	}
	if p.current.Str() == grammar.Assign {
		return p.parseVarAssignment(decl)
	}
	return decl, nil
}

func (p *Parser) parseTypeDecl() (*ast.TypeDecl, error) {
	if err := p.consumeValue("type"); err != nil {
		return nil, err
	}
	name, err := p.next()
	if err != nil {
		return nil, err
	}
	p.userTypes[name.Str()] = struct{}{}
	if err := p.consumeValue(grammar.Assign); err != nil {
		return nil, err
	}
	collection, err := p.typeSpec()
	if err != nil {
		return nil, err
	}
	return &ast.TypeDecl{Name: name.Str(), Collection: collection, Line: name.Line}, nil
}

func (p *Parser) parseEnumDecl() (*ast.EnumDecl, error) {
	if err := p.consumeValue("enum"); err != nil {
		return nil, err
	}
	name, err := p.next()
	if err != nil {
		return nil, err
	}
	p.userTypes[name.Str()] = struct{}{}
	if err := p.consumeType(token.NEWLINE); err != nil {
		return nil, err
	}

	p.indentLevel++
	var fields []string
	for p.current.IndentLevel > name.IndentLevel {
		field, err := p.next()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field.Str())
		if err := p.consumeType(token.NEWLINE); err != nil {
			return nil, err
		}
	}
	p.indentLevel--

	return &ast.EnumDecl{Name: name.Str(), Fields: fields, Line: name.Line}, nil
}

func (p *Parser) parseStructDecl() (*ast.StructDecl, error) {
	if err := p.consumeValue("struct"); err != nil {
		return nil, err
	}
	name, err := p.next()
	if err != nil {
		return nil, err
	}
	p.userTypes[name.Str()] = struct{}{}
	if err := p.consumeType(token.NEWLINE); err != nil {
		return nil, err
	}

	p.indentLevel++
	fields := ast.NewOrderedMap[string, *ast.TypeRef]()
	defaults := ast.NewOrderedMap[string, ast.Expression]()
	for p.current.IndentLevel > name.IndentLevel {
		field, err := p.next()
		if err != nil {
			return nil, err
		}
		if err := p.consumeValue(grammar.Colon); err != nil {
			return nil, err
		}
		fieldType, err := p.typeSpec()
		if err != nil {
			return nil, err
		}
		fields.Set(field.Str(), fieldType)

		if p.current.Str() == grammar.Assign {
			if err := p.consumeValue(grammar.Assign); err != nil {
				return nil, err
			}
			value, err := p.parseAnyExpr()
			if err != nil {
				return nil, err
			}
			defaults.Set(field.Str(), value)
		}
		if err := p.consumeType(token.NEWLINE); err != nil {
			return nil, err
		}
	}
	p.indentLevel--

	return &ast.StructDecl{Name: name.Str(), Fields: fields, Defaults: defaults, Line: name.Line}, nil
}

func (p *Parser) parseClassDecl() (*ast.ClassDecl, error) {
	if err := p.advance(); err != nil { // consume 'object'
		return nil, err
	}
	className := p.current
	p.userTypes[className.Str()] = struct{}{}
	if err := p.consumeType(token.NAME); err != nil {
		return nil, err
	}

	var base string
	if p.current.Str() == grammar.Colon {
		if err := p.consumeValue(grammar.Colon); err != nil {
			return nil, err
		}
		baseType, err := p.typeSpec()
		if err != nil {
			return nil, err
		}
		base = baseType.Name
	}
	if err := p.consumeType(token.NEWLINE); err != nil {
		return nil, err
	}

	p.indentLevel++
	fields := ast.NewOrderedMap[string, *ast.TypeRef]()
	instanceFields := ast.NewOrderedMap[string, ast.Expression]()
	var methods []*ast.FuncDecl
	for {
		ok, err := p.parseHandleIndents()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if p.current.Kind == token.NEWLINE {
			if err := p.consumeType(token.NEWLINE); err != nil {
				return nil, err
			}
			continue
		}
		next, err := p.preview(1)
		if err != nil {
			return nil, err
		}
		if p.current.Kind == token.NAME && next.Str() == grammar.Colon {
			field := p.current
			if err := p.consumeType(token.NAME); err != nil {
				return nil, err
			}
			if err := p.consumeValue(grammar.Colon); err != nil {
				return nil, err
			}
			fieldType, err := p.typeSpec()
			if err != nil {
				return nil, err
			}
			fields.Set(field.Str(), fieldType)
			if err := p.consumeType(token.NEWLINE); err != nil {
				return nil, err
			}
			continue
		}
		if p.current.Str() == "fun" {
			method, err := p.methodDeclaration(className.Str())
			if err != nil {
				return nil, err
			}
			methods = append(methods, method)
		}
	}
	p.indentLevel--

	return &ast.ClassDecl{Name: className.Str(), Base: base, Methods: methods, Fields: fields, InstanceFields: instanceFields, Line: className.Line}, nil
}
