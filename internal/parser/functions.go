package parser

import (
	"fmt"

	"github.com/oxygen-lang/oxygenc/internal/ast"
	"github.com/oxygen-lang/oxygenc/internal/grammar"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

const anonName = ""

// functionDeclaration parses `fun NAME(...)`, anonymous `fun(...)`,
// `fun operator NAME(...)` and `fun extern NAME(...)`.
func (p *Parser) functionDeclaration() (ast.Expression, error) {
	if err := p.consumeValue("fun"); err != nil {
		return nil, err
	}

	opFunc, externFunc := false, false
	var name token.Token
	switch {
	case p.current.Str() == grammar.LParen:
		name = token.Token{Value: anonName, Line: p.current.Line}
	case p.current.Str() == "operator":
		if err := p.consumeValue("operator"); err != nil {
			return nil, err
		}
		opFunc = true
		n, err := p.next()
		if err != nil {
			return nil, err
		}
		name = n
	case p.current.Str() == "extern":
		if err := p.consumeValue("extern"); err != nil {
			return nil, err
		}
		externFunc = true
		n, err := p.next()
		if err != nil {
			return nil, err
		}
		name = n
	default:
		n, err := p.next()
		if err != nil {
			return nil, err
		}
		name = n
	}

	params, defaults, varargs, err := p.parseParamList(externFunc)
	if err != nil {
		return nil, err
	}
	returnType, err := p.parseReturnArrow()
	if err != nil {
		return nil, err
	}

	if externFunc {
		return &ast.ExternFuncDecl{Name: name.Str(), ReturnType: returnType, Parameters: params, Varargs: varargs, Line: name.Line}, nil
	}

	if err := p.consumeType(token.NEWLINE); err != nil {
		return nil, err
	}
	p.indentLevel++
	body, err := p.parseCompoundStmt()
	if err != nil {
		return nil, err
	}
	p.indentLevel--

	if name.Str() == anonName {
		return &ast.AnonymousFunc{ReturnType: returnType, Parameters: params, ParameterDefaults: defaults, Varargs: varargs, Body: body, Line: name.Line}, nil
	}

	fnName := name.Str()
	if opFunc {
		if len(params) != 1 && len(params) != 2 {
			return nil, p.fail("file=%s line=%d OxygenC Error: operators can either be unary or binary", p.file, name.Line)
		}
		fnName = "operator." + fnName
		for _, param := range params {
			fnName += "." + param.Type.Name
		}
	}

	return &ast.FuncDecl{Name: fnName, ReturnType: returnType, Parameters: params, ParameterDefaults: defaults, Varargs: varargs, Body: body, Line: name.Line}, nil
}

// methodDeclaration parses a method inside a class body: same shape as
// functionDeclaration, but self is auto-prepended and the emitted name is
// mangled to ClassName.methodName.
func (p *Parser) methodDeclaration(className string) (*ast.FuncDecl, error) {
	if err := p.consumeValue("fun"); err != nil {
		return nil, err
	}
	name, err := p.next()
	if err != nil {
		return nil, err
	}

	self := &ast.Param{Name: "self", Type: &ast.TypeRef{Name: className, Line: name.Line}}
	params, defaults, varargs, err := p.parseParamList(false)
	if err != nil {
		return nil, err
	}
	params = append([]*ast.Param{self}, params...)

	returnType, err := p.parseReturnArrow()
	if err != nil {
		return nil, err
	}

	if err := p.consumeType(token.NEWLINE); err != nil {
		return nil, err
	}
	p.indentLevel++
	body, err := p.parseCompoundStmt()
	if err != nil {
		return nil, err
	}
	p.indentLevel--

	return &ast.FuncDecl{
		Name:              fmt.Sprintf("%s.%s", className, name.Str()),
		ReturnType:        returnType,
		Parameters:        params,
		ParameterDefaults: defaults,
		Varargs:           varargs,
		Body:              body,
		Line:              name.Line,
	}, nil
}

// parseParamList parses the `(...)` of a function or method declaration,
// leaving the current token just past the closing paren.
func (p *Parser) parseParamList(externFunc bool) ([]*ast.Param, *ast.OrderedMap[string, ast.Expression], *ast.Param, error) {
	if err := p.consumeValue(grammar.LParen); err != nil {
		return nil, nil, nil, err
	}

	var params []*ast.Param
	defaults := ast.NewOrderedMap[string, ast.Expression]()
	var varargs *ast.Param

	for p.current.Str() != grammar.RParen {
		paramName := p.current.Str()
		if err := p.consumeType(token.NAME); err != nil {
			return nil, nil, nil, err
		}

		var paramType *ast.TypeRef
		if p.current.Str() == grammar.Colon {
			if err := p.consumeValue(grammar.Colon); err != nil {
				return nil, nil, nil, err
			}
			t, err := p.typeSpec()
			if err != nil {
				return nil, nil, nil, err
			}
			paramType = t
		} else {
			paramType = &ast.TypeRef{Name: paramName}
		}
		param := &ast.Param{Name: paramName, Type: paramType}
		params = append(params, param)

		if p.current.Str() != grammar.RParen {
			if p.current.Str() == grammar.Assign {
				if externFunc {
					return nil, nil, nil, p.fail("file=%s line=%d OxygenC Error: extern functions cannot have defaults", p.file, p.current.Line)
				}
				if err := p.consumeValue(grammar.Assign); err != nil {
					return nil, nil, nil, err
				}
				def, err := p.parseAnyExpr()
				if err != nil {
					return nil, nil, nil, err
				}
				defaults.Set(paramName, def)
			}
			if p.current.Str() == grammar.Ellipsis {
				params = params[:len(params)-1]
				varargs = param
				if err := p.consumeValue(grammar.Ellipsis); err != nil {
					return nil, nil, nil, err
				}
				break
			}
			if p.current.Str() != grammar.RParen {
				if err := p.consumeValue(grammar.Comma); err != nil {
					return nil, nil, nil, err
				}
			}
		}
	}
	if err := p.consumeValue(grammar.RParen); err != nil {
		return nil, nil, nil, err
	}
	return params, defaults, varargs, nil
}

func (p *Parser) parseReturnArrow() (*ast.TypeRef, error) {
	if p.current.Str() != grammar.Arrow {
		return &ast.TypeRef{Name: "void"}, nil
	}
	if err := p.consumeValue(grammar.Arrow); err != nil {
		return nil, err
	}
	if p.current.Str() == "void" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.TypeRef{Name: "void"}, nil
	}
	return p.typeSpec()
}

// functionCall parses a call's argument list. print/input set func_args
// so the first `(` encountered inside their single expression argument is
// always treated as grouping, never as a tuple literal.
func (p *Parser) functionCall(tok token.Token) (ast.Expression, error) {
	switch tok.Str() {
	case "print":
		p.funcArgs = true
		value, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		return &ast.PrintStmt{Value: value, Line: tok.Line}, nil
	case "input":
		p.funcArgs = true
		value, err := p.parseAnyExpr()
		if err != nil {
			return nil, err
		}
		return &ast.InputStmt{Value: value, Line: tok.Line}, nil
	}

	if err := p.consumeValue(grammar.LParen); err != nil {
		return nil, err
	}
	args, namedArgs, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	call := &ast.FuncCall{Name: tok.Str(), Arguments: args, NamedArguments: namedArgs, Line: tok.Line}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return call, nil
}

// parseCallArgs parses a parenthesized, comma-separated argument list,
// with current positioned just after the opening `(`, splitting
// positional from name=value arguments.
func (p *Parser) parseCallArgs() ([]ast.Expression, *ast.OrderedMap[string, ast.Expression], error) {
	var args []ast.Expression
	namedArgs := ast.NewOrderedMap[string, ast.Expression]()

	for p.current.Str() != grammar.RParen {
		for p.current.Kind == token.NEWLINE {
			if err := p.consumeType(token.NEWLINE); err != nil {
				return nil, nil, err
			}
		}
		switch p.current.Str() {
		case grammar.LParen, grammar.LBracket, grammar.LBrace:
			expr, err := p.bracketLiteral()
			if err != nil {
				return nil, nil, err
			}
			args = append(args, expr)
		default:
			next, err := p.preview(1)
			if err != nil {
				return nil, nil, err
			}
			if next.Str() == grammar.Assign {
				nameExpr, err := p.parseAnyExpr()
				if err != nil {
					return nil, nil, err
				}
				name := nameExpr.TokenLiteral()
				if err := p.consumeValue(grammar.Assign); err != nil {
					return nil, nil, err
				}
				value, err := p.parseAnyExpr()
				if err != nil {
					return nil, nil, err
				}
				namedArgs.Set(name, value)
			} else {
				expr, err := p.parseAnyExpr()
				if err != nil {
					return nil, nil, err
				}
				args = append(args, expr)
			}
		}
		for p.current.Kind == token.NEWLINE {
			if err := p.consumeType(token.NEWLINE); err != nil {
				return nil, nil, err
			}
		}
		if p.current.Str() != grammar.RParen {
			if err := p.consumeValue(grammar.Comma); err != nil {
				return nil, nil, err
			}
		}
	}
	return args, namedArgs, nil
}

// parseMethodCall parses the argument list of `obj.method(...)`, with
// left already built as the DotAccess naming the object and method.
func (p *Parser) parseMethodCall(left *ast.DotAccess) (*ast.MethodCall, error) {
	args, namedArgs, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	method := &ast.MethodCall{Object: left.Object, Name: left.Field, Arguments: args, NamedArguments: namedArgs, Line: left.Line}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return method, nil
}
