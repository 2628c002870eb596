package parser

import (
	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
)

func (p *scriptParser) parseStatement() (ast.Node, error) {
	start := p.pos
	token := p.peek()

	switch {
	case token.Is("{"):
		return p.parseBlock()
	case token.Is(";"):
		p.pos++
		return &ast.EmptyStatement{Base: p.base(ast.KindEmptyStatement, start)}, nil
	case token.Is("var"), token.Is("const"), token.Is("let") && p.startsBinding(1):
		declaration, err := p.parseVariableDeclaration()
		if err != nil {
			return nil, err
		}
		p.eat(";")
		declaration.Base = p.base(ast.KindVariableDeclaration, start)
		return declaration, nil
	case token.Is("if"):
		return p.parseIf()
	case token.Is("for"):
		return p.parseFor()
	case token.Is("while"):
		return p.parseWhile()
	case token.Is("do"):
		return p.parseDoWhile()
	case token.Is("return"), token.Is("throw"):
		return p.parseReturnOrThrow()
	case token.Is("break"), token.Is("continue"):
		return p.parseJump()
	case token.Is("try"):
		return p.parseTry()
	case token.Is("switch"):
		return p.parseSwitch()
	case token.Is("function"),
		isWord(token, "async") && p.peekAt(1).Is("function") && p.peekAt(1).Position.Line == token.End.Line:
		return p.parseFunction(ast.KindFunctionDeclaration)
	case token.Is("class"):
		return p.parseClass(ast.KindClassDeclaration)
	case token.Is("debugger"):
		p.pos++
		p.eat(";")
		return &ast.DebuggerStatement{Base: p.base(ast.KindDebuggerStatement, start)}, nil
	case token.Is("with"):
		return p.parseWith()
	case token.Type == tokenizer.IDENTIFIER && p.peekAt(1).Is(":"):
		return p.parseLabeled()
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Base: p.base(ast.KindExpressionStatement, start), Expression: expr}, nil
}

// consumeSemicolon eats a statement terminator. A missing semicolon is
// accepted before `}`, at the end of input and after a line break.
func (p *scriptParser) consumeSemicolon() error {
	if p.eat(";") || p.eof() || p.is("}") || !p.sameLine() {
		return nil
	}
	return p.unexpected()
}

// startsBinding reports whether the token n ahead begins a binding target,
// which tells `let x` from a variable named let
func (p *scriptParser) startsBinding(n int) bool {
	token := p.peekAt(n)
	return token.Type == tokenizer.IDENTIFIER || token.Is("[") || token.Is("{") ||
		(token.Type == tokenizer.KEYWORD && (token.Value == "let" || token.Value == "yield"))
}

func (p *scriptParser) parseBlock() (*ast.BlockStatement, error) {
	start := p.pos
	if err := p.expect("{"); err != nil {
		return nil, err
	}

	var body []ast.Node
	for !p.is("}") {
		if p.eof() {
			return nil, p.unexpected()
		}
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, statement)
	}
	p.pos++ // }
	return &ast.BlockStatement{Base: p.base(ast.KindBlockStatement, start), Body: body}, nil
}

// parseVariableDeclaration parses `let a = 1, b` without the terminator
func (p *scriptParser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	start := p.pos
	kind := p.next().Value

	var declarations []*ast.VariableDeclarator
	for {
		declStart := p.pos
		id, err := p.parseBindingTarget()
		if err != nil {
			return nil, err
		}

		var init ast.Node
		if p.eat("=") {
			init, err = p.parseAssign()
			if err != nil {
				return nil, err
			}
		}
		declarations = append(declarations, &ast.VariableDeclarator{
			Base: p.base(ast.KindVariableDeclarator, declStart),
			ID:   id,
			Init: init,
		})

		if !p.eat(",") {
			break
		}
	}
	return &ast.VariableDeclaration{
		Base:         p.base(ast.KindVariableDeclaration, start),
		DeclKind:     kind,
		Declarations: declarations,
	}, nil
}

// parseParenthesized parses `( expression )`
func (p *scriptParser) parseParenthesized() (ast.Node, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *scriptParser) parseIf() (ast.Node, error) {
	start := p.pos
	p.pos++ // if

	test, err := p.parseParenthesized()
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var alternate ast.Node
	if p.eat("else") {
		alternate, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStatement{Base: p.base(ast.KindIfStatement, start), Test: test, Consequent: consequent, Alternate: alternate}, nil
}

func (p *scriptParser) parseFor() (ast.Node, error) {
	start := p.pos
	p.pos++ // for

	await := false
	if p.isWord("await") {
		await = true
		p.pos++
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}

	var init ast.Node
	var err error
	p.noIn = true
	switch {
	case p.is(";"):
	case p.is("var"), p.is("const"), p.is("let") && p.startsBinding(1):
		init, err = p.parseVariableDeclaration()
	default:
		init, err = p.parseExpression()
	}
	p.noIn = false
	if err != nil {
		return nil, err
	}

	if init != nil && (p.is("in") || p.isWord("of")) {
		of := p.next().Value == "of"
		if _, ok := init.(*ast.VariableDeclaration); !ok {
			init = toPattern(init)
		}

		var right ast.Node
		if of {
			right, err = p.parseAssign()
		} else {
			right, err = p.parseExpression()
		}
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		if of {
			return &ast.ForOfStatement{Base: p.base(ast.KindForOfStatement, start), Left: init, Right: right, Body: body, Await: await}, nil
		}
		return &ast.ForInStatement{Base: p.base(ast.KindForInStatement, start), Left: init, Right: right, Body: body}, nil
	}

	if err := p.expect(";"); err != nil {
		return nil, err
	}
	var test, update ast.Node
	if !p.is(";") {
		if test, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	if !p.is(")") {
		if update, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Base: p.base(ast.KindForStatement, start), Init: init, Test: test, Update: update, Body: body}, nil
}

func (p *scriptParser) parseWhile() (ast.Node, error) {
	start := p.pos
	p.pos++ // while

	test, err := p.parseParenthesized()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Base: p.base(ast.KindWhileStatement, start), Test: test, Body: body}, nil
}

func (p *scriptParser) parseDoWhile() (ast.Node, error) {
	start := p.pos
	p.pos++ // do

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expect("while"); err != nil {
		return nil, err
	}
	test, err := p.parseParenthesized()
	if err != nil {
		return nil, err
	}
	p.eat(";")
	return &ast.DoWhileStatement{Base: p.base(ast.KindDoWhileStatement, start), Body: body, Test: test}, nil
}

func (p *scriptParser) parseWith() (ast.Node, error) {
	start := p.pos
	p.pos++ // with

	object, err := p.parseParenthesized()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WithStatement{Base: p.base(ast.KindWithStatement, start), Object: object, Body: body}, nil
}

func (p *scriptParser) parseReturnOrThrow() (ast.Node, error) {
	start := p.pos
	keyword := p.next().Value

	var argument ast.Node
	if p.sameLine() && !p.is(";") && !p.is("}") {
		var err error
		argument, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}

	if keyword == "throw" {
		return &ast.ThrowStatement{Base: p.base(ast.KindThrowStatement, start), Argument: argument}, nil
	}
	return &ast.ReturnStatement{Base: p.base(ast.KindReturnStatement, start), Argument: argument}, nil
}

func (p *scriptParser) parseJump() (ast.Node, error) {
	start := p.pos
	keyword := p.next().Value

	var label ast.Node
	if token := p.peek(); token.Type == tokenizer.IDENTIFIER && p.sameLine() {
		p.pos++
		label = p.identifier(token)
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}

	if keyword == "continue" {
		return &ast.ContinueStatement{Base: p.base(ast.KindContinueStatement, start), Label: label}, nil
	}
	return &ast.BreakStatement{Base: p.base(ast.KindBreakStatement, start), Label: label}, nil
}

func (p *scriptParser) parseLabeled() (ast.Node, error) {
	start := p.pos
	label := p.identifier(p.next())
	p.pos++ // :

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.LabeledStatement{Base: p.base(ast.KindLabeledStatement, start), Label: label, Body: body}, nil
}

func (p *scriptParser) parseTry() (ast.Node, error) {
	start := p.pos
	p.pos++ // try

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	statement := &ast.TryStatement{Block: block}

	if p.is("catch") {
		catchStart := p.pos
		p.pos++
		clause := &ast.CatchClause{}
		if p.eat("(") {
			param, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}
			clause.Param = param
			if err := p.expect(")"); err != nil {
				return nil, err
			}
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		clause.Body = body
		clause.Base = p.base(ast.KindCatchClause, catchStart)
		statement.Handler = clause
	}

	if p.eat("finally") {
		finalizer, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		statement.Finalizer = finalizer
	}

	if statement.Handler == nil && statement.Finalizer == nil {
		return nil, p.unexpected()
	}
	statement.Base = p.base(ast.KindTryStatement, start)
	return statement, nil
}

func (p *scriptParser) parseSwitch() (ast.Node, error) {
	start := p.pos
	p.pos++ // switch

	discriminant, err := p.parseParenthesized()
	if err != nil {
		return nil, err
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}

	var cases []*ast.SwitchCase
	for !p.is("}") {
		caseStart := p.pos
		var test ast.Node
		switch {
		case p.eat("case"):
			test, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		case p.eat("default"):
		default:
			return nil, p.unexpected()
		}
		if err := p.expect(":"); err != nil {
			return nil, err
		}

		var consequent []ast.Node
		for !p.is("case") && !p.is("default") && !p.is("}") {
			if p.eof() {
				return nil, p.unexpected()
			}
			statement, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			consequent = append(consequent, statement)
		}
		cases = append(cases, &ast.SwitchCase{Base: p.base(ast.KindSwitchCase, caseStart), Test: test, Consequent: consequent})
	}
	p.pos++ // }
	return &ast.SwitchStatement{Base: p.base(ast.KindSwitchStatement, start), Discriminant: discriminant, Cases: cases}, nil
}
