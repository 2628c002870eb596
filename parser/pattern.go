package parser

import (
	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
)

// parseBindingTarget parses an identifier, an array pattern or an object
// pattern
func (p *scriptParser) parseBindingTarget() (ast.Node, error) {
	token := p.peek()
	switch {
	case token.Type == tokenizer.IDENTIFIER,
		token.Type == tokenizer.KEYWORD && (token.Value == "let" || token.Value == "yield"):
		p.pos++
		return p.identifier(token), nil
	case token.Is("["):
		return p.parseArrayPattern()
	case token.Is("{"):
		return p.parseObjectPattern()
	}
	return nil, p.unexpected()
}

// parseBindingElement parses a binding target with an optional default
func (p *scriptParser) parseBindingElement() (ast.Node, error) {
	start := p.pos
	target, err := p.parseBindingTarget()
	if err != nil {
		return nil, err
	}
	if !p.eat("=") {
		return target, nil
	}
	def, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentPattern{Base: p.base(ast.KindAssignmentPattern, start), Left: target, Right: def}, nil
}

func (p *scriptParser) parseArrayPattern() (ast.Node, error) {
	start := p.pos
	p.pos++ // [

	var elements []ast.Node
	for !p.is("]") {
		if p.eof() {
			return nil, p.unexpected()
		}
		if p.eat(",") {
			elements = append(elements, nil)
			continue
		}
		element, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
		if !p.is("]") {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	p.pos++ // ]
	return &ast.ArrayPattern{Base: p.base(ast.KindArrayPattern, start), Elements: elements}, nil
}

func (p *scriptParser) parseObjectPattern() (ast.Node, error) {
	start := p.pos
	p.pos++ // {

	var properties []ast.Node
	for !p.is("}") {
		if p.eof() {
			return nil, p.unexpected()
		}
		property, err := p.parseBindingProperty()
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
		if !p.is("}") {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	p.pos++ // }
	return &ast.ObjectPattern{Base: p.base(ast.KindObjectPattern, start), Properties: properties}, nil
}

func (p *scriptParser) parseBindingProperty() (ast.Node, error) {
	start := p.pos
	if p.eat("...") {
		argument, err := p.parseBindingTarget()
		if err != nil {
			return nil, err
		}
		return &ast.RestElement{Base: p.base(ast.KindRestElement, start), Argument: argument}, nil
	}

	key, computed, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}

	if p.eat(":") {
		value, err := p.parseBindingElement()
		if err != nil {
			return nil, err
		}
		return &ast.Property{Base: p.base(ast.KindProperty, start), Key: key, Value: value, PropKind: "init", Computed: computed}, nil
	}

	ident, ok := key.(*ast.Identifier)
	if !ok || computed {
		return nil, p.unexpected()
	}
	var value ast.Node = copyIdentifier(ident)
	if p.eat("=") {
		def, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		value = &ast.AssignmentPattern{Base: p.base(ast.KindAssignmentPattern, start), Left: value, Right: def}
	}
	return &ast.Property{Base: p.base(ast.KindProperty, start), Key: key, Value: value, PropKind: "init", Shorthand: true}, nil
}

// toPattern reinterprets an expression parsed ahead of `=` or `of` as an
// assignment target. The conversion is shallow where the shapes agree.
func toPattern(n ast.Node) ast.Node {
	switch n := n.(type) {
	case *ast.ArrayExpression:
		elements := make([]ast.Node, len(n.Elements))
		for i, element := range n.Elements {
			if element != nil {
				elements[i] = toPattern(element)
			}
		}
		return &ast.ArrayPattern{Base: ast.NewBase(ast.KindArrayPattern, n.Span.Start, n.Span.End), Elements: elements}

	case *ast.ObjectExpression:
		properties := make([]ast.Node, len(n.Properties))
		for i, property := range n.Properties {
			properties[i] = toPattern(property)
		}
		return &ast.ObjectPattern{Base: ast.NewBase(ast.KindObjectPattern, n.Span.Start, n.Span.End), Properties: properties}

	case *ast.Property:
		if !n.Shorthand && n.Value != nil {
			n.Value = toPattern(n.Value)
		}
		return n

	case *ast.SpreadElement:
		return &ast.RestElement{Base: ast.NewBase(ast.KindRestElement, n.Span.Start, n.Span.End), Argument: toPattern(n.Argument)}

	case *ast.AssignmentExpression:
		if n.Operator == "=" {
			return &ast.AssignmentPattern{Base: ast.NewBase(ast.KindAssignmentPattern, n.Span.Start, n.Span.End), Left: n.Left, Right: n.Right}
		}
	}
	return n
}
