package parser

import (
	"fmt"
	"strings"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
)

// parseDirectiveKey splits a directive name such as v-on:click.stop or
// @click into its parts
func parseDirectiveKey(token tokenizer.Token) *ast.VDirectiveKey {
	key := &ast.VDirectiveKey{Base: ast.NewBase(ast.KindVDirectiveKey, token.Position.Offset, token.End.Offset)}
	raw := token.Value

	var rest string
	switch {
	case strings.HasPrefix(raw, ":"):
		key.Name, key.Shorthand, rest = "bind", true, raw[1:]
	case strings.HasPrefix(raw, "@"):
		key.Name, key.Shorthand, rest = "on", true, raw[1:]
	case strings.HasPrefix(raw, "#"):
		key.Name, key.Shorthand, rest = "slot", true, raw[1:]
	default:
		name := strings.TrimPrefix(raw, "v-")
		end := strings.IndexAny(name, ":.")
		if end < 0 {
			key.Name = tokenizer.FoldName(name)
			return key
		}
		key.Name = tokenizer.FoldName(name[:end])
		rest = name[end:]
		if rest[0] == ':' {
			rest = rest[1:]
		}
	}

	// a dynamic argument [expr] may contain dots
	argEnd := strings.IndexByte(rest, '.')
	if strings.HasPrefix(rest, "[") {
		if closing := strings.IndexByte(rest, ']'); closing >= 0 {
			argEnd = strings.IndexByte(rest[closing:], '.')
			if argEnd >= 0 {
				argEnd += closing
			}
		}
	}
	if argEnd < 0 {
		key.Argument = rest
		return key
	}
	key.Argument = rest[:argEnd]
	key.Modifiers = strings.Split(rest[argEnd+1:], ".")
	return key
}

// parseDirectiveValue parses the script tokens of a directive value or an
// interpolation according to the directive name. An empty value yields nil.
func parseDirectiveValue(name string, tokens []tokenizer.Token) (ast.Node, error) {
	for _, token := range tokens {
		if token.Type == tokenizer.HTML_TEXT {
			return nil, fmt.Errorf("%w at line %d, column %d", ErrScriptTokens, token.Position.Line, token.Position.Column)
		}
	}
	p := newScriptParser(tokens)
	if p.eof() {
		return nil, nil
	}

	switch name {
	case "for":
		return parseVFor(tokens)
	case "on":
		return parseVOn(tokens)
	case "slot", "slot-scope", "scope":
		return parseSlotScope(p)
	}
	return p.parseExpressionAll()
}

func toParserTokens(tokens []tokenizer.Token) []pc.Token[tokenizer.Token] {
	results := make([]pc.Token[tokenizer.Token], 0, len(tokens))
	for _, token := range tokens {
		if token.IsComment() {
			continue
		}
		results = append(results, pc.Token[tokenizer.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		})
	}
	return results
}

func fromParserTokens(tokens []pc.Token[tokenizer.Token]) []tokenizer.Token {
	results := make([]tokenizer.Token, 0, len(tokens))
	for _, token := range tokens {
		results = append(results, token.Val)
	}
	return results
}

// inOrOf matches the `in` or `of` separator of a v-for expression
func inOrOf(pctx *pc.ParseContext[tokenizer.Token], tokens []pc.Token[tokenizer.Token]) (int, []pc.Token[tokenizer.Token], error) {
	if len(tokens) > 0 && (tokens[0].Val.Is("in") || isWord(tokens[0].Val, "of")) {
		return 1, tokens[:1], nil
	}
	return 0, nil, pc.ErrNotMatch
}

// parseVFor parses `alias in expression` where alias is a binding or a
// parenthesized list of bindings
func parseVFor(tokens []tokenizer.Token) (ast.Node, error) {
	pctx := pc.NewParseContext[tokenizer.Token]()
	left, _, _, right, found := pc.Find(pctx, inOrOf, toParserTokens(tokens))
	if !found || len(right) == 0 {
		return nil, ErrInvalidVFor
	}

	aliases := fromParserTokens(left)
	if len(aliases) >= 2 && aliases[0].Is("(") && aliases[len(aliases)-1].Is(")") {
		aliases = aliases[1 : len(aliases)-1]
	}

	var params []ast.Node
	p := newScriptParser(aliases)
	for !p.eof() {
		if p.eat(",") {
			continue
		}
		param, err := p.parseBindingElement()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}

	rp := newScriptParser(fromParserTokens(right))
	iterable, err := rp.parseExpressionAll()
	if err != nil {
		return nil, err
	}

	start := tokens[0].Position.Offset
	if len(left) > 0 {
		start = left[0].Val.Position.Offset
	}
	return &ast.VForExpression{
		Base:  ast.NewBase(ast.KindVForExpression, start, right[len(right)-1].Val.End.Offset),
		Left:  params,
		Right: iterable,
	}, nil
}

// parseVOn parses a handler. A bare function reference or an inline
// function is kept as an expression; anything else is a statement list.
func parseVOn(tokens []tokenizer.Token) (ast.Node, error) {
	p := newScriptParser(tokens)
	if expr, err := p.parseExpressionAll(); err == nil {
		switch expr.Kind() {
		case ast.KindIdentifier, ast.KindMemberExpression,
			ast.KindFunctionExpression, ast.KindArrowFunctionExpression:
			return expr, nil
		}
	}

	p = newScriptParser(tokens)
	body, err := p.parseStatementsAll()
	if err != nil {
		return nil, err
	}
	return &ast.VOnExpression{
		Base: ast.NewBase(ast.KindVOnExpression, p.tokens[0].Position.Offset, p.tokens[len(p.tokens)-1].End.Offset),
		Body: body,
	}, nil
}

// parseSlotScope parses the parameter list of a scoped slot
func parseSlotScope(p *scriptParser) (ast.Node, error) {
	var params []ast.Node
	for !p.eof() {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.eof() {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	return &ast.VSlotScopeExpression{
		Base:   ast.NewBase(ast.KindVSlotScopeExpression, p.tokens[0].Position.Offset, p.tokens[len(p.tokens)-1].End.Offset),
		Params: params,
	}, nil
}
