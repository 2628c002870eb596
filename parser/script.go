package parser

import (
	"fmt"
	"strings"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
)

var binaryPrecedence = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "instanceof": 8, "in": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

var assignOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true, "**=": true,
	"<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true, "^=": true,
	"&&=": true, "||=": true, "??=": true,
}

// scriptParser is a recursive descent parser over script tokens. Comments
// are dropped before parsing. Node ranges follow ESTree: parentheses around
// an expression are not part of its range, but are part of the enclosing
// node's range.
type scriptParser struct {
	tokens []tokenizer.Token
	pos    int
	// disallow the `in` operator while parsing the head of a for statement
	noIn bool
}

func newScriptParser(tokens []tokenizer.Token) *scriptParser {
	filtered := make([]tokenizer.Token, 0, len(tokens))
	for _, token := range tokens {
		if !token.IsComment() {
			filtered = append(filtered, token)
		}
	}
	return &scriptParser{tokens: filtered}
}

// parseExpressionAll parses the tokens as one expression
func (p *scriptParser) parseExpressionAll() (ast.Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.unexpected()
	}
	return expr, nil
}

// parseStatementsAll parses the tokens as a statement list
func (p *scriptParser) parseStatementsAll() ([]ast.Node, error) {
	var body []ast.Node
	for !p.eof() {
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, statement)
	}
	return body, nil
}

func (p *scriptParser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *scriptParser) peek() tokenizer.Token {
	return p.peekAt(0)
}

func (p *scriptParser) peekAt(n int) tokenizer.Token {
	if p.pos+n >= len(p.tokens) {
		return tokenizer.Token{Type: tokenizer.EOF}
	}
	return p.tokens[p.pos+n]
}

func (p *scriptParser) next() tokenizer.Token {
	token := p.peek()
	if !p.eof() {
		p.pos++
	}
	return token
}

// is reports whether the current token is the punctuator or keyword
func (p *scriptParser) is(value string) bool {
	return p.peek().Is(value)
}

// isWord reports whether the current token is the identifier or keyword
func (p *scriptParser) isWord(value string) bool {
	return isWord(p.peek(), value)
}

func isWord(token tokenizer.Token, value string) bool {
	return (token.Type == tokenizer.IDENTIFIER || token.Type == tokenizer.KEYWORD) && token.Value == value
}

func (p *scriptParser) eat(value string) bool {
	if p.is(value) {
		p.pos++
		return true
	}
	return false
}

func (p *scriptParser) expect(value string) error {
	if p.eat(value) {
		return nil
	}
	return p.unexpected()
}

func (p *scriptParser) unexpected() error {
	if p.eof() {
		if len(p.tokens) == 0 {
			return ErrUnexpectedEnd
		}
		last := p.tokens[len(p.tokens)-1]
		return fmt.Errorf("%w after line %d, column %d", ErrUnexpectedEnd, last.End.Line, last.End.Column)
	}
	token := p.peek()
	return fmt.Errorf("%w: %q at line %d, column %d", ErrUnexpectedToken, token.Value, token.Position.Line, token.Position.Column)
}

// sameLine reports whether the current token starts on the line where the
// previous token ends
func (p *scriptParser) sameLine() bool {
	if p.eof() || p.pos == 0 {
		return false
	}
	return p.tokens[p.pos].Position.Line == p.tokens[p.pos-1].End.Line
}

// base spans from the token at start to the last consumed token
func (p *scriptParser) base(kind ast.Kind, start int) ast.Base {
	return ast.NewBase(kind, p.tokens[start].Position.Offset, p.tokens[p.pos-1].End.Offset)
}

func (p *scriptParser) identifier(token tokenizer.Token) *ast.Identifier {
	return &ast.Identifier{
		Base: ast.NewBase(ast.KindIdentifier, token.Position.Offset, token.End.Offset),
		Name: token.Value,
	}
}

// startsExpression reports whether an expression can begin with the token
func startsExpression(token tokenizer.Token) bool {
	switch token.Type {
	case tokenizer.IDENTIFIER, tokenizer.NUMERIC, tokenizer.STRING, tokenizer.TEMPLATE,
		tokenizer.REGEXP, tokenizer.BOOLEAN, tokenizer.NULL:
		return true
	case tokenizer.KEYWORD:
		switch token.Value {
		case "this", "super", "function", "class", "new", "typeof", "void", "delete", "import", "yield":
			return true
		}
	case tokenizer.PUNCTUATOR:
		switch token.Value {
		case "(", "[", "{", "!", "~", "+", "-", "++", "--", "...":
			return true
		}
	}
	return false
}

func (p *scriptParser) parseExpression() (ast.Node, error) {
	start := p.pos
	expr, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	if !p.is(",") {
		return expr, nil
	}

	expressions := []ast.Node{expr}
	for p.eat(",") {
		expr, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)
	}
	return &ast.SequenceExpression{Base: p.base(ast.KindSequenceExpression, start), Expressions: expressions}, nil
}

func (p *scriptParser) parseAssign() (ast.Node, error) {
	if p.isArrowAhead() {
		return p.parseArrow()
	}
	if p.is("yield") {
		return p.parseYield()
	}

	start := p.pos
	left, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	token := p.peek()
	if token.Type != tokenizer.PUNCTUATOR || !assignOperators[token.Value] {
		return left, nil
	}
	p.pos++
	if token.Value == "=" {
		left = toPattern(left)
	}
	right, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentExpression{
		Base:     p.base(ast.KindAssignmentExpression, start),
		Operator: token.Value,
		Left:     left,
		Right:    right,
	}, nil
}

func (p *scriptParser) parseConditional() (ast.Node, error) {
	start := p.pos
	test, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if !p.eat("?") {
		return test, nil
	}

	noIn := p.noIn
	p.noIn = false
	consequent, err := p.parseAssign()
	p.noIn = noIn
	if err != nil {
		return nil, err
	}
	if err := p.expect(":"); err != nil {
		return nil, err
	}
	alternate, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{
		Base:       p.base(ast.KindConditionalExpression, start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}, nil
}

func (p *scriptParser) binaryOperator() (string, int, bool) {
	token := p.peek()
	if token.Type != tokenizer.PUNCTUATOR && token.Type != tokenizer.KEYWORD {
		return "", 0, false
	}
	prec, ok := binaryPrecedence[token.Value]
	if !ok || (token.Value == "in" && p.noIn) {
		return "", 0, false
	}
	return token.Value, prec, true
}

// parseBinary parses binary operators by precedence climbing
func (p *scriptParser) parseBinary(minPrec int) (ast.Node, error) {
	start := p.pos
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op, prec, ok := p.binaryOperator()
		if !ok || prec < minPrec {
			return left, nil
		}
		p.pos++

		nextPrec := prec + 1
		if op == "**" {
			nextPrec = prec
		}
		right, err := p.parseBinary(nextPrec)
		if err != nil {
			return nil, err
		}

		kind := ast.KindBinaryExpression
		if op == "&&" || op == "||" || op == "??" {
			kind = ast.KindLogicalExpression
		}
		left = &ast.BinaryExpression{Base: p.base(kind, start), Operator: op, Left: left, Right: right}
	}
}

func (p *scriptParser) parseUnary() (ast.Node, error) {
	start := p.pos
	token := p.peek()

	switch {
	case token.Is("!") || token.Is("~") || token.Is("+") || token.Is("-") ||
		token.Is("typeof") || token.Is("void") || token.Is("delete"):
		p.pos++
		argument, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Base: p.base(ast.KindUnaryExpression, start), Operator: token.Value, Argument: argument}, nil

	case token.Is("++") || token.Is("--"):
		p.pos++
		argument, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UpdateExpression{Base: p.base(ast.KindUpdateExpression, start), Operator: token.Value, Prefix: true, Argument: argument}, nil

	case token.Type == tokenizer.IDENTIFIER && token.Value == "await" && startsExpression(p.peekAt(1)):
		p.pos++
		argument, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.AwaitExpression{Base: p.base(ast.KindAwaitExpression, start), Argument: argument}, nil
	}

	expr, err := p.parseLeftHandSide()
	if err != nil {
		return nil, err
	}
	if (p.is("++") || p.is("--")) && p.sameLine() {
		op := p.next().Value
		return &ast.UpdateExpression{Base: p.base(ast.KindUpdateExpression, start), Operator: op, Argument: expr}, nil
	}
	return expr, nil
}

func (p *scriptParser) parseLeftHandSide() (ast.Node, error) {
	start := p.pos
	var expr ast.Node
	var err error
	if p.is("new") {
		expr, err = p.parseNew()
	} else {
		expr, err = p.parsePrimary()
	}
	if err != nil {
		return nil, err
	}
	return p.parseMemberTail(start, expr, true)
}

// parseMemberTail parses member accesses, calls and tagged templates
// following expr
func (p *scriptParser) parseMemberTail(start int, expr ast.Node, allowCall bool) (ast.Node, error) {
	optional := false
	for {
		token := p.peek()
		switch {
		case token.Is("."):
			p.pos++
			property, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Base: p.base(ast.KindMemberExpression, start), Object: expr, Property: property}

		case token.Is("?.") && allowCall:
			p.pos++
			optional = true
			switch {
			case p.is("("):
				args, err := p.parseArguments()
				if err != nil {
					return nil, err
				}
				expr = &ast.CallExpression{Base: p.base(ast.KindCallExpression, start), Callee: expr, Arguments: args, Optional: true}
			case p.is("["):
				property, err := p.parseComputedMember()
				if err != nil {
					return nil, err
				}
				expr = &ast.MemberExpression{Base: p.base(ast.KindMemberExpression, start), Object: expr, Property: property, Computed: true, Optional: true}
			default:
				property, err := p.parsePropertyName()
				if err != nil {
					return nil, err
				}
				expr = &ast.MemberExpression{Base: p.base(ast.KindMemberExpression, start), Object: expr, Property: property, Optional: true}
			}

		case token.Is("["):
			property, err := p.parseComputedMember()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Base: p.base(ast.KindMemberExpression, start), Object: expr, Property: property, Computed: true}

		case token.Is("(") && allowCall:
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpression{Base: p.base(ast.KindCallExpression, start), Callee: expr, Arguments: args}

		case token.Type == tokenizer.TEMPLATE && strings.HasPrefix(token.Value, "`"):
			quasi, err := p.parseTemplate()
			if err != nil {
				return nil, err
			}
			expr = &ast.TaggedTemplateExpression{Base: p.base(ast.KindTaggedTemplateExpression, start), Tag: expr, Quasi: quasi}

		default:
			if optional {
				return &ast.ChainExpression{Base: p.base(ast.KindChainExpression, start), Expression: expr}, nil
			}
			return expr, nil
		}
	}
}

func (p *scriptParser) parseComputedMember() (ast.Node, error) {
	p.pos++ // [
	noIn := p.noIn
	p.noIn = false
	property, err := p.parseExpression()
	p.noIn = noIn
	if err != nil {
		return nil, err
	}
	if err := p.expect("]"); err != nil {
		return nil, err
	}
	return property, nil
}

// parsePropertyName parses the name after a dot, keywords included
func (p *scriptParser) parsePropertyName() (ast.Node, error) {
	token := p.peek()
	switch token.Type {
	case tokenizer.IDENTIFIER, tokenizer.KEYWORD, tokenizer.BOOLEAN, tokenizer.NULL:
		p.pos++
		return p.identifier(token), nil
	}
	return nil, p.unexpected()
}

func (p *scriptParser) parseArguments() ([]ast.Node, error) {
	p.pos++ // (
	noIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = noIn }()

	var args []ast.Node
	for !p.is(")") {
		if p.eof() {
			return nil, p.unexpected()
		}
		var arg ast.Node
		var err error
		if p.is("...") {
			start := p.pos
			p.pos++
			var argument ast.Node
			argument, err = p.parseAssign()
			if err == nil {
				arg = &ast.SpreadElement{Base: p.base(ast.KindSpreadElement, start), Argument: argument}
			}
		} else {
			arg, err = p.parseAssign()
		}
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.is(")") {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	p.pos++ // )
	return args, nil
}

func (p *scriptParser) parseNew() (ast.Node, error) {
	start := p.pos
	newToken := p.next()

	if p.eat(".") {
		property, err := p.parsePropertyName()
		if err != nil {
			return nil, err
		}
		return &ast.MetaProperty{Base: p.base(ast.KindMetaProperty, start), Meta: p.identifier(newToken), Property: property}, nil
	}

	calleeStart := p.pos
	var callee ast.Node
	var err error
	if p.is("new") {
		callee, err = p.parseNew()
	} else {
		callee, err = p.parsePrimary()
	}
	if err != nil {
		return nil, err
	}
	callee, err = p.parseMemberTail(calleeStart, callee, false)
	if err != nil {
		return nil, err
	}

	var args []ast.Node
	if p.is("(") {
		args, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	return &ast.NewExpression{Base: p.base(ast.KindNewExpression, start), Callee: callee, Arguments: args}, nil
}

func (p *scriptParser) parsePrimary() (ast.Node, error) {
	start := p.pos
	token := p.peek()

	switch token.Type {
	case tokenizer.IDENTIFIER:
		if token.Value == "async" && p.peekAt(1).Is("function") && p.peekAt(1).Position.Line == token.End.Line {
			return p.parseFunction(ast.KindFunctionExpression)
		}
		p.pos++
		return p.identifier(token), nil

	case tokenizer.NUMERIC, tokenizer.STRING, tokenizer.REGEXP, tokenizer.BOOLEAN, tokenizer.NULL:
		p.pos++
		return &ast.Literal{Base: p.base(ast.KindLiteral, start), Raw: token.Value}, nil

	case tokenizer.TEMPLATE:
		return p.parseTemplate()

	case tokenizer.KEYWORD:
		switch token.Value {
		case "this":
			p.pos++
			return &ast.ThisExpression{Base: p.base(ast.KindThisExpression, start)}, nil
		case "super":
			p.pos++
			return &ast.Super{Base: p.base(ast.KindSuper, start)}, nil
		case "function":
			return p.parseFunction(ast.KindFunctionExpression)
		case "class":
			return p.parseClass(ast.KindClassExpression)
		case "new":
			return p.parseNew()
		case "import":
			return p.parseImport()
		}

	case tokenizer.PUNCTUATOR:
		switch token.Value {
		case "(":
			p.pos++
			noIn := p.noIn
			p.noIn = false
			expr, err := p.parseExpression()
			p.noIn = noIn
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return expr, nil
		case "[":
			return p.parseArray()
		case "{":
			return p.parseObject()
		}
	}

	return nil, p.unexpected()
}

func (p *scriptParser) parseImport() (ast.Node, error) {
	start := p.pos
	importToken := p.next()

	if p.eat(".") {
		property, err := p.parsePropertyName()
		if err != nil {
			return nil, err
		}
		return &ast.MetaProperty{Base: p.base(ast.KindMetaProperty, start), Meta: p.identifier(importToken), Property: property}, nil
	}

	if err := p.expect("("); err != nil {
		return nil, err
	}
	source, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return &ast.ImportExpression{Base: p.base(ast.KindImportExpression, start), Source: source}, nil
}

func (p *scriptParser) parseTemplate() (*ast.TemplateLiteral, error) {
	start := p.pos
	literal := &ast.TemplateLiteral{}

	for {
		token := p.peek()
		if token.Type != tokenizer.TEMPLATE {
			return nil, p.unexpected()
		}
		p.pos++

		tail := len(token.Value) >= 2 && strings.HasSuffix(token.Value, "`")
		literal.Quasis = append(literal.Quasis, &ast.TemplateElement{
			Base: ast.NewBase(ast.KindTemplateElement, token.Position.Offset, token.End.Offset),
			Raw:  token.Value,
			Tail: tail,
		})
		if tail {
			break
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		literal.Expressions = append(literal.Expressions, expr)
	}

	literal.Base = p.base(ast.KindTemplateLiteral, start)
	return literal, nil
}

func (p *scriptParser) parseArray() (ast.Node, error) {
	start := p.pos
	p.pos++ // [
	noIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = noIn }()

	var elements []ast.Node
	for !p.is("]") {
		if p.eof() {
			return nil, p.unexpected()
		}
		if p.eat(",") {
			elements = append(elements, nil)
			continue
		}

		var element ast.Node
		var err error
		if p.is("...") {
			spreadStart := p.pos
			p.pos++
			var argument ast.Node
			argument, err = p.parseAssign()
			if err == nil {
				element = &ast.SpreadElement{Base: p.base(ast.KindSpreadElement, spreadStart), Argument: argument}
			}
		} else {
			element, err = p.parseAssign()
		}
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
	return &ast.ArrayExpression{Base: p.base(ast.KindArrayExpression, start), Elements: elements}, nil
}

func (p *scriptParser) parseObject() (ast.Node, error) {
	start := p.pos
	p.pos++ // {
	noIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = noIn }()

	var properties []ast.Node
	for !p.is("}") {
		if p.eof() {
			return nil, p.unexpected()
		}
		property, err := p.parseObjectMember()
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
	return &ast.ObjectExpression{Base: p.base(ast.KindObjectExpression, start), Properties: properties}, nil
}

// isPropertyKeyStart reports whether the token can begin a property key,
// which tells a modifier such as `get` from a key named get
func isPropertyKeyStart(token tokenizer.Token) bool {
	switch token.Type {
	case tokenizer.IDENTIFIER, tokenizer.KEYWORD, tokenizer.STRING, tokenizer.NUMERIC,
		tokenizer.BOOLEAN, tokenizer.NULL:
		return true
	}
	return token.Is("[") || token.Is("*")
}

func (p *scriptParser) parseObjectMember() (ast.Node, error) {
	start := p.pos

	if p.eat("...") {
		argument, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		return &ast.SpreadElement{Base: p.base(ast.KindSpreadElement, start), Argument: argument}, nil
	}

	kind := "init"
	async := false
	if token := p.peek(); token.Type == tokenizer.IDENTIFIER && isPropertyKeyStart(p.peekAt(1)) {
		switch token.Value {
		case "get", "set":
			kind = token.Value
			p.pos++
		case "async":
			async = true
			p.pos++
		}
	}
	generator := p.eat("*")
	modified := kind != "init" || async || generator

	key, computed, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}

	switch {
	case p.is("("):
		value, err := p.parseFunctionRest(p.pos, ast.KindFunctionExpression, nil, async, generator)
		if err != nil {
			return nil, err
		}
		return &ast.Property{
			Base:     p.base(ast.KindProperty, start),
			Key:      key,
			Value:    value,
			PropKind: kind,
			Computed: computed,
			Method:   kind == "init",
		}, nil

	case p.is(":") && !modified:
		p.pos++
		value, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		return &ast.Property{Base: p.base(ast.KindProperty, start), Key: key, Value: value, PropKind: kind, Computed: computed}, nil
	}

	ident, ok := key.(*ast.Identifier)
	if !ok || computed || modified {
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
	return &ast.Property{Base: p.base(ast.KindProperty, start), Key: key, Value: value, PropKind: kind, Shorthand: true}, nil
}

// parsePropertyKey parses a property name or a computed [key]
func (p *scriptParser) parsePropertyKey() (ast.Node, bool, error) {
	start := p.pos
	token := p.peek()

	switch token.Type {
	case tokenizer.IDENTIFIER, tokenizer.KEYWORD, tokenizer.BOOLEAN, tokenizer.NULL:
		p.pos++
		return p.identifier(token), false, nil
	case tokenizer.STRING, tokenizer.NUMERIC:
		p.pos++
		return &ast.Literal{Base: p.base(ast.KindLiteral, start), Raw: token.Value}, false, nil
	}

	if token.Is("[") {
		key, err := p.parseComputedMember()
		if err != nil {
			return nil, false, err
		}
		return key, true, nil
	}
	return nil, false, p.unexpected()
}

func copyIdentifier(ident *ast.Identifier) *ast.Identifier {
	return &ast.Identifier{
		Base: ast.NewBase(ast.KindIdentifier, ident.Span.Start, ident.Span.End),
		Name: ident.Name,
	}
}

// matchingParen returns the index of the bracket closing the one at i, or -1
func (p *scriptParser) matchingParen(i int) int {
	depth := 0
	for ; i < len(p.tokens); i++ {
		token := p.tokens[i]
		if token.Type != tokenizer.PUNCTUATOR {
			continue
		}
		switch token.Value {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (p *scriptParser) tokenAt(i int) tokenizer.Token {
	if i < 0 || i >= len(p.tokens) {
		return tokenizer.Token{Type: tokenizer.EOF}
	}
	return p.tokens[i]
}

// isArrowAhead looks ahead for `x =>`, `(...) =>` and their async forms
func (p *scriptParser) isArrowAhead() bool {
	token := p.peek()
	i := p.pos

	if token.Type == tokenizer.IDENTIFIER {
		if p.peekAt(1).Is("=>") {
			return true
		}
		if token.Value != "async" || p.peekAt(1).Position.Line != token.End.Line {
			return false
		}
		next := p.peekAt(1)
		if next.Type == tokenizer.IDENTIFIER && p.peekAt(2).Is("=>") {
			return true
		}
		i++
	}

	if !p.tokenAt(i).Is("(") {
		return false
	}
	end := p.matchingParen(i)
	return end >= 0 && p.tokenAt(end+1).Is("=>")
}

func (p *scriptParser) parseArrow() (ast.Node, error) {
	start := p.pos
	async := false
	if p.isWord("async") && !p.peekAt(1).Is("=>") {
		async = true
		p.pos++
	}

	var params []ast.Node
	if p.is("(") {
		var err error
		params, err = p.parseParams()
		if err != nil {
			return nil, err
		}
	} else {
		params = []ast.Node{p.identifier(p.next())}
	}

	if err := p.expect("=>"); err != nil {
		return nil, err
	}

	var body ast.Node
	var err error
	if p.is("{") {
		body, err = p.parseBlock()
	} else {
		body, err = p.parseAssign()
	}
	if err != nil {
		return nil, err
	}
	return &ast.Function{Base: p.base(ast.KindArrowFunctionExpression, start), Params: params, Body: body, Async: async}, nil
}

func (p *scriptParser) parseYield() (ast.Node, error) {
	start := p.pos
	p.pos++ // yield

	delegate := p.eat("*")
	var argument ast.Node
	if delegate || (p.sameLine() && startsExpression(p.peek())) {
		var err error
		argument, err = p.parseAssign()
		if err != nil {
			return nil, err
		}
	}
	return &ast.YieldExpression{Base: p.base(ast.KindYieldExpression, start), Argument: argument, Delegate: delegate}, nil
}

// parseFunction parses `async function* name(params) { body }`
func (p *scriptParser) parseFunction(kind ast.Kind) (ast.Node, error) {
	start := p.pos
	async := false
	if p.isWord("async") {
		async = true
		p.pos++
	}
	if err := p.expect("function"); err != nil {
		return nil, err
	}
	generator := p.eat("*")

	var id ast.Node
	if token := p.peek(); token.Type == tokenizer.IDENTIFIER {
		p.pos++
		id = p.identifier(token)
	}
	return p.parseFunctionRest(start, kind, id, async, generator)
}

// parseFunctionRest parses the parameter list and the body of a function
// whose range begins at the token start
func (p *scriptParser) parseFunctionRest(start int, kind ast.Kind, id ast.Node, async, generator bool) (*ast.Function, error) {
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Function{
		Base:      p.base(kind, start),
		ID:        id,
		Params:    params,
		Body:      body,
		Async:     async,
		Generator: generator,
	}, nil
}

func (p *scriptParser) parseParams() ([]ast.Node, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}

	var params []ast.Node
	for !p.is(")") {
		if p.eof() {
			return nil, p.unexpected()
		}
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.is(")") {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	p.pos++ // )
	return params, nil
}

// parseParam parses a binding element or a rest element
func (p *scriptParser) parseParam() (ast.Node, error) {
	start := p.pos
	if !p.eat("...") {
		return p.parseBindingElement()
	}
	argument, err := p.parseBindingTarget()
	if err != nil {
		return nil, err
	}
	return &ast.RestElement{Base: p.base(ast.KindRestElement, start), Argument: argument}, nil
}

func (p *scriptParser) parseClass(kind ast.Kind) (ast.Node, error) {
	start := p.pos
	p.pos++ // class

	var id ast.Node
	if token := p.peek(); token.Type == tokenizer.IDENTIFIER {
		p.pos++
		id = p.identifier(token)
	}

	var superClass ast.Node
	if p.eat("extends") {
		var err error
		superClass, err = p.parseLeftHandSide()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	return &ast.Class{Base: p.base(kind, start), ID: id, SuperClass: superClass, Body: body}, nil
}

func (p *scriptParser) parseClassBody() (*ast.ClassBody, error) {
	start := p.pos
	if err := p.expect("{"); err != nil {
		return nil, err
	}

	var members []ast.Node
	for !p.is("}") {
		if p.eof() {
			return nil, p.unexpected()
		}
		if p.eat(";") {
			continue
		}
		member, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	p.pos++ // }
	return &ast.ClassBody{Base: p.base(ast.KindClassBody, start), Body: members}, nil
}

func (p *scriptParser) parseClassMember() (ast.Node, error) {
	start := p.pos

	static := false
	if p.isWord("static") && isPropertyKeyStart(p.peekAt(1)) {
		static = true
		p.pos++
	}

	kind := "method"
	async := false
	if token := p.peek(); token.Type == tokenizer.IDENTIFIER && isPropertyKeyStart(p.peekAt(1)) {
		switch token.Value {
		case "get", "set":
			kind = token.Value
			p.pos++
		case "async":
			async = true
			p.pos++
		}
	}
	generator := p.eat("*")

	key, computed, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}

	if p.is("(") {
		value, err := p.parseFunctionRest(p.pos, ast.KindFunctionExpression, nil, async, generator)
		if err != nil {
			return nil, err
		}
		if ident, ok := key.(*ast.Identifier); ok && !computed && !static && kind == "method" && ident.Name == "constructor" {
			kind = "constructor"
		}
		return &ast.MethodDefinition{
			Base:       p.base(ast.KindMethodDefinition, start),
			Key:        key,
			Value:      value,
			MethodKind: kind,
			Computed:   computed,
			Static:     static,
		}, nil
	}

	var value ast.Node
	if p.eat("=") {
		value, err = p.parseAssign()
		if err != nil {
			return nil, err
		}
	}
	p.eat(";")
	return &ast.PropertyDefinition{Base: p.base(ast.KindPropertyDefinition, start), Key: key, Value: value, Computed: computed, Static: static}, nil
}
