package ast

// Script nodes follow the ESTree shapes. Optional children are plain Node
// fields that stay nil when absent.

// Identifier is a name reference or binding
type Identifier struct {
	Base
	Name string
}

// Literal is a string, number, regular expression, boolean or null
type Literal struct {
	Base
	Raw string
}

// ThisExpression is `this`
type ThisExpression struct {
	Base
}

// Super is `super`
type Super struct {
	Base
}

// ArrayExpression is `[a, , b]`. Holes are nil elements.
type ArrayExpression struct {
	Base
	Elements []Node
}

// ArrayPattern is a destructuring `[a, , b]`. Holes are nil elements.
type ArrayPattern struct {
	Base
	Elements []Node
}

// ObjectExpression is `{ a: 1, ...b }`
type ObjectExpression struct {
	Base
	Properties []Node
}

// ObjectPattern is a destructuring `{ a, b: c, ...d }`
type ObjectPattern struct {
	Base
	Properties []Node
}

// Property is an object literal or object pattern member
type Property struct {
	Base
	Key       Node
	Value     Node
	PropKind  string // init, get, set
	Computed  bool
	Shorthand bool
	Method    bool
}

// SpreadElement is `...argument` in arrays, objects and arguments
type SpreadElement struct {
	Base
	Argument Node
}

// RestElement is `...argument` in patterns and parameters
type RestElement struct {
	Base
	Argument Node
}

// AssignmentPattern is a binding with a default value, `a = 1`
type AssignmentPattern struct {
	Base
	Left  Node
	Right Node
}

// Function is a FunctionDeclaration, a FunctionExpression or an
// ArrowFunctionExpression depending on its kind. Body is a *BlockStatement
// or, for arrow functions with an expression body, an expression.
type Function struct {
	Base
	ID        Node
	Params    []Node
	Body      Node
	Async     bool
	Generator bool
}

// Class is a ClassDeclaration or a ClassExpression depending on its kind
type Class struct {
	Base
	ID         Node
	SuperClass Node
	Body       *ClassBody
}

// ClassBody is the braced member list of a class
type ClassBody struct {
	Base
	Body []Node
}

// MethodDefinition is a class method, getter, setter or constructor
type MethodDefinition struct {
	Base
	Key        Node
	Value      *Function
	MethodKind string // method, get, set, constructor
	Computed   bool
	Static     bool
}

// PropertyDefinition is a class field
type PropertyDefinition struct {
	Base
	Key      Node
	Value    Node
	Computed bool
	Static   bool
}

// BinaryExpression is a BinaryExpression or a LogicalExpression depending on
// its kind
type BinaryExpression struct {
	Base
	Operator string
	Left     Node
	Right    Node
}

// AssignmentExpression is `left op= right`
type AssignmentExpression struct {
	Base
	Operator string
	Left     Node
	Right    Node
}

// UnaryExpression is a prefix operator such as `!a` or `typeof a`
type UnaryExpression struct {
	Base
	Operator string
	Argument Node
}

// UpdateExpression is `++a` or `a--`
type UpdateExpression struct {
	Base
	Operator string
	Prefix   bool
	Argument Node
}

// AwaitExpression is `await argument`
type AwaitExpression struct {
	Base
	Argument Node
}

// YieldExpression is `yield argument` or `yield* argument`
type YieldExpression struct {
	Base
	Argument Node
	Delegate bool
}

// ConditionalExpression is `test ? consequent : alternate`
type ConditionalExpression struct {
	Base
	Test       Node
	Consequent Node
	Alternate  Node
}

// CallExpression is `callee(arguments)`
type CallExpression struct {
	Base
	Callee    Node
	Arguments []Node
	Optional  bool
}

// NewExpression is `new callee(arguments)`
type NewExpression struct {
	Base
	Callee    Node
	Arguments []Node
}

// MemberExpression is `object.property` or `object[property]`
type MemberExpression struct {
	Base
	Object   Node
	Property Node
	Computed bool
	Optional bool
}

// ChainExpression wraps an optional chain such as `a?.b.c`
type ChainExpression struct {
	Base
	Expression Node
}

// ImportExpression is `import(source)`
type ImportExpression struct {
	Base
	Source Node
}

// MetaProperty is `new.target` or `import.meta`
type MetaProperty struct {
	Base
	Meta     Node
	Property Node
}

// SequenceExpression is `a, b, c`
type SequenceExpression struct {
	Base
	Expressions []Node
}

// TemplateLiteral is a backtick string with substitutions
type TemplateLiteral struct {
	Base
	Quasis      []*TemplateElement
	Expressions []Node
}

// TemplateElement is one raw text piece of a template literal
type TemplateElement struct {
	Base
	Raw  string
	Tail bool
}

// TaggedTemplateExpression is tag`quasi`
type TaggedTemplateExpression struct {
	Base
	Tag   Node
	Quasi *TemplateLiteral
}

// BlockStatement is `{ body }`
type BlockStatement struct {
	Base
	Body []Node
}

// EmptyStatement is a lone `;`
type EmptyStatement struct {
	Base
}

// DebuggerStatement is `debugger`
type DebuggerStatement struct {
	Base
}

// ExpressionStatement is an expression followed by an optional semicolon
type ExpressionStatement struct {
	Base
	Expression Node
}

// IfStatement is `if (test) consequent else alternate`
type IfStatement struct {
	Base
	Test       Node
	Consequent Node
	Alternate  Node
}

// ForStatement is `for (init; test; update) body`
type ForStatement struct {
	Base
	Init   Node
	Test   Node
	Update Node
	Body   Node
}

// ForInStatement is `for (left in right) body`
type ForInStatement struct {
	Base
	Left  Node
	Right Node
	Body  Node
}

// ForOfStatement is `for (left of right) body`
type ForOfStatement struct {
	Base
	Left  Node
	Right Node
	Body  Node
	Await bool
}

// WhileStatement is `while (test) body`
type WhileStatement struct {
	Base
	Test Node
	Body Node
}

// DoWhileStatement is `do body while (test)`
type DoWhileStatement struct {
	Base
	Body Node
	Test Node
}

// WithStatement is `with (object) body`
type WithStatement struct {
	Base
	Object Node
	Body   Node
}

// ReturnStatement is `return argument`
type ReturnStatement struct {
	Base
	Argument Node
}

// ThrowStatement is `throw argument`
type ThrowStatement struct {
	Base
	Argument Node
}

// BreakStatement is `break label`
type BreakStatement struct {
	Base
	Label Node
}

// ContinueStatement is `continue label`
type ContinueStatement struct {
	Base
	Label Node
}

// LabeledStatement is `label: body`
type LabeledStatement struct {
	Base
	Label Node
	Body  Node
}

// SwitchStatement is `switch (discriminant) { cases }`
type SwitchStatement struct {
	Base
	Discriminant Node
	Cases        []*SwitchCase
}

// SwitchCase is `case test: consequent` or `default: consequent`
type SwitchCase struct {
	Base
	Test       Node
	Consequent []Node
}

// TryStatement is `try block catch (param) body finally finalizer`
type TryStatement struct {
	Base
	Block     *BlockStatement
	Handler   Node // *CatchClause
	Finalizer Node // *BlockStatement
}

// CatchClause is `catch (param) body`; Param is nil for an optional binding
type CatchClause struct {
	Base
	Param Node
	Body  *BlockStatement
}

// VariableDeclaration is `var|let|const declarations`
type VariableDeclaration struct {
	Base
	DeclKind     string
	Declarations []*VariableDeclarator
}

// VariableDeclarator is `id = init`
type VariableDeclarator struct {
	Base
	ID   Node
	Init Node
}
