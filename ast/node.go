// Package ast defines the syntax tree of a template document: markup nodes
// (elements, tags, attributes, text) and the script nodes embedded in
// directive values and interpolations.
package ast

import (
	"github.com/shibukawa/tmplindent/tokenizer"
)

// Range is a half-open byte range in the source
type Range struct {
	Start int
	End   int
}

// Contains reports whether r fully contains other
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Node is a syntax tree node. The set of node types is closed: every
// implementation embeds Base.
type Node interface {
	Kind() Kind
	Range() Range
	Parent() Node
	base() *Base
}

// Base holds the fields shared by all nodes
type Base struct {
	NodeKind Kind
	Span     Range
	parent   Node
}

// NewBase creates a Base of the kind spanning [start, end)
func NewBase(kind Kind, start, end int) Base {
	return Base{NodeKind: kind, Span: Range{Start: start, End: end}}
}

// Kind implements Node
func (b *Base) Kind() Kind { return b.NodeKind }

// Range implements Node
func (b *Base) Range() Range { return b.Span }

// Parent returns the enclosing node, or nil for the root
func (b *Base) Parent() Node { return b.parent }

func (b *Base) base() *Base { return b }

// Document is a parsed template source
type Document struct {
	Source   string
	Tokens   []tokenizer.Token // all tokens in source order, comments included
	Fragment *VDocumentFragment
	// Errors collected while parsing embedded scripts
	Errors []error
}

// Roots returns the top-level elements of the document
func (d *Document) Roots() []*VElement {
	var roots []*VElement
	for _, child := range d.Fragment.Children {
		if element, ok := child.(*VElement); ok {
			roots = append(roots, element)
		}
	}
	return roots
}

// VDocumentFragment is the root of the markup tree
type VDocumentFragment struct {
	Base
	Children []Node
}

// VElement is an element with its tags and children.
// EndTag is nil for void, self-closing and unclosed elements.
type VElement struct {
	Base
	Name     string // case-folded tag name
	RawName  string
	StartTag *VStartTag
	Children []Node
	EndTag   *VEndTag
}

// VStartTag is the opening tag of an element
type VStartTag struct {
	Base
	Attributes  []*VAttribute
	SelfClosing bool
}

// VEndTag is the closing tag of an element
type VEndTag struct {
	Base
}

// VAttribute is an attribute or a directive. Key is a *VIdentifier for plain
// attributes and a *VDirectiveKey for directives. Value is a *VLiteral, a
// *VExpressionContainer or nil.
type VAttribute struct {
	Base
	Directive bool
	Key       Node
	Value     Node
}

// VIdentifier is a plain attribute name
type VIdentifier struct {
	Base
	Name string
}

// VDirectiveKey is the name of a directive such as v-on:click.stop or @click
type VDirectiveKey struct {
	Base
	Name      string // without the v- prefix: on, bind, for, ...
	Argument  string
	Modifiers []string
	Shorthand bool
}

// VLiteral is a plain attribute value without quotes
type VLiteral struct {
	Base
	Value string
}

// VText is a run of text between tags
type VText struct {
	Base
	Value string
}

// VRawText is the content of a raw text element such as <script>
type VRawText struct {
	Base
	Value string
}

// VExpressionContainer is a mustache interpolation or a directive value.
// Expression is nil when the embedded script is empty or failed to parse.
type VExpressionContainer struct {
	Base
	Expression Node
	Err        error
}

// VForExpression is the value of v-for: `(item, index) in items`
type VForExpression struct {
	Base
	Left  []Node
	Right Node
}

// VOnExpression is a v-on handler made of statements
type VOnExpression struct {
	Base
	Body []Node
}

// VSlotScopeExpression is the parameter list of a scoped slot
type VSlotScopeExpression struct {
	Base
	Params []Node
}
