package ast

// Visitor receives nodes in depth-first order. Enter is called before the
// children of a node are visited and Leave after.
type Visitor interface {
	Enter(n Node)
	Leave(n Node)
}

// Walk traverses the tree rooted at n
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	v.Enter(n)
	for _, child := range Children(n) {
		Walk(v, child)
	}
	v.Leave(n)
}

// Inspect traverses the tree in pre-order. Children are skipped when f
// returns false.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

// LinkParents sets the parent of every node below root
func LinkParents(root Node) {
	Inspect(root, func(n Node) bool {
		for _, child := range Children(n) {
			child.base().parent = n
		}
		return true
	})
}

// Children returns the direct children of n in source order
func Children(n Node) []Node {
	var c children
	switch n := n.(type) {
	// Markup
	case *VDocumentFragment:
		c.add(n.Children...)
	case *VElement:
		if n.StartTag != nil {
			c.add(n.StartTag)
		}
		c.add(n.Children...)
		if n.EndTag != nil {
			c.add(n.EndTag)
		}
	case *VStartTag:
		for _, attr := range n.Attributes {
			c.add(attr)
		}
	case *VAttribute:
		c.add(n.Key, n.Value)
	case *VExpressionContainer:
		c.add(n.Expression)
	case *VForExpression:
		c.add(n.Left...)
		c.add(n.Right)
	case *VOnExpression:
		c.add(n.Body...)
	case *VSlotScopeExpression:
		c.add(n.Params...)

	// Script expressions
	case *ArrayExpression:
		c.add(n.Elements...)
	case *ArrayPattern:
		c.add(n.Elements...)
	case *ObjectExpression:
		c.add(n.Properties...)
	case *ObjectPattern:
		c.add(n.Properties...)
	case *Property:
		if n.Shorthand {
			c.add(n.Value)
		} else {
			c.add(n.Key, n.Value)
		}
	case *SpreadElement:
		c.add(n.Argument)
	case *RestElement:
		c.add(n.Argument)
	case *AssignmentPattern:
		c.add(n.Left, n.Right)
	case *Function:
		c.add(n.ID)
		c.add(n.Params...)
		c.add(n.Body)
	case *Class:
		c.add(n.ID, n.SuperClass)
		if n.Body != nil {
			c.add(n.Body)
		}
	case *ClassBody:
		c.add(n.Body...)
	case *MethodDefinition:
		c.add(n.Key)
		if n.Value != nil {
			c.add(n.Value)
		}
	case *PropertyDefinition:
		c.add(n.Key, n.Value)
	case *BinaryExpression:
		c.add(n.Left, n.Right)
	case *AssignmentExpression:
		c.add(n.Left, n.Right)
	case *UnaryExpression:
		c.add(n.Argument)
	case *UpdateExpression:
		c.add(n.Argument)
	case *AwaitExpression:
		c.add(n.Argument)
	case *YieldExpression:
		c.add(n.Argument)
	case *ConditionalExpression:
		c.add(n.Test, n.Consequent, n.Alternate)
	case *CallExpression:
		c.add(n.Callee)
		c.add(n.Arguments...)
	case *NewExpression:
		c.add(n.Callee)
		c.add(n.Arguments...)
	case *MemberExpression:
		c.add(n.Object, n.Property)
	case *ChainExpression:
		c.add(n.Expression)
	case *ImportExpression:
		c.add(n.Source)
	case *MetaProperty:
		c.add(n.Meta, n.Property)
	case *SequenceExpression:
		c.add(n.Expressions...)
	case *TemplateLiteral:
		for i, quasi := range n.Quasis {
			c.add(quasi)
			if i < len(n.Expressions) {
				c.add(n.Expressions[i])
			}
		}
	case *TaggedTemplateExpression:
		c.add(n.Tag)
		if n.Quasi != nil {
			c.add(n.Quasi)
		}

	// Script statements
	case *BlockStatement:
		c.add(n.Body...)
	case *ExpressionStatement:
		c.add(n.Expression)
	case *IfStatement:
		c.add(n.Test, n.Consequent, n.Alternate)
	case *ForStatement:
		c.add(n.Init, n.Test, n.Update, n.Body)
	case *ForInStatement:
		c.add(n.Left, n.Right, n.Body)
	case *ForOfStatement:
		c.add(n.Left, n.Right, n.Body)
	case *WhileStatement:
		c.add(n.Test, n.Body)
	case *DoWhileStatement:
		c.add(n.Body, n.Test)
	case *WithStatement:
		c.add(n.Object, n.Body)
	case *ReturnStatement:
		c.add(n.Argument)
	case *ThrowStatement:
		c.add(n.Argument)
	case *BreakStatement:
		c.add(n.Label)
	case *ContinueStatement:
		c.add(n.Label)
	case *LabeledStatement:
		c.add(n.Label, n.Body)
	case *SwitchStatement:
		c.add(n.Discriminant)
		for _, sc := range n.Cases {
			c.add(sc)
		}
	case *SwitchCase:
		c.add(n.Test)
		c.add(n.Consequent...)
	case *TryStatement:
		if n.Block != nil {
			c.add(n.Block)
		}
		c.add(n.Handler, n.Finalizer)
	case *CatchClause:
		c.add(n.Param)
		if n.Body != nil {
			c.add(n.Body)
		}
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			c.add(d)
		}
	case *VariableDeclarator:
		c.add(n.ID, n.Init)
	}
	return c
}

type children []Node

// add appends the non-nil nodes
func (c *children) add(nodes ...Node) {
	for _, n := range nodes {
		if n != nil {
			*c = append(*c, n)
		}
	}
}
