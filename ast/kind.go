package ast

// Kind identifies the syntactic category of a node
type Kind int

const (
	KindInvalid Kind = iota

	// Markup
	KindVDocumentFragment
	KindVElement
	KindVStartTag
	KindVEndTag
	KindVAttribute
	KindVIdentifier
	KindVDirectiveKey
	KindVLiteral
	KindVText
	KindVRawText
	KindVExpressionContainer
	KindVForExpression
	KindVOnExpression
	KindVSlotScopeExpression

	// Script
	KindArrayExpression
	KindArrayPattern
	KindArrowFunctionExpression
	KindAssignmentExpression
	KindAssignmentPattern
	KindAwaitExpression
	KindBinaryExpression
	KindBlockStatement
	KindBreakStatement
	KindCallExpression
	KindCatchClause
	KindChainExpression
	KindClassBody
	KindClassDeclaration
	KindClassExpression
	KindConditionalExpression
	KindContinueStatement
	KindDebuggerStatement
	KindDoWhileStatement
	KindEmptyStatement
	KindExpressionStatement
	KindForInStatement
	KindForOfStatement
	KindForStatement
	KindFunctionDeclaration
	KindFunctionExpression
	KindIdentifier
	KindIfStatement
	KindImportExpression
	KindLabeledStatement
	KindLiteral
	KindLogicalExpression
	KindMemberExpression
	KindMetaProperty
	KindMethodDefinition
	KindNewExpression
	KindObjectExpression
	KindObjectPattern
	KindProperty
	KindPropertyDefinition
	KindRestElement
	KindReturnStatement
	KindSequenceExpression
	KindSpreadElement
	KindSuper
	KindSwitchCase
	KindSwitchStatement
	KindTaggedTemplateExpression
	KindTemplateElement
	KindTemplateLiteral
	KindThisExpression
	KindThrowStatement
	KindTryStatement
	KindUnaryExpression
	KindUpdateExpression
	KindVariableDeclaration
	KindVariableDeclarator
	KindWhileStatement
	KindWithStatement
	KindYieldExpression

	kindCount
)

var kindNames = [...]string{
	KindInvalid:                  "Invalid",
	KindVDocumentFragment:        "VDocumentFragment",
	KindVElement:                 "VElement",
	KindVStartTag:                "VStartTag",
	KindVEndTag:                  "VEndTag",
	KindVAttribute:               "VAttribute",
	KindVIdentifier:              "VIdentifier",
	KindVDirectiveKey:            "VDirectiveKey",
	KindVLiteral:                 "VLiteral",
	KindVText:                    "VText",
	KindVRawText:                 "VRawText",
	KindVExpressionContainer:     "VExpressionContainer",
	KindVForExpression:           "VForExpression",
	KindVOnExpression:            "VOnExpression",
	KindVSlotScopeExpression:     "VSlotScopeExpression",
	KindArrayExpression:          "ArrayExpression",
	KindArrayPattern:             "ArrayPattern",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindAssignmentPattern:        "AssignmentPattern",
	KindAwaitExpression:          "AwaitExpression",
	KindBinaryExpression:         "BinaryExpression",
	KindBlockStatement:           "BlockStatement",
	KindBreakStatement:           "BreakStatement",
	KindCallExpression:           "CallExpression",
	KindCatchClause:              "CatchClause",
	KindChainExpression:          "ChainExpression",
	KindClassBody:                "ClassBody",
	KindClassDeclaration:         "ClassDeclaration",
	KindClassExpression:          "ClassExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindContinueStatement:        "ContinueStatement",
	KindDebuggerStatement:        "DebuggerStatement",
	KindDoWhileStatement:         "DoWhileStatement",
	KindEmptyStatement:           "EmptyStatement",
	KindExpressionStatement:      "ExpressionStatement",
	KindForInStatement:           "ForInStatement",
	KindForOfStatement:           "ForOfStatement",
	KindForStatement:             "ForStatement",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindFunctionExpression:       "FunctionExpression",
	KindIdentifier:               "Identifier",
	KindIfStatement:              "IfStatement",
	KindImportExpression:         "ImportExpression",
	KindLabeledStatement:         "LabeledStatement",
	KindLiteral:                  "Literal",
	KindLogicalExpression:        "LogicalExpression",
	KindMemberExpression:         "MemberExpression",
	KindMetaProperty:             "MetaProperty",
	KindMethodDefinition:         "MethodDefinition",
	KindNewExpression:            "NewExpression",
	KindObjectExpression:         "ObjectExpression",
	KindObjectPattern:            "ObjectPattern",
	KindProperty:                 "Property",
	KindPropertyDefinition:       "PropertyDefinition",
	KindRestElement:              "RestElement",
	KindReturnStatement:          "ReturnStatement",
	KindSequenceExpression:       "SequenceExpression",
	KindSpreadElement:            "SpreadElement",
	KindSuper:                    "Super",
	KindSwitchCase:               "SwitchCase",
	KindSwitchStatement:          "SwitchStatement",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindTemplateElement:          "TemplateElement",
	KindTemplateLiteral:          "TemplateLiteral",
	KindThisExpression:           "ThisExpression",
	KindThrowStatement:           "ThrowStatement",
	KindTryStatement:             "TryStatement",
	KindUnaryExpression:          "UnaryExpression",
	KindUpdateExpression:         "UpdateExpression",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariableDeclarator:       "VariableDeclarator",
	KindWhileStatement:           "WhileStatement",
	KindWithStatement:            "WithStatement",
	KindYieldExpression:          "YieldExpression",
}

// String returns the ESTree style name of the kind
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Invalid"
	}
	return kindNames[k]
}

// Kinds returns every valid kind
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
