package indent

import (
	"github.com/shibukawa/tmplindent/ast"
)

type layoutClass int

const (
	unclassified layoutClass = iota
	// the kind has a layout handler
	handled
	// the kind is known but adds no relations of its own
	passThrough
	// the kind is unknown to the layout rules: every token in its subtree
	// loses its relation and is left as the author wrote it
	suppressed
)

var kindClasses = map[ast.Kind]layoutClass{
	// Markup
	ast.KindVAttribute:           handled,
	ast.KindVElement:             handled,
	ast.KindVEndTag:              handled,
	ast.KindVExpressionContainer: handled,
	ast.KindVForExpression:       handled,
	ast.KindVStartTag:            handled,
	ast.KindVText:                handled,
	ast.KindVDocumentFragment:    passThrough,
	ast.KindVIdentifier:          passThrough,
	ast.KindVDirectiveKey:        passThrough,
	ast.KindVLiteral:             passThrough,
	ast.KindVOnExpression:        passThrough,
	ast.KindVSlotScopeExpression: suppressed,
	ast.KindVRawText:             suppressed,

	// Expressions and patterns
	ast.KindArrayExpression:          handled,
	ast.KindArrayPattern:             handled,
	ast.KindArrowFunctionExpression:  handled,
	ast.KindAssignmentExpression:     handled,
	ast.KindAssignmentPattern:        handled,
	ast.KindAwaitExpression:          handled,
	ast.KindBinaryExpression:         handled,
	ast.KindCallExpression:           handled,
	ast.KindClassBody:                handled,
	ast.KindClassDeclaration:         handled,
	ast.KindClassExpression:          handled,
	ast.KindConditionalExpression:    handled,
	ast.KindFunctionDeclaration:      handled,
	ast.KindFunctionExpression:       handled,
	ast.KindIdentifier:               handled,
	ast.KindLiteral:                  handled,
	ast.KindLogicalExpression:        handled,
	ast.KindMemberExpression:         handled,
	ast.KindMetaProperty:             handled,
	ast.KindMethodDefinition:         handled,
	ast.KindNewExpression:            handled,
	ast.KindObjectExpression:         handled,
	ast.KindObjectPattern:            handled,
	ast.KindProperty:                 handled,
	ast.KindRestElement:              handled,
	ast.KindSequenceExpression:       handled,
	ast.KindSpreadElement:            handled,
	ast.KindSuper:                    handled,
	ast.KindTaggedTemplateExpression: handled,
	ast.KindTemplateLiteral:          handled,
	ast.KindThisExpression:           handled,
	ast.KindUnaryExpression:          handled,
	ast.KindUpdateExpression:         handled,
	ast.KindYieldExpression:          handled,
	ast.KindTemplateElement:          passThrough,
	ast.KindChainExpression:          suppressed,
	ast.KindImportExpression:         suppressed,
	ast.KindPropertyDefinition:       suppressed,

	// Statements
	ast.KindBlockStatement:      handled,
	ast.KindBreakStatement:      handled,
	ast.KindCatchClause:         handled,
	ast.KindContinueStatement:   handled,
	ast.KindDoWhileStatement:    handled,
	ast.KindExpressionStatement: handled,
	ast.KindForInStatement:      handled,
	ast.KindForOfStatement:      handled,
	ast.KindForStatement:        handled,
	ast.KindIfStatement:         handled,
	ast.KindLabeledStatement:    handled,
	ast.KindReturnStatement:     handled,
	ast.KindSwitchCase:          handled,
	ast.KindSwitchStatement:     handled,
	ast.KindThrowStatement:      handled,
	ast.KindTryStatement:        handled,
	ast.KindVariableDeclaration: handled,
	ast.KindVariableDeclarator:  handled,
	ast.KindWhileStatement:      handled,
	ast.KindWithStatement:       handled,
	ast.KindEmptyStatement:      passThrough,
	ast.KindDebuggerStatement:   passThrough,
}

func classOf(kind ast.Kind) layoutClass {
	return kindClasses[kind]
}
