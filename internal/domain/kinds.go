// Package domain contains the node-splicing mutation engine and the workflows
// that drive it.
package domain

import "strings"

// Grammar kinds of the Rust tree-sitter grammar the engine reasons about.
const (
	KindSourceFile          = "source_file"
	KindFunctionItem        = "function_item"
	KindStructItem          = "struct_item"
	KindImplItem            = "impl_item"
	KindModItem             = "mod_item"
	KindUseDeclaration      = "use_declaration"
	KindBlock               = "block"
	KindBinaryExpression    = "binary_expression"
	KindCallExpression      = "call_expression"
	KindLetDeclaration      = "let_declaration"
	KindExpressionStatement = "expression_statement"
	KindMacroInvocation     = "macro_invocation"
	KindStringLiteral       = "string_literal"
	KindIntegerLiteral      = "integer_literal"
	KindParameters          = "parameters"
	KindArguments           = "arguments"
	KindIdentifier          = "identifier"
	KindTypeIdentifier      = "type_identifier"
)

// structuralKinds are never replaced wholesale; their subtrees are still
// explored.
var structuralKinds = map[string]struct{}{
	KindFunctionItem:   {},
	KindStructItem:     {},
	KindImplItem:       {},
	KindModItem:        {},
	KindUseDeclaration: {},
	KindSourceFile:     {},
}

// Lower weight means the kind is tried earlier.
var priorityWeights = map[string]int{
	KindBlock:               1,
	KindBinaryExpression:    2,
	KindCallExpression:      3,
	KindLetDeclaration:      4,
	KindExpressionStatement: 5,
	KindMacroInvocation:     6,
	KindStringLiteral:       10,
	KindIntegerLiteral:      11,
	KindParameters:          12,
	KindArguments:           13,
	KindIdentifier:          20,
	KindTypeIdentifier:      21,
}

const defaultPriorityWeight = 15

// PriorityWeight returns the ranking weight of kind.
func PriorityWeight(kind string) int {
	if w, ok := priorityWeights[kind]; ok {
		return w
	}

	return defaultPriorityWeight
}

// IsStructural reports whether kind is in the structural-skip set.
func IsStructural(kind string) bool {
	_, ok := structuralKinds[kind]
	return ok
}

// isHiddenKind reports auxiliary grammar productions, which tree-sitter
// names with a leading underscore.
func isHiddenKind(kind string) bool {
	return strings.HasPrefix(kind, "_")
}
