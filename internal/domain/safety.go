package domain

import (
	"sort"

	"splicer.dev/pkg/splicer/internal/cst"
)

// VariableTracker maps a variable name to the document-order ordinal of its
// declaring let binding.
type VariableTracker map[string]int

// DeclaredAt returns the ordinal recorded for name.
func (v VariableTracker) DeclaredAt(name string) (int, bool) {
	ordinal, ok := v[name]
	return ordinal, ok
}

// FunctionNameRegistry is the set of function names defined in a buffer.
type FunctionNameRegistry map[string]struct{}

// BuildFunctionNameRegistry collects the name of every function_item in tree.
func BuildFunctionNameRegistry(tree *cst.Tree) FunctionNameRegistry {
	registry := make(FunctionNameRegistry)

	tree.Walk(func(id cst.NodeID, _ int) bool {
		if tree.Node(id).Kind != KindFunctionItem {
			return true
		}

		for _, child := range tree.Node(id).Children {
			if tree.Node(child).Kind == KindIdentifier {
				registry[string(tree.Text(child))] = struct{}{}
				break
			}
		}

		return true
	})

	return registry
}

// Has reports whether name is a registered function name.
func (r FunctionNameRegistry) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Names returns the registered names sorted.
func (r FunctionNameRegistry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// IsFunctionNamePosition reports whether id is the name of a function
// definition: a child of function_item sitting right after the fn keyword.
func IsFunctionNamePosition(tree *cst.Tree, id cst.NodeID) bool {
	parent := tree.Node(id).Parent
	if parent == cst.NoNode || tree.Node(parent).Kind != KindFunctionItem {
		return false
	}

	return tree.ChildIndex(id) == 1
}

// RejectReason explains why SafetyPolicy refused an identifier replacement.
type RejectReason int

const (
	// Accepted means the replacement may proceed.
	Accepted RejectReason = iota
	// RejectUseBeforeDeclaration means the identifier does not come after
	// the let binding of the same name.
	RejectUseBeforeDeclaration
	// RejectProtectedName means the identifier is a critical name.
	RejectProtectedName
	// RejectStdlibName means the identifier names a protected std macro or
	// function.
	RejectStdlibName
	// RejectMainRename means the function being renamed is main.
	RejectMainRename
	// RejectDuplicateFunctionName means the new function name is taken.
	RejectDuplicateFunctionName
	// RejectCriticalFunctionName means a function would be renamed to a
	// critical name.
	RejectCriticalFunctionName
)

var rejectReasonNames = map[RejectReason]string{
	Accepted:                    "accepted",
	RejectUseBeforeDeclaration:  "use-before-declaration",
	RejectProtectedName:         "protected-name",
	RejectStdlibName:            "stdlib-name",
	RejectMainRename:            "main-rename",
	RejectDuplicateFunctionName: "duplicate-function-name",
	RejectCriticalFunctionName:  "critical-function-name",
}

func (r RejectReason) String() string {
	if name, ok := rejectReasonNames[r]; ok {
		return name
	}

	return "unknown"
}

const mainName = "main"

// DefaultCriticalNames are never replaced and never introduced as function
// names.
var DefaultCriticalNames = []string{mainName, "test"}

// DefaultStdlibNames are standard-library call names that are never replaced.
var DefaultStdlibNames = []string{"println", "print", "panic", "vec", "format"}

// SafetyPolicy gates identifier replacements.
type SafetyPolicy struct {
	critical map[string]struct{}
	stdlib   map[string]struct{}
}

// NewSafetyPolicy builds a policy from the given protected name lists.
func NewSafetyPolicy(critical, stdlib []string) *SafetyPolicy {
	return &SafetyPolicy{critical: toSet(critical), stdlib: toSet(stdlib)}
}

// DefaultSafetyPolicy protects DefaultCriticalNames and DefaultStdlibNames.
func DefaultSafetyPolicy() *SafetyPolicy {
	return NewSafetyPolicy(DefaultCriticalNames, DefaultStdlibNames)
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

// IdentifierCheck is one proposed identifier replacement.
type IdentifierCheck struct {
	Name         string
	Replacement  string
	Ordinal      int
	FunctionName bool
}

// Check applies the policy. The declaration-order test is name-only and
// ignores lexical scope.
func (p *SafetyPolicy) Check(c IdentifierCheck, tracker VariableTracker, registry FunctionNameRegistry) RejectReason {
	if declared, ok := tracker.DeclaredAt(c.Name); ok && c.Ordinal <= declared {
		return RejectUseBeforeDeclaration
	}

	if _, ok := p.critical[c.Name]; ok {
		return RejectProtectedName
	}

	if _, ok := p.stdlib[c.Name]; ok {
		return RejectStdlibName
	}

	if !c.FunctionName {
		return Accepted
	}

	if c.Name == mainName {
		return RejectMainRename
	}

	if c.Replacement != c.Name && registry.Has(c.Replacement) {
		return RejectDuplicateFunctionName
	}

	if _, ok := p.critical[c.Replacement]; ok && c.Replacement != c.Name {
		return RejectCriticalFunctionName
	}

	return Accepted
}
