package domain

import (
	"log/slog"
	"sort"

	"splicer.dev/pkg/splicer/internal/cst"
)

// Candidate is a node eligible for replacement in one traversal. Its Ref is
// only valid against the tree it was selected from.
type Candidate struct {
	Ref   cst.NodeRef
	Kind  string
	Depth int
	Start int
	End   int
	// Ordinal is the candidate's position in document order.
	Ordinal int
}

// Selection is the result of one traversal of the current tree.
type Selection struct {
	// Ranked is the order in which replacements are attempted.
	Ranked []Candidate
	// DocumentOrder holds the same candidates sorted by start offset.
	DocumentOrder []Candidate
	// Tracker maps let-bound names to their document-order ordinal.
	Tracker VariableTracker
}

// Eligible reports whether a node of kind may be replaced given pool.
func Eligible(kind string, pool *NodePool) bool {
	return pool.Usable(kind) && !isHiddenKind(kind) && !IsStructural(kind)
}

// SelectCandidates walks tree and returns every eligible node, ranked by
// priority weight, then depth, then start offset.
func SelectCandidates(tree *cst.Tree, pool *NodePool) Selection {
	var found []Candidate

	tree.Walk(func(id cst.NodeID, depth int) bool {
		n := tree.Node(id)
		if Eligible(n.Kind, pool) {
			found = append(found, Candidate{
				Ref:   tree.Ref(id),
				Kind:  n.Kind,
				Depth: depth,
				Start: n.Start,
				End:   n.End,
			})
		}

		return true
	})

	doc := documentOrder(found)

	ordinals := make(map[cst.NodeID]int, len(doc))
	for i := range doc {
		doc[i].Ordinal = i
		ordinals[doc[i].Ref.ID] = i
	}

	for i := range found {
		found[i].Ordinal = ordinals[found[i].Ref.ID]
	}

	return Selection{
		Ranked:        rankCandidates(found),
		DocumentOrder: doc,
		Tracker:       BuildVariableTracker(tree, doc),
	}
}

// rankCandidates sorts a pre-order candidate list. Pre-order IDs settle any
// remaining tie.
func rankCandidates(found []Candidate) []Candidate {
	ranked := append([]Candidate(nil), found...)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if wa, wb := PriorityWeight(a.Kind), PriorityWeight(b.Kind); wa != wb {
			return wa < wb
		}

		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}

		if a.Start != b.Start {
			return a.Start < b.Start
		}

		return a.Ref.ID < b.Ref.ID
	})

	return ranked
}

// documentOrder sorts by start offset; a let_declaration goes first among
// candidates starting at the same offset.
func documentOrder(found []Candidate) []Candidate {
	doc := append([]Candidate(nil), found...)

	sort.SliceStable(doc, func(i, j int) bool {
		a, b := doc[i], doc[j]

		if a.Start != b.Start {
			return a.Start < b.Start
		}

		aLet, bLet := a.Kind == KindLetDeclaration, b.Kind == KindLetDeclaration
		if aLet != bLet {
			return aLet
		}

		return a.Ref.ID < b.Ref.ID
	})

	return doc
}

// BuildVariableTracker records, for each let_declaration in doc, the
// ordinal at which its bound name is declared. A later declaration of the
// same name overwrites an earlier one.
func BuildVariableTracker(tree *cst.Tree, doc []Candidate) VariableTracker {
	tracker := make(VariableTracker)

	for i, c := range doc {
		if c.Kind != KindLetDeclaration {
			continue
		}

		name := letBindingName(tree, c.Ref.ID)
		if name == "" {
			continue
		}

		tracker[name] = i

		slog.Debug("tracking variable declaration", "name", name, "ordinal", i)
	}

	return tracker
}

// letBindingName returns the first identifier directly under a let
// declaration. Destructuring patterns yield no name.
func letBindingName(tree *cst.Tree, id cst.NodeID) string {
	for _, child := range tree.Node(id).Children {
		if tree.Node(child).Kind == KindIdentifier {
			return string(tree.Text(child))
		}
	}

	return ""
}
