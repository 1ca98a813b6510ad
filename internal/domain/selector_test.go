package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splicer.dev/pkg/splicer/internal/cst"
)

func TestSelectCandidates_SkipsStructuralKinds(t *testing.T) {
	tree := parse(t, "fn a() { let x = 1; } fn b() { let y = 2; }")
	pool := CollectNodePool(tree, DefaultSnippetBounds())

	require.True(t, pool.Usable(KindFunctionItem), "both functions are pooled")

	selection := SelectCandidates(tree, pool)

	assert.Equal(t, []string{KindBlock, KindBlock, KindLetDeclaration, KindLetDeclaration}, kindsOf(selection.Ranked))
	assert.NotContains(t, kindsOf(selection.Ranked), KindFunctionItem)
	assert.NotContains(t, kindsOf(selection.Ranked), KindSourceFile)
}

func TestSelectCandidates_DocumentOrderAndTracker(t *testing.T) {
	tree := parse(t, "fn a() { let x = 1; } fn b() { let y = 2; }")
	selection := SelectCandidates(tree, CollectNodePool(tree, DefaultSnippetBounds()))

	require.Len(t, selection.DocumentOrder, 4)
	assert.Equal(t, []string{KindBlock, KindLetDeclaration, KindBlock, KindLetDeclaration}, kindsOf(selection.DocumentOrder))

	for i, c := range selection.DocumentOrder {
		assert.Equal(t, i, c.Ordinal)
	}

	assert.Equal(t, VariableTracker{"x": 1, "y": 3}, selection.Tracker)

	// Ranked candidates carry their document-order ordinal.
	for _, c := range selection.Ranked {
		assert.Equal(t, selection.DocumentOrder[c.Ordinal].Ref, c.Ref)
	}
}

func TestSelectCandidates_LaterDeclarationOverwrites(t *testing.T) {
	tree := parse(t, "fn main(){ let x = 10000; let x = 20000; }")
	selection := SelectCandidates(tree, CollectNodePool(tree, DefaultSnippetBounds()))

	assert.Equal(t, []string{KindLetDeclaration, KindIntegerLiteral, KindLetDeclaration, KindIntegerLiteral},
		kindsOf(selection.DocumentOrder))
	assert.Equal(t, VariableTracker{"x": 2}, selection.Tracker)
}

func TestSelectCandidates_DestructuringIsNotTracked(t *testing.T) {
	tree := parse(t, "fn main(){ let (first, second) = (10000, 20000); let third = first; }")
	selection := SelectCandidates(tree, CollectNodePool(tree, DefaultSnippetBounds()))

	_, tracked := selection.Tracker["first"]
	assert.False(t, tracked)

	_, tracked = selection.Tracker["third"]
	assert.True(t, tracked)
}

func TestSelectCandidates_CandidatesResolveAgainstTheirTree(t *testing.T) {
	tree := parse(t, "fn main(){ foo(10000, 20000); }")
	selection := SelectCandidates(tree, CollectNodePool(tree, DefaultSnippetBounds()))

	require.Len(t, selection.Ranked, 2)

	node, err := tree.Resolve(selection.Ranked[0].Ref)
	require.NoError(t, err)
	assert.Equal(t, "10000", string(tree.Text(selection.Ranked[0].Ref.ID)))
	assert.Equal(t, KindIntegerLiteral, node.Kind)

	reparsed := parse(t, "fn main(){ foo(10000, 20000); }")
	_, err = reparsed.Resolve(selection.Ranked[0].Ref)
	assert.ErrorIs(t, err, cst.ErrStaleNode)
}

func TestRankCandidates(t *testing.T) {
	found := []Candidate{
		{Ref: cst.NodeRef{ID: 1}, Kind: KindIdentifier, Depth: 1, Start: 0},
		{Ref: cst.NodeRef{ID: 2}, Kind: "tuple_expression", Depth: 1, Start: 5},
		{Ref: cst.NodeRef{ID: 3}, Kind: KindLetDeclaration, Depth: 3, Start: 10},
		{Ref: cst.NodeRef{ID: 4}, Kind: KindLetDeclaration, Depth: 2, Start: 20},
		{Ref: cst.NodeRef{ID: 5}, Kind: KindBlock, Depth: 4, Start: 30},
		{Ref: cst.NodeRef{ID: 6}, Kind: KindStringLiteral, Depth: 2, Start: 40},
		{Ref: cst.NodeRef{ID: 7}, Kind: KindStringLiteral, Depth: 2, Start: 35},
	}

	ranked := rankCandidates(found)

	ids := make([]cst.NodeID, 0, len(ranked))
	for _, c := range ranked {
		ids = append(ids, c.Ref.ID)
	}

	// block(1), let(4) by depth, string(10) by start, default(15), identifier(20).
	assert.Equal(t, []cst.NodeID{5, 4, 3, 7, 6, 2, 1}, ids)
	assert.Equal(t, cst.NodeID(1), found[0].Ref.ID, "input is not reordered")
}

func TestDocumentOrder_LetFirstAtEqualOffsets(t *testing.T) {
	found := []Candidate{
		{Ref: cst.NodeRef{ID: 1}, Kind: KindExpressionStatement, Start: 4},
		{Ref: cst.NodeRef{ID: 2}, Kind: KindLetDeclaration, Start: 4},
		{Ref: cst.NodeRef{ID: 3}, Kind: KindIntegerLiteral, Start: 0},
		{Ref: cst.NodeRef{ID: 4}, Kind: KindCallExpression, Start: 4},
	}

	doc := documentOrder(found)

	ids := make([]cst.NodeID, 0, len(doc))
	for _, c := range doc {
		ids = append(ids, c.Ref.ID)
	}

	assert.Equal(t, []cst.NodeID{3, 2, 1, 4}, ids)
}

func TestPriorityWeight(t *testing.T) {
	assert.Equal(t, 1, PriorityWeight(KindBlock))
	assert.Equal(t, 21, PriorityWeight(KindTypeIdentifier))
	assert.Equal(t, 15, PriorityWeight("match_expression"))
	assert.True(t, IsStructural(KindImplItem))
	assert.False(t, IsStructural(KindBlock))
}
