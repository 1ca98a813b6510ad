package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"splicer.dev/pkg/splicer/internal/adapter"
	"splicer.dev/pkg/splicer/internal/cst"
)

func newProvider(t *testing.T) *adapter.TreeSitterProvider {
	t.Helper()

	provider, err := adapter.NewTreeSitterProvider()
	require.NoError(t, err)

	return provider
}

func parse(t *testing.T, src string) *cst.Tree {
	t.Helper()

	tree, err := newProvider(t).Parse(context.Background(), []byte(src))
	require.NoError(t, err)

	return tree
}

// functionNames lists function definition names in document order,
// duplicates included.
func functionNames(tree *cst.Tree) []string {
	var names []string

	tree.Walk(func(id cst.NodeID, _ int) bool {
		if tree.Node(id).Kind != KindFunctionItem {
			return true
		}

		for _, child := range tree.Node(id).Children {
			if tree.Node(child).Kind == KindIdentifier {
				names = append(names, string(tree.Text(child)))
				break
			}
		}

		return true
	})

	return names
}

func kindsOf(candidates []Candidate) []string {
	kinds := make([]string, 0, len(candidates))
	for _, c := range candidates {
		kinds = append(kinds, c.Kind)
	}

	return kinds
}
