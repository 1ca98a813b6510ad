package domain

import (
	"bytes"

	"splicer.dev/pkg/splicer/internal/cst"
	m "splicer.dev/pkg/splicer/internal/model"
)

// SnippetBounds limits the byte length of pooled snippets. Both ends are
// inclusive.
type SnippetBounds struct {
	Min int
	Max int
}

// Default snippet bounds.
const (
	DefaultMinSnippetLen = 5
	DefaultMaxSnippetLen = 200
)

// DefaultSnippetBounds returns [5, 200].
func DefaultSnippetBounds() SnippetBounds {
	return SnippetBounds{Min: DefaultMinSnippetLen, Max: DefaultMaxSnippetLen}
}

func (b SnippetBounds) contains(size int) bool {
	return size >= b.Min && size <= b.Max
}

// minUsableEntries is the pool size below which a kind offers no
// distinguishable alternative.
const minUsableEntries = 2

// NodePool holds replacement snippets bucketed by grammar kind. It is
// collected once from the original tree and never changes afterwards.
type NodePool struct {
	snippets map[string][][]byte
	kinds    []string
}

// CollectNodePool walks tree in pre-order and pools the text of every node
// whose length fits bounds, skipping hidden kinds. Duplicates are kept.
func CollectNodePool(tree *cst.Tree, bounds SnippetBounds) *NodePool {
	pool := &NodePool{snippets: make(map[string][][]byte)}

	tree.Walk(func(id cst.NodeID, _ int) bool {
		n := tree.Node(id)
		if isHiddenKind(n.Kind) || !bounds.contains(n.Len()) {
			return true
		}

		if _, seen := pool.snippets[n.Kind]; !seen {
			pool.kinds = append(pool.kinds, n.Kind)
		}

		pool.snippets[n.Kind] = append(pool.snippets[n.Kind], bytes.Clone(tree.Text(id)))

		return true
	})

	return pool
}

// Size returns the number of snippets pooled for kind.
func (p *NodePool) Size(kind string) int {
	return len(p.snippets[kind])
}

// Usable reports whether kind has enough snippets to act as replacement
// material.
func (p *NodePool) Usable(kind string) bool {
	return p.Size(kind) >= minUsableEntries
}

// Kinds returns the pooled kinds in first-seen order.
func (p *NodePool) Kinds() []string {
	return append([]string(nil), p.kinds...)
}

// Snippets returns the snippets of kind in collection order.
func (p *NodePool) Snippets(kind string) [][]byte {
	return p.snippets[kind]
}

// Alternatives returns the snippets of kind that differ from current, in
// collection order. The order matters: the engine draws from it by index.
func (p *NodePool) Alternatives(kind string, current []byte) [][]byte {
	var out [][]byte

	for _, snippet := range p.snippets[kind] {
		if !bytes.Equal(snippet, current) {
			out = append(out, snippet)
		}
	}

	return out
}

const previewLen = 50

// Summary describes every pooled kind for display.
func (p *NodePool) Summary() []m.PoolSummary {
	summary := make([]m.PoolSummary, 0, len(p.kinds))

	for _, kind := range p.kinds {
		snippets := p.snippets[kind]
		previews := make([]string, 0, len(snippets))

		for _, snippet := range snippets {
			previews = append(previews, m.Preview(snippet, previewLen))
		}

		summary = append(summary, m.PoolSummary{
			Kind:     kind,
			Count:    len(snippets),
			Usable:   len(snippets) >= minUsableEntries,
			Previews: previews,
		})
	}

	return summary
}
