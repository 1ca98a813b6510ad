package cst

import "fmt"

// Builder assembles a Tree. Nodes must be added in pre-order: a parent before
// its children, siblings left to right.
type Builder struct {
	src   []byte
	nodes []Node
}

// NewBuilder starts a tree over a private copy of src.
func NewBuilder(src []byte) *Builder {
	buf := make([]byte, len(src))
	copy(buf, src)

	return &Builder{src: buf}
}

// Add appends a node under parent (NoNode for the root) and returns its ID.
func (b *Builder) Add(parent NodeID, n Node) (NodeID, error) {
	id := NodeID(len(b.nodes))

	if parent == NoNode && id != 0 {
		return NoNode, fmt.Errorf("node %q: only the first node may be the root", n.Kind)
	}

	if parent != NoNode && (parent < 0 || parent >= id) {
		return NoNode, fmt.Errorf("node %q: parent %d not yet added", n.Kind, parent)
	}

	if n.Start < 0 || n.End < n.Start || n.End > len(b.src) {
		return NoNode, fmt.Errorf("node %q: range [%d,%d) outside source of %d bytes", n.Kind, n.Start, n.End, len(b.src))
	}

	n.Parent = parent
	n.Children = nil
	b.nodes = append(b.nodes, n)

	if parent != NoNode {
		b.nodes[parent].Children = append(b.nodes[parent].Children, id)
	}

	return id, nil
}

// Build seals the snapshot and assigns it a fresh generation.
func (b *Builder) Build() *Tree {
	return &Tree{
		gen:   generations.Add(1),
		src:   b.src,
		nodes: b.nodes,
	}
}
