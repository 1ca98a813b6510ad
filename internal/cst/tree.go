// Package cst holds immutable snapshots of concrete syntax trees.
//
// A Tree is an arena of nodes addressed by NodeID. Node handles that must
// travel outside a traversal are NodeRefs, which carry the generation of the
// snapshot that produced them and are rejected by any other snapshot.
package cst

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// NodeID addresses a node inside one Tree. IDs follow pre-order, so the root
// is always 0 and a parent's ID is lower than any of its descendants.
type NodeID int

// NoNode marks the absence of a node (the root's parent).
const NoNode NodeID = -1

// ErrStaleNode is returned when a NodeRef is resolved against a snapshot other
// than the one it was taken from.
var ErrStaleNode = errors.New("stale node reference")

var generations atomic.Uint64

// Point is a zero-based row/column position.
type Point struct {
	Row    int
	Column int
}

// Node is one syntax node of a snapshot.
type Node struct {
	Kind     string
	Start    int
	End      int
	Parent   NodeID
	Children []NodeID
	Named    bool
	Error    bool
	Missing  bool
	Position Point
}

// Len returns the node's byte length.
func (n Node) Len() int {
	return n.End - n.Start
}

// NodeRef is a generation-tagged node handle.
type NodeRef struct {
	Gen uint64
	ID  NodeID
}

// Tree is an immutable snapshot of one parse of a byte buffer.
type Tree struct {
	gen   uint64
	src   []byte
	nodes []Node
}

// Generation returns the snapshot's process-unique tag.
func (t *Tree) Generation() uint64 {
	return t.gen
}

// Source returns the bytes the snapshot was parsed from.
func (t *Tree) Source() []byte {
	return t.src
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root node ID, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}

	return 0
}

// Node returns the node stored under id.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Ref returns a handle for id tagged with this snapshot's generation.
func (t *Tree) Ref(id NodeID) NodeRef {
	return NodeRef{Gen: t.gen, ID: id}
}

// Resolve returns the node behind ref if it belongs to this snapshot.
func (t *Tree) Resolve(ref NodeRef) (Node, error) {
	if ref.Gen != t.gen {
		return Node{}, fmt.Errorf("%w: generation %d, snapshot is %d", ErrStaleNode, ref.Gen, t.gen)
	}

	if ref.ID < 0 || int(ref.ID) >= len(t.nodes) {
		return Node{}, fmt.Errorf("node %d out of range (%d nodes)", ref.ID, len(t.nodes))
	}

	return t.nodes[ref.ID], nil
}

// Text returns the source bytes covered by id.
func (t *Tree) Text(id NodeID) []byte {
	n := t.nodes[id]
	return t.src[n.Start:n.End]
}

// ChildIndex returns the position of id among its parent's children, or -1
// for the root.
func (t *Tree) ChildIndex(id NodeID) int {
	parent := t.nodes[id].Parent
	if parent == NoNode {
		return -1
	}

	for i, child := range t.nodes[parent].Children {
		if child == id {
			return i
		}
	}

	return -1
}

// WalkFunc is called for every visited node. Returning false skips the
// node's subtree.
type WalkFunc func(id NodeID, depth int) bool

// Walk visits the tree in pre-order starting at the root.
func (t *Tree) Walk(fn WalkFunc) {
	if len(t.nodes) == 0 {
		return
	}

	t.walk(0, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn WalkFunc) {
	if !fn(id, depth) {
		return
	}

	for _, child := range t.nodes[id].Children {
		t.walk(child, depth+1, fn)
	}
}

// HasError reports whether any node of the snapshot is an error or missing
// node.
func (t *Tree) HasError() bool {
	for _, n := range t.nodes {
		if n.Error || n.Missing {
			return true
		}
	}

	return false
}

// SyntaxIssue describes one error or missing node.
type SyntaxIssue struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    string `json:"kind"`
	Missing bool   `json:"missing"`
	Text    string `json:"text,omitempty"`
}

const maxIssueText = 50

// SyntaxIssues lists error and missing nodes in document order. Lines are
// one-based.
func (t *Tree) SyntaxIssues() []SyntaxIssue {
	var issues []SyntaxIssue

	for id, n := range t.nodes {
		if !n.Error && !n.Missing {
			continue
		}

		text := string(t.Text(NodeID(id)))
		if len(text) > maxIssueText {
			text = text[:maxIssueText-3] + "..."
		}

		issues = append(issues, SyntaxIssue{
			Line:    n.Position.Row + 1,
			Column:  n.Position.Column,
			Kind:    n.Kind,
			Missing: n.Missing,
			Text:    text,
		})
	}

	return issues
}
