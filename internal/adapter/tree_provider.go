package adapter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"splicer.dev/pkg/splicer/internal/cst"
)

// ErrGrammarUnavailable is returned when the Rust grammar cannot be loaded.
// Nothing can be mutated without it.
var ErrGrammarUnavailable = errors.New("rust grammar unavailable")

// TreeProvider turns a byte buffer into a concrete syntax tree snapshot. The
// mutation engine calls it again after every accepted edit.
type TreeProvider interface {
	// Parse builds a fresh snapshot of src. The snapshot keeps its own copy of
	// src, so callers may keep editing their buffer.
	Parse(ctx context.Context, src []byte) (*cst.Tree, error)
}

// TreeSitterProvider is a TreeProvider backed by tree-sitter's Rust grammar.
type TreeSitterProvider struct {
	language *sitter.Language
}

// NewTreeSitterProvider loads the Rust grammar.
func NewTreeSitterProvider() (*TreeSitterProvider, error) {
	language := rust.GetLanguage()
	if language == nil {
		return nil, ErrGrammarUnavailable
	}

	return &TreeSitterProvider{language: language}, nil
}

// Parse parses src and copies the result into an arena snapshot. Every child
// is kept, named or anonymous.
func (p *TreeSitterProvider) Parse(ctx context.Context, src []byte) (*cst.Tree, error) {
	if p == nil || p.language == nil {
		return nil, ErrGrammarUnavailable
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(p.language)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	defer tree.Close()

	builder := cst.NewBuilder(src)
	if err := copyNode(builder, cst.NoNode, tree.RootNode()); err != nil {
		return nil, fmt.Errorf("copy tree: %w", err)
	}

	return builder.Build(), nil
}

func copyNode(builder *cst.Builder, parent cst.NodeID, node *sitter.Node) error {
	point := node.StartPoint()

	id, err := builder.Add(parent, cst.Node{
		Kind:     node.Type(),
		Start:    int(node.StartByte()),
		End:      int(node.EndByte()),
		Named:    node.IsNamed(),
		Error:    node.IsError(),
		Missing:  node.IsMissing(),
		Position: cst.Point{Row: int(point.Row), Column: int(point.Column)},
	})
	if err != nil {
		return err
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}

		if err := copyNode(builder, id, child); err != nil {
			return err
		}
	}

	return nil
}
