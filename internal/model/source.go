// Package model defines the records shared between the mutation engine, the
// batch orchestrator and the adapters that persist or display them.
package model

// Path represents a file system path.
type Path string

// File is a source file picked up for mutation.
type File struct {
	// FullPath is the path used to read the file.
	FullPath Path
	// ShortPath is FullPath relative to the discovery root.
	ShortPath Path
	// Index is the 1-based position of the file in discovery order.
	Index int
}
