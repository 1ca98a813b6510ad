package model

// PoolSummary describes the snippets pooled for one grammar kind.
type PoolSummary struct {
	Kind     string
	Count    int
	Usable   bool
	Previews []string
}
