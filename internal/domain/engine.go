package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pmezard/go-difflib/difflib"

	"splicer.dev/pkg/splicer/internal/adapter"
	"splicer.dev/pkg/splicer/internal/cst"
	m "splicer.dev/pkg/splicer/internal/model"
)

// ErrInvalidBounds is returned when snippet bounds are empty or negative.
var ErrInvalidBounds = errors.New("invalid snippet bounds")

// Mutator produces a mutated variant of a Rust buffer.
type Mutator interface {
	Mutate(ctx context.Context, src []byte, budget int, seed int64) (*Session, error)
}

// MutationEngine splices same-kind snippets into a buffer. It holds only
// configuration and can be shared across goroutines; all per-run state lives
// in the Session it returns.
type MutationEngine struct {
	provider adapter.TreeProvider
	policy   *SafetyPolicy
	bounds   SnippetBounds
}

// EngineOption customizes a MutationEngine.
type EngineOption func(*MutationEngine)

// WithSafetyPolicy replaces the default identifier policy.
func WithSafetyPolicy(policy *SafetyPolicy) EngineOption {
	return func(e *MutationEngine) {
		e.policy = policy
	}
}

// WithSnippetBounds changes the length bounds of pooled snippets.
func WithSnippetBounds(bounds SnippetBounds) EngineOption {
	return func(e *MutationEngine) {
		e.bounds = bounds
	}
}

// NewMutationEngine builds an engine parsing with provider.
func NewMutationEngine(provider adapter.TreeProvider, opts ...EngineOption) *MutationEngine {
	engine := &MutationEngine{
		provider: provider,
		policy:   DefaultSafetyPolicy(),
		bounds:   DefaultSnippetBounds(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Stats counts what happened during a session.
type Stats struct {
	Iterations    int
	Attempts      int
	NoAlternative int
	Rejections    map[RejectReason]int
}

// Rejected returns the total number of policy rejections.
func (s Stats) Rejected() int {
	total := 0
	for _, n := range s.Rejections {
		total += n
	}

	return total
}

// Session is the outcome of one Mutate call.
type Session struct {
	Original []byte
	// Output is nil when no replacement was applied.
	Output        []byte
	Records       []m.MutationRecord
	Pool          *NodePool
	FunctionNames FunctionNameRegistry
	Stats         Stats
	// SyntaxIssues come from the diagnostic reparse of Output.
	SyntaxIssues []cst.SyntaxIssue
	Budget       int
	Seed         int64
}

// Applied returns the number of accepted replacements.
func (s *Session) Applied() int {
	return len(s.Records)
}

// NoResult reports whether the session produced no output.
func (s *Session) NoResult() bool {
	return s.Output == nil
}

// SyntaxValid reports whether the output reparsed without error nodes.
func (s *Session) SyntaxValid() bool {
	return len(s.SyntaxIssues) == 0
}

// Summary converts the session into its display form.
func (s *Session) Summary(input, output m.Path) m.SessionSummary {
	return m.SessionSummary{
		Input:        input,
		Output:       output,
		Budget:       s.Budget,
		Seed:         s.Seed,
		Records:      s.Records,
		SyntaxIssues: s.SyntaxIssues,
	}
}

// Diff renders a unified diff between the original buffer and the output.
// It returns an empty string when there is no output.
func (s *Session) Diff(name string) (string, error) {
	if s.NoResult() {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(s.Original)),
		B:        difflib.SplitLines(string(s.Output)),
		FromFile: name,
		ToFile:   name + " (mutated)",
		Context:  3,
	})
}

// Mutate applies up to budget replacements to src. Candidates are re-ranked
// from a fresh parse after every accepted edit, and the loop stops early when
// a full pass accepts nothing. A budget of zero or less yields a session
// with no result.
func (e *MutationEngine) Mutate(ctx context.Context, src []byte, budget int, seed int64) (*Session, error) {
	if e.provider == nil {
		return nil, adapter.ErrGrammarUnavailable
	}

	if e.bounds.Min < 0 || e.bounds.Min > e.bounds.Max {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, e.bounds.Min, e.bounds.Max)
	}

	session := &Session{
		Original: bytes.Clone(src),
		Budget:   budget,
		Seed:     seed,
		Stats:    Stats{Rejections: make(map[RejectReason]int)},
	}

	if budget <= 0 {
		slog.Debug("budget exhausted before start", "budget", budget)
		return session, nil
	}

	tree, err := e.provider.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("parse original: %w", err)
	}

	session.Pool = CollectNodePool(tree, e.bounds)
	session.FunctionNames = BuildFunctionNameRegistry(tree)

	slog.Debug("session prepared",
		"kinds", len(session.Pool.Kinds()),
		"functions", session.FunctionNames.Names(),
		"budget", budget,
		"seed", seed)

	run := &sessionRun{
		engine:  e,
		session: session,
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // reproducibility, not security
		buf:     bytes.Clone(src),
	}

	for len(session.Records) < budget {
		session.Stats.Iterations++

		applied, err := run.pass(tree)
		if err != nil {
			return nil, err
		}

		if !applied {
			slog.Debug("no candidate accepted, stopping", "applied", len(session.Records))
			break
		}

		tree, err = e.provider.Parse(ctx, run.buf)
		if err != nil {
			return nil, fmt.Errorf("reparse after replacement %d: %w", len(session.Records), err)
		}

		slog.Debug("reparsed buffer", "size", len(run.buf), "generation", tree.Generation())
	}

	if len(session.Records) == 0 {
		return session, nil
	}

	session.Output = run.buf

	e.diagnose(ctx, session)

	return session, nil
}

// diagnose reparses the output and records syntax issues. It never changes
// the output.
func (e *MutationEngine) diagnose(ctx context.Context, session *Session) {
	tree, err := e.provider.Parse(ctx, session.Output)
	if err != nil {
		slog.Warn("diagnostic reparse failed", "error", err)
		return
	}

	session.SyntaxIssues = tree.SyntaxIssues()

	for _, issue := range session.SyntaxIssues {
		slog.Warn("syntax issue in mutated output",
			"line", issue.Line,
			"column", issue.Column,
			"kind", issue.Kind,
			"missing", issue.Missing)
	}
}

type sessionRun struct {
	engine  *MutationEngine
	session *Session
	rng     *rand.Rand
	buf     []byte
}

// pass walks the ranked candidates of tree and applies the first replacement
// that gets through the policy.
func (r *sessionRun) pass(tree *cst.Tree) (bool, error) {
	selection := SelectCandidates(tree, r.session.Pool)

	for _, candidate := range selection.Ranked {
		node, err := tree.Resolve(candidate.Ref)
		if err != nil {
			return false, fmt.Errorf("resolve candidate: %w", err)
		}

		current := tree.Text(candidate.Ref.ID)

		alternatives := r.session.Pool.Alternatives(node.Kind, current)
		if len(alternatives) == 0 {
			r.session.Stats.NoAlternative++
			continue
		}

		r.session.Stats.Attempts++

		replacement := alternatives[r.rng.Intn(len(alternatives))]

		if node.Kind == KindIdentifier {
			reason := r.engine.policy.Check(IdentifierCheck{
				Name:         string(current),
				Replacement:  string(replacement),
				Ordinal:      candidate.Ordinal,
				FunctionName: IsFunctionNamePosition(tree, candidate.Ref.ID),
			}, selection.Tracker, r.session.FunctionNames)

			if reason != Accepted {
				r.session.Stats.Rejections[reason]++

				slog.Debug("skipping unsafe identifier replacement",
					"name", string(current),
					"replacement", string(replacement),
					"reason", reason.String())

				continue
			}
		}

		record := m.MutationRecord{
			Kind:        node.Kind,
			Start:       node.Start,
			End:         node.End,
			Original:    bytes.Clone(current),
			Replacement: bytes.Clone(replacement),
		}

		r.buf = splice(r.buf, node.Start, node.End, replacement)
		r.session.Records = append(r.session.Records, record)

		slog.Info("applied replacement",
			"n", len(r.session.Records),
			"kind", node.Kind,
			"depth", candidate.Depth,
			"start", node.Start,
			"end", node.End,
			"original", m.Preview(current, previewLen),
			"replacement", m.Preview(replacement, previewLen))

		return true, nil
	}

	return false, nil
}

// splice returns buf with [start, end) replaced by replacement.
func splice(buf []byte, start, end int, replacement []byte) []byte {
	out := make([]byte, 0, len(buf)-(end-start)+len(replacement))
	out = append(out, buf[:start]...)
	out = append(out, replacement...)

	return append(out, buf[end:]...)
}
