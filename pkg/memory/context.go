package memory

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultMaxContextEntries bounds each context section.
	DefaultMaxContextEntries = 20

	// maxRelatedSources bounds how many related-entry IDs are expanded.
	maxRelatedSources = 5

	// maxRelatedPerSource bounds the one-hop fetch per related ID.
	maxRelatedPerSource = 3

	// noContextFallback is returned when nothing was collected.
	noContextFallback = "No relevant context found."
)

// ContextBuilder assembles a bounded, relevance-ranked text blob from a
// conversation's entries plus their one-hop related entries. Breadth is
// bounded by the requested context types and per-section entry caps, depth by
// the single related hop, keeping output size predictable for prompt
// injection.
type ContextBuilder struct {
	manager *Manager
	graph   *Graph
	logger  *zap.Logger
}

// NewContextBuilder creates a ContextBuilder over the given manager and graph.
func NewContextBuilder(manager *Manager, graph *Graph, logger *zap.Logger) *ContextBuilder {
	return &ContextBuilder{manager: manager, graph: graph, logger: logger}
}

// BuildParams shape a Build call. With ContextTypes set, one labeled section
// is emitted per type; otherwise a single conversation-wide section.
type BuildParams struct {
	ConversationID string
	ContextTypes   []ContextType
	MaxEntries     int
	MinImportance  float64
}

// Build assembles the context text. Calling it twice with identical arguments
// and no intervening writes returns identical text.
func (b *ContextBuilder) Build(ctx context.Context, p BuildParams) (string, error) {
	if p.ConversationID == "" {
		return "", ValidationError{Field: "conversation_id", Reason: "must not be empty"}
	}

	maxEntries := p.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxContextEntries
	}

	var sections []string
	var fetched []*Entry

	if len(p.ContextTypes) > 0 {
		for _, ct := range p.ContextTypes {
			entries, err := b.manager.Retrieve(ctx, RetrieveParams{
				ConversationID: p.ConversationID,
				ContextType:    ct,
				MinImportance:  p.MinImportance,
				Limit:          maxEntries,
			})
			if err != nil {
				return "", err
			}
			if len(entries) == 0 {
				continue
			}

			heading := "## " + strings.ToUpper(string(ct)) + " CONTEXT:"
			sections = append(sections, renderSection(heading, entries))
			fetched = append(fetched, entries...)
		}
	} else {
		entries, err := b.manager.Retrieve(ctx, RetrieveParams{
			ConversationID: p.ConversationID,
			MinImportance:  p.MinImportance,
			Limit:          maxEntries,
		})
		if err != nil {
			return "", err
		}
		if len(entries) > 0 {
			sections = append(sections, renderSection("## CONVERSATION CONTEXT:", entries))
			fetched = append(fetched, entries...)
		}
	}

	if related := b.relatedSection(ctx, fetched); related != "" {
		sections = append(sections, related)
	}

	if len(sections) == 0 {
		return noContextFallback, nil
	}

	return strings.Join(sections, "\n\n"), nil
}

// relatedSection expands up to maxRelatedSources distinct related-entry IDs
// referenced by the fetched entries, one hop each. Lookup failures are logged
// and skipped so a dangling reference never fails the build.
func (b *ContextBuilder) relatedSection(ctx context.Context, fetched []*Entry) string {
	var sourceIDs []string
	seen := make(map[string]bool)

	for _, e := range fetched {
		for _, id := range e.Relationships {
			if seen[id] {
				continue
			}
			seen[id] = true
			sourceIDs = append(sourceIDs, id)
			if len(sourceIDs) == maxRelatedSources {
				break
			}
		}
		if len(sourceIDs) == maxRelatedSources {
			break
		}
	}

	if len(sourceIDs) == 0 {
		return ""
	}

	var lines []string
	rendered := make(map[string]bool)

	for _, id := range sourceIDs {
		entries, err := b.graph.Related(ctx, id, maxRelatedPerSource)
		if err != nil {
			b.logger.Warn("skipping related entries",
				zap.String("memory_id", id),
				zap.Error(err),
			)
			continue
		}
		for _, e := range entries {
			if rendered[e.ID] {
				continue
			}
			rendered[e.ID] = true
			lines = append(lines, "[RELATED] "+e.Content)
		}
	}

	if len(lines) == 0 {
		return ""
	}

	return "## RELATED CONTEXT:\n" + strings.Join(lines, "\n")
}

func renderSection(heading string, entries []*Entry) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, heading)
	for _, e := range entries {
		lines = append(lines, "["+strings.ToUpper(e.Role)+"] "+e.Content)
	}
	return strings.Join(lines, "\n")
}
