package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRelatedLimit caps Related results when the caller does not.
const DefaultRelatedLimit = 10

// Graph manages the directed, weighted relationship edges between entries.
type Graph struct {
	store  Store
	logger *zap.Logger
}

// NewGraph creates a Graph over the given store.
func NewGraph(store Store, logger *zap.Logger) *Graph {
	return &Graph{store: store, logger: logger}
}

// RelateParams are the inputs for creating a relationship edge.
// Strength defaults to 1.0 when nil.
type RelateParams struct {
	SourceID string
	TargetID string
	Type     string
	Strength *float64
	Metadata map[string]any
}

// Relate creates a directed edge from source to target. Both endpoints must
// resolve to existing entries at call time; the check is best-effort, and a
// concurrent delete can still leave a dangling edge that readers skip.
func (g *Graph) Relate(ctx context.Context, p RelateParams) (*Relationship, error) {
	strength := 1.0
	if p.Strength != nil {
		strength = *p.Strength
	}

	rel := &Relationship{
		ID:        uuid.NewString(),
		SourceID:  p.SourceID,
		TargetID:  p.TargetID,
		Type:      p.Type,
		Strength:  strength,
		Metadata:  p.Metadata,
		CreatedAt: time.Now().UTC(),
	}

	if err := rel.Validate(); err != nil {
		return nil, err
	}

	for _, id := range []string{p.SourceID, p.TargetID} {
		ok, err := g.store.HasEntry(ctx, id)
		if err != nil {
			return nil, storeErr("check entry", err)
		}
		if !ok {
			return nil, NotFoundError{Kind: "entry", ID: id}
		}
	}

	if err := g.store.PutRelationship(ctx, rel); err != nil {
		return nil, storeErr("put relationship", err)
	}

	g.logger.Debug("related entries",
		zap.String("source_id", rel.SourceID),
		zap.String("target_id", rel.TargetID),
		zap.String("type", rel.Type),
		zap.Float64("strength", rel.Strength),
	)

	return rel, nil
}

// Related returns the entries one hop away over outgoing edges, ordered by
// edge strength descending then target importance descending.
func (g *Graph) Related(ctx context.Context, memoryID string, limit int) ([]*Entry, error) {
	if memoryID == "" {
		return nil, ValidationError{Field: "memory_id", Reason: "must not be empty"}
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	entries, err := g.store.RelatedEntries(ctx, memoryID, limit)
	if err != nil {
		return nil, storeErr("query related entries", err)
	}
	return entries, nil
}

// RelationshipsFor returns every edge touching the entry, as source or
// target, for display purposes.
func (g *Graph) RelationshipsFor(ctx context.Context, memoryID string) ([]*Relationship, error) {
	if memoryID == "" {
		return nil, ValidationError{Field: "memory_id", Reason: "must not be empty"}
	}

	rels, err := g.store.RelationshipsFor(ctx, memoryID)
	if err != nil {
		return nil, storeErr("query relationships", err)
	}
	return rels, nil
}
