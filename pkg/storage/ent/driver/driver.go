// Package entdriver implements the storage contracts over an ent client.
// It is database-agnostic and is embedded by the sqlite and postgres drivers.
package entdriver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/storage/ent"
	"github.com/recallhq/recall/pkg/storage/ent/contextrelationship"
	"github.com/recallhq/recall/pkg/storage/ent/memoryentry"
)

// EntDriver provides memory storage operations using an ent client.
type EntDriver struct {
	Client *ent.Client
}

// PutEntry persists a new entry.
func (ed *EntDriver) PutEntry(ctx context.Context, e *memory.Entry) error {
	if e == nil {
		return errors.New("cannot store nil entry")
	}

	err := ed.Client.MemoryEntry.Create().
		SetID(e.ID).
		SetConversationID(e.ConversationID).
		SetSessionID(e.SessionID).
		SetRole(e.Role).
		SetContent(e.Content).
		SetContextType(string(e.ContextType)).
		SetImportanceScore(e.ImportanceScore).
		SetTags(e.Tags).
		SetMetadata(e.Metadata).
		SetTTLSeconds(e.TTLSeconds).
		SetTimestamp(e.Timestamp).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("could not execute entry creation: %w", err)
	}
	return nil
}

// GetEntry retrieves an entry by ID.
func (ed *EntDriver) GetEntry(ctx context.Context, id string) (*memory.Entry, error) {
	row, err := ed.Client.MemoryEntry.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, memory.NotFoundError{Kind: "entry", ID: id}
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entEntryToMemory(row), nil
}

// HasEntry reports whether an entry exists.
func (ed *EntDriver) HasEntry(ctx context.Context, id string) (bool, error) {
	return ed.Client.MemoryEntry.Query().
		Where(memoryentry.ID(id)).
		Exist(ctx)
}

// QueryEntries returns entries matching the filter, ordered by importance
// score descending then timestamp descending.
func (ed *EntDriver) QueryEntries(ctx context.Context, f memory.Filter) ([]*memory.Entry, error) {
	q := ed.Client.MemoryEntry.Query()

	if f.ConversationID != "" {
		q = q.Where(memoryentry.ConversationID(f.ConversationID))
	}
	if f.ContextType != "" {
		q = q.Where(memoryentry.ContextType(string(f.ContextType)))
	}
	if f.MinImportance > 0 {
		q = q.Where(memoryentry.ImportanceScoreGTE(f.MinImportance))
	}

	q = q.Order(
		ent.Desc(memoryentry.FieldImportanceScore),
		ent.Desc(memoryentry.FieldTimestamp),
	)

	// Tag matching is applied client-side: tags live in a JSON column and
	// array-overlap predicates are not portable across sqlite and postgres.
	// The limit is applied after filtering for the same reason.
	if len(f.Tags) == 0 && f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}

	var out []*memory.Entry
	for _, row := range rows {
		e := entEntryToMemory(row)
		if len(f.Tags) > 0 && !e.HasTag(f.Tags...) {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// DeleteConversation removes every entry in a conversation along with the
// relationship edges touching those entries.
func (ed *EntDriver) DeleteConversation(ctx context.Context, conversationID string) (int, error) {
	ids, err := ed.Client.MemoryEntry.Query().
		Where(memoryentry.ConversationID(conversationID)).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query conversation: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := ed.Client.MemoryEntry.Delete().
		Where(memoryentry.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete conversation: %w", err)
	}

	if err := ed.deleteEdgesTouching(ctx, ids); err != nil {
		return 0, err
	}
	return n, nil
}

// ConversationCounts returns the entry count per conversation.
func (ed *EntDriver) ConversationCounts(ctx context.Context) (map[string]int, error) {
	// A single-column select keeps this portable; the counting happens here
	// rather than in a dialect-specific GROUP BY.
	ids, err := ed.Client.MemoryEntry.Query().
		Select(memoryentry.FieldConversationID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversation ids: %w", err)
	}

	counts := make(map[string]int)
	for _, id := range ids {
		counts[id]++
	}
	return counts, nil
}

// TrimConversation deletes all but the keep highest-ranked entries, cascading
// deletion of edges touching a trimmed entry.
func (ed *EntDriver) TrimConversation(ctx context.Context, conversationID string, keep int) (int, error) {
	ids, err := ed.Client.MemoryEntry.Query().
		Where(memoryentry.ConversationID(conversationID)).
		Order(
			ent.Desc(memoryentry.FieldImportanceScore),
			ent.Desc(memoryentry.FieldTimestamp),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to rank conversation: %w", err)
	}
	if len(ids) <= keep {
		return 0, nil
	}

	trimmed := ids[keep:]
	n, err := ed.Client.MemoryEntry.Delete().
		Where(memoryentry.IDIn(trimmed...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to trim conversation: %w", err)
	}

	if err := ed.deleteEdgesTouching(ctx, trimmed); err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteExpired removes entries whose own TTL has elapsed at now, cascading
// deletion of relationships touching a removed entry on either side.
func (ed *EntDriver) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	rows, err := ed.Client.MemoryEntry.Query().
		Where(memoryentry.TimestampLT(now)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expiry candidates: %w", err)
	}

	var expired []string
	for _, row := range rows {
		deadline := row.Timestamp.Add(time.Duration(row.TTLSeconds) * time.Second)
		if deadline.Before(now) {
			expired = append(expired, row.ID)
		}
	}
	if len(expired) == 0 {
		return 0, nil
	}

	n, err := ed.Client.MemoryEntry.Delete().
		Where(memoryentry.IDIn(expired...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired entries: %w", err)
	}

	if err := ed.deleteEdgesTouching(ctx, expired); err != nil {
		return 0, err
	}

	return n, nil
}

// deleteEdgesTouching removes every edge with an endpoint among the ids.
func (ed *EntDriver) deleteEdgesTouching(ctx context.Context, ids []string) error {
	_, err := ed.Client.ContextRelationship.Delete().
		Where(contextrelationship.Or(
			contextrelationship.SourceMemoryIDIn(ids...),
			contextrelationship.TargetMemoryIDIn(ids...),
		)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cascade relationship deletion: %w", err)
	}
	return nil
}

// PutRelationship persists a new relationship edge.
func (ed *EntDriver) PutRelationship(ctx context.Context, r *memory.Relationship) error {
	if r == nil {
		return errors.New("cannot store nil relationship")
	}

	err := ed.Client.ContextRelationship.Create().
		SetID(r.ID).
		SetSourceMemoryID(r.SourceID).
		SetTargetMemoryID(r.TargetID).
		SetRelationshipType(r.Type).
		SetStrength(r.Strength).
		SetMetadata(r.Metadata).
		SetCreatedAt(r.CreatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("could not execute relationship creation: %w", err)
	}
	return nil
}

// RelatedEntries returns the one-hop targets of the entry's outgoing edges,
// ordered by edge strength descending then target importance descending.
// Edges whose target has been deleted are skipped.
func (ed *EntDriver) RelatedEntries(ctx context.Context, id string, limit int) ([]*memory.Entry, error) {
	rels, err := ed.Client.ContextRelationship.Query().
		Where(contextrelationship.SourceMemoryID(id)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query outgoing edges: %w", err)
	}

	// The importance tie-break needs the target rows, so the sort happens
	// here after fetching rather than in the edge query.
	type edge struct {
		strength float64
		target   *memory.Entry
	}

	var edges []edge
	for _, rel := range rels {
		row, err := ed.Client.MemoryEntry.Get(ctx, rel.TargetMemoryID)
		if err != nil {
			if ent.IsNotFound(err) {
				continue // dangling edge
			}
			return nil, fmt.Errorf("failed to get related entry: %w", err)
		}
		edges = append(edges, edge{strength: rel.Strength, target: entEntryToMemory(row)})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].strength != edges[j].strength {
			return edges[i].strength > edges[j].strength
		}
		return edges[i].target.ImportanceScore > edges[j].target.ImportanceScore
	})

	var out []*memory.Entry
	seen := make(map[string]bool)
	for _, e := range edges {
		if seen[e.target.ID] {
			continue
		}
		seen[e.target.ID] = true
		out = append(out, e.target)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// RelationshipsFor returns every edge touching the entry, as source or
// target, ordered by strength descending.
func (ed *EntDriver) RelationshipsFor(ctx context.Context, id string) ([]*memory.Relationship, error) {
	rows, err := ed.Client.ContextRelationship.Query().
		Where(contextrelationship.Or(
			contextrelationship.SourceMemoryID(id),
			contextrelationship.TargetMemoryID(id),
		)).
		Order(ent.Desc(contextrelationship.FieldStrength)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", err)
	}

	out := make([]*memory.Relationship, 0, len(rows))
	for _, row := range rows {
		out = append(out, entRelationshipToMemory(row))
	}
	return out, nil
}

// RelatedIDs returns the distinct target IDs of the entry's outgoing edges.
func (ed *EntDriver) RelatedIDs(ctx context.Context, id string) ([]string, error) {
	targets, err := ed.Client.ContextRelationship.Query().
		Where(contextrelationship.SourceMemoryID(id)).
		Select(contextrelationship.FieldTargetMemoryID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query related ids: %w", err)
	}

	var out []string
	seen := make(map[string]bool)
	for _, t := range targets {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out, nil
}

// Close closes the database connection.
func (ed *EntDriver) Close() error {
	return ed.Client.Close()
}

// Conversion helpers

func entEntryToMemory(row *ent.MemoryEntry) *memory.Entry {
	return &memory.Entry{
		ID:              row.ID,
		ConversationID:  row.ConversationID,
		SessionID:       row.SessionID,
		Role:            row.Role,
		Content:         row.Content,
		ContextType:     memory.ContextType(row.ContextType),
		ImportanceScore: row.ImportanceScore,
		Tags:            row.Tags,
		Metadata:        row.Metadata,
		TTLSeconds:      row.TTLSeconds,
		Timestamp:       row.Timestamp,
	}
}

func entRelationshipToMemory(row *ent.ContextRelationship) *memory.Relationship {
	return &memory.Relationship{
		ID:        row.ID,
		SourceID:  row.SourceMemoryID,
		TargetID:  row.TargetMemoryID,
		Type:      row.RelationshipType,
		Strength:  row.Strength,
		Metadata:  row.Metadata,
		CreatedAt: row.CreatedAt,
	}
}
