// Package inmemory provides a map-backed storage driver. It is the default
// backend when no database is configured and the one the test suites use.
package inmemory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/recallhq/recall/pkg/memory"
)

// Driver implements memory.Store using in-memory maps guarded by a RWMutex.
type Driver struct {
	mu sync.RWMutex

	// entries maps entry ID to the stored entry.
	entries map[string]*memory.Entry

	// relationships is the append-only edge log.
	relationships []*memory.Relationship

	// seq orders entries with identical timestamps so ranking is stable.
	seq     map[string]uint64
	nextSeq uint64
}

// NewDriver creates an empty in-memory driver.
func NewDriver() *Driver {
	return &Driver{
		entries: make(map[string]*memory.Entry),
		seq:     make(map[string]uint64),
	}
}

// PutEntry stores a new entry.
func (d *Driver) PutEntry(_ context.Context, e *memory.Entry) error {
	if e == nil {
		return errors.New("cannot store nil entry")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.entries[e.ID]; ok {
		return errors.New("duplicate entry id: " + e.ID)
	}

	stored := *e
	stored.Relationships = nil
	d.entries[e.ID] = &stored
	d.nextSeq++
	d.seq[e.ID] = d.nextSeq
	return nil
}

// GetEntry retrieves an entry by ID.
func (d *Driver) GetEntry(_ context.Context, id string) (*memory.Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.entries[id]
	if !ok {
		return nil, memory.NotFoundError{Kind: "entry", ID: id}
	}

	out := *e
	return &out, nil
}

// HasEntry reports whether an entry exists.
func (d *Driver) HasEntry(_ context.Context, id string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.entries[id]
	return ok, nil
}

// QueryEntries returns entries matching the filter, ordered by importance
// score descending then timestamp descending.
func (d *Driver) QueryEntries(_ context.Context, f memory.Filter) ([]*memory.Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var matched []*memory.Entry
	for _, e := range d.entries {
		if !d.matches(e, f) {
			continue
		}
		out := *e
		matched = append(matched, &out)
	}

	d.rank(matched)

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (d *Driver) matches(e *memory.Entry, f memory.Filter) bool {
	if f.ConversationID != "" && e.ConversationID != f.ConversationID {
		return false
	}
	if f.ContextType != "" && e.ContextType != f.ContextType {
		return false
	}
	if len(f.Tags) > 0 && !e.HasTag(f.Tags...) {
		return false
	}
	if e.ImportanceScore < f.MinImportance {
		return false
	}
	return true
}

// rank sorts entries by importance descending, then timestamp descending,
// then insertion order descending for entries written in the same instant.
func (d *Driver) rank(entries []*memory.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.ImportanceScore != b.ImportanceScore {
			return a.ImportanceScore > b.ImportanceScore
		}
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return d.seq[a.ID] > d.seq[b.ID]
	})
}

// DeleteConversation removes every entry in a conversation along with the
// relationship edges touching those entries.
func (d *Driver) DeleteConversation(_ context.Context, conversationID string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := make(map[string]bool)
	for id, e := range d.entries {
		if e.ConversationID == conversationID {
			delete(d.entries, id)
			delete(d.seq, id)
			removed[id] = true
		}
	}
	d.dropEdgesTouching(removed)
	return len(removed), nil
}

// ConversationCounts returns the entry count per conversation.
func (d *Driver) ConversationCounts(_ context.Context) (map[string]int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	counts := make(map[string]int)
	for _, e := range d.entries {
		counts[e.ConversationID]++
	}
	return counts, nil
}

// TrimConversation deletes all but the keep highest-ranked entries, cascading
// deletion of edges touching a trimmed entry.
func (d *Driver) TrimConversation(_ context.Context, conversationID string, keep int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var members []*memory.Entry
	for _, e := range d.entries {
		if e.ConversationID == conversationID {
			members = append(members, e)
		}
	}
	if len(members) <= keep {
		return 0, nil
	}

	d.rank(members)

	removed := make(map[string]bool)
	for _, e := range members[keep:] {
		delete(d.entries, e.ID)
		delete(d.seq, e.ID)
		removed[e.ID] = true
	}
	d.dropEdgesTouching(removed)
	return len(removed), nil
}

// DeleteExpired removes entries whose own TTL has elapsed, cascading deletion
// of relationships touching a removed entry on either side.
func (d *Driver) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	expired := make(map[string]bool)
	for id, e := range d.entries {
		if e.Expired(now) {
			expired[id] = true
		}
	}
	if len(expired) == 0 {
		return 0, nil
	}

	for id := range expired {
		delete(d.entries, id)
		delete(d.seq, id)
	}
	d.dropEdgesTouching(expired)

	return len(expired), nil
}

// dropEdgesTouching removes every edge with an endpoint in removed.
// Callers must hold the write lock.
func (d *Driver) dropEdgesTouching(removed map[string]bool) {
	if len(removed) == 0 {
		return
	}

	kept := d.relationships[:0]
	for _, r := range d.relationships {
		if removed[r.SourceID] || removed[r.TargetID] {
			continue
		}
		kept = append(kept, r)
	}
	d.relationships = kept
}

// PutRelationship appends a relationship edge.
func (d *Driver) PutRelationship(_ context.Context, r *memory.Relationship) error {
	if r == nil {
		return errors.New("cannot store nil relationship")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	stored := *r
	d.relationships = append(d.relationships, &stored)
	return nil
}

// RelatedEntries returns the one-hop targets of the entry's outgoing edges,
// ordered by edge strength descending then target importance descending.
// Edges whose target has been deleted are skipped.
func (d *Driver) RelatedEntries(_ context.Context, id string, limit int) ([]*memory.Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	type edge struct {
		rel    *memory.Relationship
		target *memory.Entry
	}

	var edges []edge
	for _, r := range d.relationships {
		if r.SourceID != id {
			continue
		}
		target, ok := d.entries[r.TargetID]
		if !ok {
			continue
		}
		edges = append(edges, edge{rel: r, target: target})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].rel.Strength != edges[j].rel.Strength {
			return edges[i].rel.Strength > edges[j].rel.Strength
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
		copied := *e.target
		out = append(out, &copied)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// RelationshipsFor returns every edge touching the entry, ordered by strength
// descending.
func (d *Driver) RelationshipsFor(_ context.Context, id string) ([]*memory.Relationship, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*memory.Relationship
	for _, r := range d.relationships {
		if r.SourceID == id || r.TargetID == id {
			copied := *r
			out = append(out, &copied)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Strength > out[j].Strength
	})
	return out, nil
}

// RelatedIDs returns the distinct target IDs of the entry's outgoing edges.
func (d *Driver) RelatedIDs(_ context.Context, id string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []string
	seen := make(map[string]bool)
	for _, r := range d.relationships {
		if r.SourceID != id || seen[r.TargetID] {
			continue
		}
		seen[r.TargetID] = true
		out = append(out, r.TargetID)
	}
	return out, nil
}

// EntryCount returns the number of stored entries.
func (d *Driver) EntryCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// RelationshipCount returns the number of stored edges.
func (d *Driver) RelationshipCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.relationships)
}

// Close is a no-op for the in-memory driver.
func (d *Driver) Close() error {
	return nil
}
