package memory

import (
	"context"
	"time"
)

// Filter narrows a QueryEntries call. Zero-value fields are not applied,
// so filters compose conjunctively: every set field must match.
type Filter struct {
	// ConversationID scopes the query to one conversation. Empty means all.
	ConversationID string

	// ContextType restricts results to one context type when set.
	ContextType ContextType

	// Tags restricts results to entries carrying at least one of these tags.
	Tags []string

	// MinImportance drops entries scored below this value.
	MinImportance float64

	// Limit caps the number of returned entries. Zero means no cap.
	Limit int
}

// Store is the persistence contract for memory entries and relationships.
//
// Implementations must order QueryEntries results by importance score
// descending then timestamp descending, and RelatedEntries by edge strength
// descending then target importance descending. All operations are atomic at
// the single-row level only; no multi-row transactional guarantees are made,
// and readers must tolerate relationships whose endpoints have been deleted.
type Store interface {
	// PutEntry persists a new entry.
	PutEntry(ctx context.Context, e *Entry) error

	// GetEntry retrieves an entry by ID, returning NotFoundError when absent.
	GetEntry(ctx context.Context, id string) (*Entry, error)

	// HasEntry reports whether an entry exists.
	HasEntry(ctx context.Context, id string) (bool, error)

	// QueryEntries returns entries matching the filter, ordered by
	// importance score descending then timestamp descending. An empty
	// result is not an error.
	QueryEntries(ctx context.Context, f Filter) ([]*Entry, error)

	// DeleteConversation removes every entry in a conversation, cascading
	// deletion of edges touching a removed entry, and returns the number of
	// entries removed. Idempotent: zero when none existed.
	DeleteConversation(ctx context.Context, conversationID string) (int, error)

	// ConversationCounts returns the entry count per conversation.
	ConversationCounts(ctx context.Context) (map[string]int, error)

	// TrimConversation deletes all but the keep highest-ranked entries of a
	// conversation, ranked by importance then recency, cascading deletion of
	// edges touching a trimmed entry, and returns the number deleted.
	TrimConversation(ctx context.Context, conversationID string, keep int) (int, error)

	// DeleteExpired removes every entry whose own TTL has elapsed at now,
	// cascading deletion of relationships referencing a removed entry on
	// either side. Returns the number of entries removed.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)

	// PutRelationship persists a new relationship edge.
	PutRelationship(ctx context.Context, r *Relationship) error

	// RelatedEntries returns the entries reachable over outgoing edges from
	// the given entry, one hop, ordered by edge strength descending then
	// target importance descending. Edges whose target no longer exists are
	// skipped.
	RelatedEntries(ctx context.Context, id string, limit int) ([]*Entry, error)

	// RelationshipsFor returns every relationship where the entry appears as
	// source or target, ordered by strength descending.
	RelationshipsFor(ctx context.Context, id string) ([]*Relationship, error)

	// RelatedIDs returns the distinct target IDs of the entry's outgoing
	// edges. Used to derive an entry's relationship list on read.
	RelatedIDs(ctx context.Context, id string) ([]string, error)

	// Close releases store resources.
	Close() error
}
