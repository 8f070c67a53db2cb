package memory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRetrieveLimit caps Retrieve results when the caller does not.
const DefaultRetrieveLimit = 50

// defaultImportance is applied when a caller stores without a score.
const defaultImportance = 0.5

// Manager owns the create/query/delete lifecycle of memory entries.
// It validates before any write and wraps raw store failures in StorageError.
type Manager struct {
	store  Store
	logger *zap.Logger
}

// NewManager creates a Manager over the given store.
func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// StoreParams are the inputs for storing a new entry. Zero-value optional
// fields receive defaults: session "default", importance 0.5, TTL 3600s.
type StoreParams struct {
	ConversationID string
	SessionID      string
	Role           string
	Content        string
	ContextType    ContextType

	// ImportanceScore is a pointer so an explicit 0 is distinguishable
	// from "not provided".
	ImportanceScore *float64

	Tags       []string
	Metadata   map[string]any
	TTLSeconds int

	// RelatedIDs optionally links the new entry to existing entries with
	// "references" edges. Edge creation is a separate write from the entry
	// insert; a missing target is skipped, not fatal.
	RelatedIDs []string
}

// Store validates and persists a new entry, returning it with its generated
// ID and server-assigned timestamp.
func (m *Manager) Store(ctx context.Context, p StoreParams) (*Entry, error) {
	score := defaultImportance
	if p.ImportanceScore != nil {
		score = *p.ImportanceScore
	}

	sessionID := p.SessionID
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	ttl := p.TTLSeconds
	if ttl == 0 {
		ttl = DefaultTTLSeconds
	}

	contextType := p.ContextType
	if contextType == "" {
		contextType = ContextConversation
	}

	entry := &Entry{
		ID:              uuid.NewString(),
		ConversationID:  p.ConversationID,
		SessionID:       sessionID,
		Role:            p.Role,
		Content:         p.Content,
		ContextType:     contextType,
		ImportanceScore: score,
		Tags:            p.Tags,
		Metadata:        p.Metadata,
		TTLSeconds:      ttl,
		Timestamp:       time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := m.store.PutEntry(ctx, entry); err != nil {
		return nil, storeErr("put entry", err)
	}

	// Link to related entries after the entry write. Each edge is an
	// independent write; a target deleted between the existence check and
	// the edge insert leaves a dangling edge that readers skip.
	for _, targetID := range p.RelatedIDs {
		rel := &Relationship{
			ID:        uuid.NewString(),
			SourceID:  entry.ID,
			TargetID:  targetID,
			Type:      "references",
			Strength:  1.0,
			CreatedAt: time.Now().UTC(),
		}

		ok, err := m.store.HasEntry(ctx, targetID)
		if err != nil {
			return nil, storeErr("check related entry", err)
		}
		if !ok {
			m.logger.Warn("skipping relationship to missing entry",
				zap.String("source_id", entry.ID),
				zap.String("target_id", targetID),
			)
			continue
		}

		if err := m.store.PutRelationship(ctx, rel); err != nil {
			return nil, storeErr("put relationship", err)
		}
		entry.Relationships = append(entry.Relationships, targetID)
	}

	m.logger.Debug("stored memory entry",
		zap.String("id", entry.ID),
		zap.String("conversation_id", entry.ConversationID),
		zap.String("context_type", string(entry.ContextType)),
		zap.Float64("importance_score", entry.ImportanceScore),
	)

	return entry, nil
}

// RetrieveParams narrow a Retrieve call. ContextType, Tags, and MinImportance
// filter conjunctively on top of the conversation scope.
type RetrieveParams struct {
	ConversationID string
	ContextType    ContextType
	Tags           []string
	MinImportance  float64
	Limit          int
}

// Retrieve returns the conversation's entries ordered by importance then
// recency, with each entry's relationship list derived from the graph.
// An empty result is an empty slice, never an error.
func (m *Manager) Retrieve(ctx context.Context, p RetrieveParams) ([]*Entry, error) {
	if p.ConversationID == "" {
		return nil, ValidationError{Field: "conversation_id", Reason: "must not be empty"}
	}
	if p.ContextType != "" && !p.ContextType.Valid() {
		return nil, ValidationError{Field: "context_type", Reason: "unknown context type " + string(p.ContextType)}
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultRetrieveLimit
	}

	entries, err := m.store.QueryEntries(ctx, Filter{
		ConversationID: p.ConversationID,
		ContextType:    p.ContextType,
		Tags:           p.Tags,
		MinImportance:  p.MinImportance,
		Limit:          limit,
	})
	if err != nil {
		return nil, storeErr("query entries", err)
	}

	for _, e := range entries {
		ids, err := m.store.RelatedIDs(ctx, e.ID)
		if err != nil {
			return nil, storeErr("query related ids", err)
		}
		e.Relationships = ids
	}

	return entries, nil
}

// SearchByTags returns entries across all conversations carrying at least one
// of the given tags, ordered by importance then recency.
func (m *Manager) SearchByTags(ctx context.Context, tags []string, limit int) ([]*Entry, error) {
	if len(tags) == 0 {
		return nil, ValidationError{Field: "tags", Reason: "must not be empty"}
	}
	if limit <= 0 {
		limit = DefaultRetrieveLimit
	}

	entries, err := m.store.QueryEntries(ctx, Filter{Tags: tags, Limit: limit})
	if err != nil {
		return nil, storeErr("search by tags", err)
	}
	return entries, nil
}

// Clear removes every entry in a conversation, returning the number removed.
// Relationships touching removed entries are left for readers to skip and the
// retention sweeps to collect.
func (m *Manager) Clear(ctx context.Context, conversationID string) (int, error) {
	if conversationID == "" {
		return 0, ValidationError{Field: "conversation_id", Reason: "must not be empty"}
	}

	n, err := m.store.DeleteConversation(ctx, conversationID)
	if err != nil {
		return 0, storeErr("delete conversation", err)
	}

	m.logger.Info("cleared conversation",
		zap.String("conversation_id", conversationID),
		zap.Int("removed", n),
	)
	return n, nil
}

// storeErr wraps a raw store failure in StorageError, passing through errors
// that already belong to the taxonomy.
func storeErr(op string, err error) error {
	var ve ValidationError
	var nf NotFoundError
	var se StorageError
	if errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &se) {
		return err
	}
	return StorageError{Op: op, Err: err}
}
