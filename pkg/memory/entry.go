// Package memory provides the conversation memory layer for the recall system.
//
// Entries are importance-scored, tagged pieces of conversation context grouped
// by conversation and session. Directed, weighted relationships link entries
// into a graph, and the [ContextBuilder] assembles a bounded text blob from
// ranked entries plus their one-hop neighbors for downstream prompt injection.
//
// The [Store] interface is the persistence contract. Implementations live
// under pkg/storage; the in-memory driver is the default backend and the one
// the test suites use.
package memory

import (
	"fmt"
	"time"
)

// DefaultSessionID is used when a caller does not name a session.
const DefaultSessionID = "default"

// DefaultTTLSeconds is the time-to-live applied to entries stored without one.
const DefaultTTLSeconds = 3600

// ContextType classifies the semantic role of a memory entry.
type ContextType string

const (
	ContextConversation  ContextType = "conversation"
	ContextCodeAnalysis  ContextType = "code_analysis"
	ContextProjectTask   ContextType = "project_task"
	ContextWebContent    ContextType = "web_content"
	ContextDatabaseQuery ContextType = "database_query"
	ContextTestResult    ContextType = "test_result"
	ContextReasoningStep ContextType = "reasoning_step"
	ContextKnowledgeBase ContextType = "knowledge_base"
)

var validContextTypes = map[ContextType]bool{
	ContextConversation:  true,
	ContextCodeAnalysis:  true,
	ContextProjectTask:   true,
	ContextWebContent:    true,
	ContextDatabaseQuery: true,
	ContextTestResult:    true,
	ContextReasoningStep: true,
	ContextKnowledgeBase: true,
}

// Valid reports whether ct is one of the known context types.
func (ct ContextType) Valid() bool {
	return validContextTypes[ct]
}

// Entry is a single stored memory entry.
//
// ID and Timestamp are set server-side at creation and never change. Entries
// are never updated in place; they are removed by an explicit per-conversation
// clear, by TTL expiry, or by conversation-size trimming.
type Entry struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversation_id"`
	SessionID      string         `json:"session_id"`
	Role           string         `json:"role"`
	Content        string         `json:"content"`
	ContextType    ContextType    `json:"context_type"`
	ImportanceScore float64       `json:"importance_score"`
	Tags           []string       `json:"tags,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	TTLSeconds     int            `json:"ttl_seconds"`
	Timestamp      time.Time      `json:"timestamp"`

	// Relationships holds the IDs of entries this entry points to. It is
	// derived from the relationship graph on read, never stored.
	Relationships []string `json:"relationships,omitempty"`
}

// Validate checks the invariants that must hold before an entry is written.
func (e *Entry) Validate() error {
	if e.ConversationID == "" {
		return ValidationError{Field: "conversation_id", Reason: "must not be empty"}
	}
	if e.Content == "" {
		return ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if e.ImportanceScore < 0 || e.ImportanceScore > 1 {
		return ValidationError{
			Field:  "importance_score",
			Reason: fmt.Sprintf("must be in [0,1], got %g", e.ImportanceScore),
		}
	}
	if !e.ContextType.Valid() {
		return ValidationError{
			Field:  "context_type",
			Reason: fmt.Sprintf("unknown context type %q", e.ContextType),
		}
	}
	if e.TTLSeconds <= 0 {
		return ValidationError{Field: "ttl_seconds", Reason: "must be positive"}
	}
	return nil
}

// ExpiresAt returns the instant after which the entry is eligible for expiry.
func (e *Entry) ExpiresAt() time.Time {
	return e.Timestamp.Add(time.Duration(e.TTLSeconds) * time.Second)
}

// Expired reports whether the entry's own TTL has elapsed at the given time.
func (e *Entry) Expired(now time.Time) bool {
	return e.ExpiresAt().Before(now)
}

// HasTag reports whether the entry carries any of the given tags.
func (e *Entry) HasTag(tags ...string) bool {
	for _, want := range tags {
		for _, got := range e.Tags {
			if got == want {
				return true
			}
		}
	}
	return false
}
