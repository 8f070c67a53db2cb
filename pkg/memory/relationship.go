package memory

import (
	"fmt"
	"time"
)

// Relationship is a directed, weighted, typed edge between two entries.
//
// There is no uniqueness constraint on (source, target, type): relationships
// are append-only, and duplicates are permitted.
type Relationship struct {
	ID        string         `json:"id"`
	SourceID  string         `json:"source_memory_id"`
	TargetID  string         `json:"target_memory_id"`
	Type      string         `json:"relationship_type"`
	Strength  float64        `json:"strength"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Validate checks the invariants that must hold before a relationship is written.
func (r *Relationship) Validate() error {
	if r.SourceID == "" {
		return ValidationError{Field: "source_memory_id", Reason: "must not be empty"}
	}
	if r.TargetID == "" {
		return ValidationError{Field: "target_memory_id", Reason: "must not be empty"}
	}
	if r.Type == "" {
		return ValidationError{Field: "relationship_type", Reason: "must not be empty"}
	}
	if r.Strength < 0 || r.Strength > 1 {
		return ValidationError{
			Field:  "strength",
			Reason: fmt.Sprintf("must be in [0,1], got %g", r.Strength),
		}
	}
	return nil
}
