package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/recallhq/recall/pkg/memory"
)

// storeMemoryRequest is the body for POST /memory.
type storeMemoryRequest struct {
	ConversationID  string         `json:"conversation_id"`
	SessionID       string         `json:"session_id"`
	Role            string         `json:"role"`
	Content         string         `json:"content"`
	ContextType     string         `json:"context_type"`
	ImportanceScore *float64       `json:"importance_score"`
	Tags            []string       `json:"tags"`
	Metadata        map[string]any `json:"metadata"`
	TTLSeconds      int            `json:"ttl_seconds"`
	RelatedIDs      []string       `json:"related_ids"`
}

// relateRequest is the body for POST /memory/relate.
type relateRequest struct {
	SourceID         string         `json:"source_id"`
	TargetID         string         `json:"target_id"`
	RelationshipType string         `json:"relationship_type"`
	Strength         *float64       `json:"strength"`
	Metadata         map[string]any `json:"metadata"`
}

// entriesResponse wraps a list of entries with its count.
type entriesResponse struct {
	ConversationID string          `json:"conversation_id,omitempty"`
	MemoryID       string          `json:"memory_id,omitempty"`
	Count          int             `json:"count"`
	Entries        []*memory.Entry `json:"entries"`
}

func (s *Server) handleStoreMemory(c *fiber.Ctx) error {
	var req storeMemoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	entry, err := s.svc.Memories.Store(c.Context(), memory.StoreParams{
		ConversationID:  req.ConversationID,
		SessionID:       req.SessionID,
		Role:            req.Role,
		Content:         req.Content,
		ContextType:     memory.ContextType(req.ContextType),
		ImportanceScore: req.ImportanceScore,
		Tags:            req.Tags,
		Metadata:        req.Metadata,
		TTLSeconds:      req.TTLSeconds,
		RelatedIDs:      req.RelatedIDs,
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (s *Server) handleRetrieveMemory(c *fiber.Ctx) error {
	conversationID := c.Params("conversation")

	// importance_score is accepted as an alias for min_importance.
	minImportance := c.QueryFloat("min_importance")
	if c.Query("min_importance") == "" {
		minImportance = c.QueryFloat("importance_score")
	}

	entries, err := s.svc.Memories.Retrieve(c.Context(), memory.RetrieveParams{
		ConversationID: conversationID,
		ContextType:    memory.ContextType(c.Query("context_type")),
		Tags:           splitList(c.Query("tags")),
		MinImportance:  minImportance,
		Limit:          c.QueryInt("limit"),
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(entriesResponse{
		ConversationID: conversationID,
		Count:          len(entries),
		Entries:        entries,
	})
}

func (s *Server) handleClearMemory(c *fiber.Ctx) error {
	conversationID := c.Params("conversation")

	deleted, err := s.svc.Memories.Clear(c.Context(), conversationID)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"conversation_id": conversationID,
		"deleted":         deleted,
	})
}

func (s *Server) handleRelate(c *fiber.Ctx) error {
	var req relateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	rel, err := s.svc.Graph.Relate(c.Context(), memory.RelateParams{
		SourceID: req.SourceID,
		TargetID: req.TargetID,
		Type:     req.RelationshipType,
		Strength: req.Strength,
		Metadata: req.Metadata,
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(rel)
}

func (s *Server) handleBuildContext(c *fiber.Ctx) error {
	conversationID := c.Params("conversation")

	types := make([]memory.ContextType, 0)
	for _, t := range splitList(c.Query("context_types")) {
		types = append(types, memory.ContextType(t))
	}

	text, err := s.svc.Contexts.Build(c.Context(), memory.BuildParams{
		ConversationID: conversationID,
		ContextTypes:   types,
		MaxEntries:     c.QueryInt("max_entries"),
		MinImportance:  c.QueryFloat("min_importance"),
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"conversation_id": conversationID,
		"context":         text,
	})
}

func (s *Server) handleRelatedEntries(c *fiber.Ctx) error {
	memoryID := c.Params("id")

	entries, err := s.svc.Graph.Related(c.Context(), memoryID, c.QueryInt("limit"))
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(entriesResponse{
		MemoryID: memoryID,
		Count:    len(entries),
		Entries:  entries,
	})
}

func (s *Server) handleRelationships(c *fiber.Ctx) error {
	memoryID := c.Params("id")

	rels, err := s.svc.Graph.RelationshipsFor(c.Context(), memoryID)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"memory_id":     memoryID,
		"count":         len(rels),
		"relationships": rels,
	})
}

func (s *Server) handleSearchByTags(c *fiber.Ctx) error {
	tags := splitList(c.Query("tags"))
	if len(tags) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "tags parameter required"})
	}

	entries, err := s.svc.Memories.SearchByTags(c.Context(), tags, c.QueryInt("limit"))
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(entriesResponse{
		Count:   len(entries),
		Entries: entries,
	})
}

// splitList parses a comma-separated query value, dropping empty items.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
