package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/recallhq/recall/pkg/memory"
)

var (
	memoryStoreToolName    = "memory_store"
	memoryStoreDescription = "Store a conversation entry in persistent memory. Returns the stored entry with its generated ID. Optionally links the new entry to existing entries via related_ids."

	memoryRetrieveToolName    = "memory_retrieve"
	memoryRetrieveDescription = "Retrieve stored entries for a conversation, ordered by importance then recency. Supports filtering by context type, tags, and minimum importance."

	memoryRelateToolName    = "memory_relate"
	memoryRelateDescription = "Create a typed, weighted relationship between two stored memory entries."

	memoryContextToolName    = "memory_context"
	memoryContextDescription = "Build a formatted context document from a conversation's stored entries, including related entries reachable through the relationship graph."

	memoryClearToolName    = "memory_clear"
	memoryClearDescription = "Delete all stored entries for a conversation. Returns the number of entries removed."
)

// MemoryStoreInput represents the input arguments for the memory_store tool.
type MemoryStoreInput struct {
	ConversationID  string         `json:"conversation_id" jsonschema:"the conversation this entry belongs to"`
	SessionID       string         `json:"session_id,omitempty" jsonschema:"session identifier (default: default)"`
	Role            string         `json:"role" jsonschema:"the speaker role: user, assistant, or system"`
	Content         string         `json:"content" jsonschema:"the entry text to store"`
	ContextType     string         `json:"context_type,omitempty" jsonschema:"entry category (default: conversation)"`
	ImportanceScore *float64       `json:"importance_score,omitempty" jsonschema:"importance in [0,1] (default: 0.5)"`
	Tags            []string       `json:"tags,omitempty" jsonschema:"free-form tags for later filtering"`
	Metadata        map[string]any `json:"metadata,omitempty" jsonschema:"arbitrary key/value metadata"`
	TTLSeconds      int            `json:"ttl_seconds,omitempty" jsonschema:"seconds until the entry expires (default: 3600)"`
	RelatedIDs      []string       `json:"related_ids,omitempty" jsonschema:"IDs of existing entries to link with references edges"`
}

// MemoryStoreOutput represents the output of the memory_store tool.
type MemoryStoreOutput struct {
	Entry *memory.Entry `json:"entry"`
}

func (s *Server) handleMemoryStore(ctx context.Context, _ *mcp.CallToolRequest, input MemoryStoreInput) (*mcp.CallToolResult, MemoryStoreOutput, error) {
	entry, err := s.config.Memories.Store(ctx, memory.StoreParams{
		ConversationID:  input.ConversationID,
		SessionID:       input.SessionID,
		Role:            input.Role,
		Content:         input.Content,
		ContextType:     memory.ContextType(input.ContextType),
		ImportanceScore: input.ImportanceScore,
		Tags:            input.Tags,
		Metadata:        input.Metadata,
		TTLSeconds:      input.TTLSeconds,
		RelatedIDs:      input.RelatedIDs,
	})
	if err != nil {
		s.config.Logger.Debug("memory store failed", zap.Error(err))
		return toolError("Failed to store entry: %v", err), MemoryStoreOutput{}, nil
	}

	output := MemoryStoreOutput{Entry: entry}

	result, err := textResult(output)
	if err != nil {
		return toolError("Failed to serialize results: %v", err), MemoryStoreOutput{}, nil
	}

	return result, output, nil
}

// MemoryRetrieveInput represents the input arguments for the memory_retrieve tool.
type MemoryRetrieveInput struct {
	ConversationID string   `json:"conversation_id" jsonschema:"the conversation to read"`
	ContextType    string   `json:"context_type,omitempty" jsonschema:"restrict results to one context type"`
	Tags           []string `json:"tags,omitempty" jsonschema:"restrict results to entries carrying at least one of these tags"`
	MinImportance  float64  `json:"min_importance,omitempty" jsonschema:"drop entries scored below this value"`
	Limit          int      `json:"limit,omitempty" jsonschema:"maximum entries to return (default: 50)"`
}

// MemoryRetrieveOutput represents the output of the memory_retrieve tool.
type MemoryRetrieveOutput struct {
	ConversationID string          `json:"conversation_id"`
	Count          int             `json:"count"`
	Entries        []*memory.Entry `json:"entries"`
}

func (s *Server) handleMemoryRetrieve(ctx context.Context, _ *mcp.CallToolRequest, input MemoryRetrieveInput) (*mcp.CallToolResult, MemoryRetrieveOutput, error) {
	s.config.Logger.Debug("MCP memory retrieve",
		zap.String("conversation_id", input.ConversationID),
		zap.Int("limit", input.Limit),
	)

	entries, err := s.config.Memories.Retrieve(ctx, memory.RetrieveParams{
		ConversationID: input.ConversationID,
		ContextType:    memory.ContextType(input.ContextType),
		Tags:           input.Tags,
		MinImportance:  input.MinImportance,
		Limit:          input.Limit,
	})
	if err != nil {
		return toolError("Failed to retrieve entries: %v", err), MemoryRetrieveOutput{}, nil
	}

	output := MemoryRetrieveOutput{
		ConversationID: input.ConversationID,
		Count:          len(entries),
		Entries:        entries,
	}

	result, err := textResult(output)
	if err != nil {
		return toolError("Failed to serialize results: %v", err), MemoryRetrieveOutput{}, nil
	}

	return result, output, nil
}

// MemoryRelateInput represents the input arguments for the memory_relate tool.
type MemoryRelateInput struct {
	SourceID         string         `json:"source_id" jsonschema:"ID of the entry the edge starts from"`
	TargetID         string         `json:"target_id" jsonschema:"ID of the entry the edge points to"`
	RelationshipType string         `json:"relationship_type" jsonschema:"free-form edge label (e.g. references, depends_on)"`
	Strength         *float64       `json:"strength,omitempty" jsonschema:"edge weight in [0,1] (default: 1.0)"`
	Metadata         map[string]any `json:"metadata,omitempty" jsonschema:"arbitrary key/value metadata"`
}

// MemoryRelateOutput represents the output of the memory_relate tool.
type MemoryRelateOutput struct {
	Relationship *memory.Relationship `json:"relationship"`
}

func (s *Server) handleMemoryRelate(ctx context.Context, _ *mcp.CallToolRequest, input MemoryRelateInput) (*mcp.CallToolResult, MemoryRelateOutput, error) {
	rel, err := s.config.Graph.Relate(ctx, memory.RelateParams{
		SourceID: input.SourceID,
		TargetID: input.TargetID,
		Type:     input.RelationshipType,
		Strength: input.Strength,
		Metadata: input.Metadata,
	})
	if err != nil {
		return toolError("Failed to relate entries: %v", err), MemoryRelateOutput{}, nil
	}

	output := MemoryRelateOutput{Relationship: rel}

	result, err := textResult(output)
	if err != nil {
		return toolError("Failed to serialize results: %v", err), MemoryRelateOutput{}, nil
	}

	return result, output, nil
}

// MemoryContextInput represents the input arguments for the memory_context tool.
type MemoryContextInput struct {
	ConversationID string   `json:"conversation_id" jsonschema:"the conversation to build context for"`
	ContextTypes   []string `json:"context_types,omitempty" jsonschema:"emit one labeled section per listed type"`
	MaxEntries     int      `json:"max_entries,omitempty" jsonschema:"maximum entries per section (default: 20)"`
	MinImportance  float64  `json:"min_importance,omitempty" jsonschema:"drop entries scored below this value"`
}

// MemoryContextOutput represents the output of the memory_context tool.
type MemoryContextOutput struct {
	ConversationID string `json:"conversation_id"`
	Context        string `json:"context"`
}

func (s *Server) handleMemoryContext(ctx context.Context, _ *mcp.CallToolRequest, input MemoryContextInput) (*mcp.CallToolResult, MemoryContextOutput, error) {
	types := make([]memory.ContextType, 0, len(input.ContextTypes))
	for _, t := range input.ContextTypes {
		types = append(types, memory.ContextType(t))
	}

	text, err := s.config.Contexts.Build(ctx, memory.BuildParams{
		ConversationID: input.ConversationID,
		ContextTypes:   types,
		MaxEntries:     input.MaxEntries,
		MinImportance:  input.MinImportance,
	})
	if err != nil {
		return toolError("Failed to build context: %v", err), MemoryContextOutput{}, nil
	}

	output := MemoryContextOutput{
		ConversationID: input.ConversationID,
		Context:        text,
	}

	// The context text is returned directly rather than JSON-wrapped so MCP
	// clients can splice it into a prompt as-is.
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, output, nil
}

// MemoryClearInput represents the input arguments for the memory_clear tool.
type MemoryClearInput struct {
	ConversationID string `json:"conversation_id" jsonschema:"the conversation to clear"`
}

// MemoryClearOutput represents the output of the memory_clear tool.
type MemoryClearOutput struct {
	ConversationID string `json:"conversation_id"`
	Deleted        int    `json:"deleted"`
}

func (s *Server) handleMemoryClear(ctx context.Context, _ *mcp.CallToolRequest, input MemoryClearInput) (*mcp.CallToolResult, MemoryClearOutput, error) {
	deleted, err := s.config.Memories.Clear(ctx, input.ConversationID)
	if err != nil {
		return toolError("Failed to clear conversation: %v", err), MemoryClearOutput{}, nil
	}

	output := MemoryClearOutput{
		ConversationID: input.ConversationID,
		Deleted:        deleted,
	}

	result, err := textResult(output)
	if err != nil {
		return toolError("Failed to serialize results: %v", err), MemoryClearOutput{}, nil
	}

	return result, output, nil
}

// toolError builds an IsError tool result with a formatted message.
func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
	}
}

// textResult serializes the structured output as JSON for the text field.
// Per MCP spec: tools returning structured content should also return
// serialized JSON in a TextContent block for backwards compatibility.
func textResult(output any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(output)
	if err != nil {
		return nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, nil
}
