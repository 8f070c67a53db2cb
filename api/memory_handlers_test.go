package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	recalllogger "github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/storage/inmemory"
)

// newTestServer wires a server over fresh in-memory stores.
func newTestServer() *Server {
	logger := recalllogger.Nop()
	driver := inmemory.NewDriver()

	memories := memory.NewManager(driver, logger)
	graph := memory.NewGraph(driver, logger)

	return NewServer(Config{ListenAddr: ":0"}, Services{
		Memories: memories,
		Graph:    graph,
		Contexts: memory.NewContextBuilder(memories, graph, logger),
		Prompts:  prompt.NewService(inmemory.NewPromptStore(), logger),
	}, logger)
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
	}

	req, err := http.NewRequest(method, target, &buf)
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(resp *http.Response, out any) {
	raw, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	Expect(json.Unmarshal(raw, out)).To(Succeed())
}

// storeEntry stores one entry through the API and returns it.
func storeEntry(server *Server, body map[string]any) memory.Entry {
	resp, err := server.app.Test(jsonRequest(http.MethodPost, "/memory", body))
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(fiber.StatusCreated))

	var entry memory.Entry
	decodeBody(resp, &entry)
	return entry
}

var _ = Describe("memory endpoints", func() {
	var server *Server

	BeforeEach(func() {
		server = newTestServer()
	})

	Describe("GET /ping", func() {
		It("returns pong", func() {
			req, err := http.NewRequest(http.MethodGet, "/ping", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))
		})
	})

	Describe("POST /memory", func() {
		It("stores an entry and returns it with an ID", func() {
			entry := storeEntry(server, map[string]any{
				"conversation_id": "conv-1",
				"role":            "user",
				"content":         "hello",
			})
			Expect(entry.ID).NotTo(BeEmpty())
			Expect(entry.ConversationID).To(Equal("conv-1"))
			Expect(entry.ImportanceScore).To(Equal(0.5))
		})

		It("returns 400 for a validation failure", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/memory", map[string]any{
				"conversation_id": "conv-1",
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))

			var body ErrorResponse
			decodeBody(resp, &body)
			Expect(body.Error).To(ContainSubstring("content"))
		})

		It("returns 400 for a malformed body", func() {
			req, err := http.NewRequest(http.MethodPost, "/memory", bytes.NewBufferString("{nope"))
			Expect(err).NotTo(HaveOccurred())
			req.Header.Set("Content-Type", "application/json")

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})

		It("returns 400 for an out-of-range importance score", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/memory", map[string]any{
				"conversation_id":  "conv-1",
				"content":          "hello",
				"importance_score": 2.5,
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})
	})

	Describe("GET /memory/:conversation", func() {
		It("returns entries ordered by importance then recency", func() {
			storeEntry(server, map[string]any{
				"conversation_id":  "conv-1",
				"content":          "low",
				"importance_score": 0.2,
			})
			storeEntry(server, map[string]any{
				"conversation_id":  "conv-1",
				"content":          "high",
				"importance_score": 0.9,
			})

			req, err := http.NewRequest(http.MethodGet, "/memory/conv-1", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body entriesResponse
			decodeBody(resp, &body)
			Expect(body.Count).To(Equal(2))
			Expect(body.Entries[0].Content).To(Equal("high"))
		})

		It("applies query filters conjunctively", func() {
			storeEntry(server, map[string]any{
				"conversation_id":  "conv-1",
				"content":          "match",
				"context_type":     "code_analysis",
				"tags":             []string{"go"},
				"importance_score": 0.8,
			})
			storeEntry(server, map[string]any{
				"conversation_id":  "conv-1",
				"content":          "other",
				"tags":             []string{"go"},
				"importance_score": 0.9,
			})

			req, err := http.NewRequest(http.MethodGet,
				"/memory/conv-1?context_type=code_analysis&tags=go&min_importance=0.5", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body entriesResponse
			decodeBody(resp, &body)
			Expect(body.Count).To(Equal(1))
			Expect(body.Entries[0].Content).To(Equal("match"))
		})

		It("accepts importance_score as an alias for min_importance", func() {
			storeEntry(server, map[string]any{
				"conversation_id":  "conv-1",
				"content":          "kept",
				"importance_score": 0.8,
			})
			storeEntry(server, map[string]any{
				"conversation_id":  "conv-1",
				"content":          "dropped",
				"importance_score": 0.2,
			})

			req, err := http.NewRequest(http.MethodGet,
				"/memory/conv-1?importance_score=0.5", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body entriesResponse
			decodeBody(resp, &body)
			Expect(body.Count).To(Equal(1))
			Expect(body.Entries[0].Content).To(Equal("kept"))
		})

		It("returns an empty list for an unknown conversation", func() {
			req, err := http.NewRequest(http.MethodGet, "/memory/ghost", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body entriesResponse
			decodeBody(resp, &body)
			Expect(body.Count).To(BeZero())
		})
	})

	Describe("DELETE /memory/:conversation", func() {
		It("clears the conversation and reports the count", func() {
			storeEntry(server, map[string]any{
				"conversation_id": "conv-1",
				"content":         "gone soon",
			})

			req, err := http.NewRequest(http.MethodDelete, "/memory/conv-1", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body struct {
				Deleted int `json:"deleted"`
			}
			decodeBody(resp, &body)
			Expect(body.Deleted).To(Equal(1))
		})
	})

	Describe("POST /memory/relate", func() {
		var a, b memory.Entry

		BeforeEach(func() {
			a = storeEntry(server, map[string]any{
				"conversation_id": "conv-1",
				"content":         "entry a",
			})
			b = storeEntry(server, map[string]any{
				"conversation_id": "conv-1",
				"content":         "entry b",
			})
		})

		It("creates a relationship", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/memory/relate", map[string]any{
				"source_id":         a.ID,
				"target_id":         b.ID,
				"relationship_type": "builds_on",
				"strength":          0.8,
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusCreated))

			var rel memory.Relationship
			decodeBody(resp, &rel)
			Expect(rel.ID).NotTo(BeEmpty())
			Expect(rel.Strength).To(Equal(0.8))
		})

		It("returns 404 when an endpoint does not exist", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/memory/relate", map[string]any{
				"source_id":         a.ID,
				"target_id":         "ghost",
				"relationship_type": "builds_on",
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusNotFound))
		})

		It("returns 400 for a missing relationship type", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/memory/relate", map[string]any{
				"source_id": a.ID,
				"target_id": b.ID,
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})
	})

	Describe("GET /memory/entry/:id/related", func() {
		It("returns one-hop neighbors", func() {
			a := storeEntry(server, map[string]any{
				"conversation_id": "conv-1",
				"content":         "entry a",
			})
			b := storeEntry(server, map[string]any{
				"conversation_id": "conv-1",
				"content":         "entry b",
				"related_ids":     []string{a.ID},
			})

			req, err := http.NewRequest(http.MethodGet, "/memory/entry/"+b.ID+"/related", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body entriesResponse
			decodeBody(resp, &body)
			Expect(body.Count).To(Equal(1))
			Expect(body.Entries[0].ID).To(Equal(a.ID))
		})
	})

	Describe("GET /memory/:conversation/context", func() {
		It("returns the assembled context text", func() {
			storeEntry(server, map[string]any{
				"conversation_id": "conv-1",
				"role":            "user",
				"content":         "what is recall?",
			})

			req, err := http.NewRequest(http.MethodGet, "/memory/conv-1/context", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body struct {
				ConversationID string `json:"conversation_id"`
				Context        string `json:"context"`
			}
			decodeBody(resp, &body)
			Expect(body.Context).To(ContainSubstring("[USER] what is recall?"))
		})
	})

	Describe("GET /memory/search", func() {
		It("is not shadowed by the conversation route", func() {
			storeEntry(server, map[string]any{
				"conversation_id": "conv-1",
				"content":         "tagged",
				"tags":            []string{"go"},
			})

			req, err := http.NewRequest(http.MethodGet, "/memory/search?tags=go", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body entriesResponse
			decodeBody(resp, &body)
			Expect(body.Count).To(Equal(1))
		})

		It("returns 400 without tags", func() {
			req, err := http.NewRequest(http.MethodGet, "/memory/search", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})
	})
})
