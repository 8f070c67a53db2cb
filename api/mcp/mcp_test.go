package mcp_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/api/mcp"
	recalllogger "github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/storage/inmemory"
)

var _ = Describe("MCP Server", func() {
	var (
		memories *memory.Manager
		graph    *memory.Graph
		contexts *memory.ContextBuilder
		prompts  *prompt.Service
	)

	BeforeEach(func() {
		logger := recalllogger.Nop()
		driver := inmemory.NewDriver()

		memories = memory.NewManager(driver, logger)
		graph = memory.NewGraph(driver, logger)
		contexts = memory.NewContextBuilder(memories, graph, logger)
		prompts = prompt.NewService(inmemory.NewPromptStore(), logger)
	})

	Describe("NewServer", func() {
		It("creates a server with the full tool set", func() {
			server, err := mcp.NewServer(mcp.Config{
				Memories: memories,
				Graph:    graph,
				Contexts: contexts,
				Prompts:  prompts,
				Logger:   recalllogger.Nop(),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(server.Handler()).NotTo(BeNil())
		})

		It("works without a prompt service", func() {
			server, err := mcp.NewServer(mcp.Config{
				Memories: memories,
				Graph:    graph,
				Contexts: contexts,
				Logger:   recalllogger.Nop(),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(server.Handler()).NotTo(BeNil())
		})

		It("returns an error when the memory manager is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Graph:    graph,
				Contexts: contexts,
				Logger:   recalllogger.Nop(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("memory manager is required"))
		})

		It("returns an error when the graph is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Memories: memories,
				Contexts: contexts,
				Logger:   recalllogger.Nop(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("memory graph is required"))
		})

		It("returns an error when the context builder is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Memories: memories,
				Graph:    graph,
				Logger:   recalllogger.Nop(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("context builder is required"))
		})

		It("returns an error when the logger is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Memories: memories,
				Graph:    graph,
				Contexts: contexts,
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("logger is required"))
		})

		It("skips dependency checks in noop mode", func() {
			server, err := mcp.NewServer(mcp.Config{Noop: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(server).NotTo(BeNil())
		})
	})
})
