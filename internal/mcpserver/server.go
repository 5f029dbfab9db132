// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Cursorkit documentation tools via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cursorkit/cursorkit/internal/catalog"
	"github.com/cursorkit/cursorkit/internal/index"
	"github.com/cursorkit/cursorkit/internal/library"
	"github.com/cursorkit/cursorkit/internal/llm"
	"github.com/cursorkit/cursorkit/internal/structdoc"
)

// Server wraps the MCP server with Cursorkit tools.
type Server struct {
	mcp    *server.MCPServer
	lib    *library.Service
	db     index.DocIndex
	gen    *structdoc.Generator
	llmCfg llm.Config
}

// New creates a new MCP server with all Cursorkit tools registered.
func New(lib *library.Service, db index.DocIndex, gen *structdoc.Generator, llmCfg llm.Config) *Server {
	s := &Server{lib: lib, db: db, gen: gen, llmCfg: llmCfg}

	s.mcp = server.NewMCPServer(
		"Cursorkit",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_docs",
		mcp.WithDescription("Full-text search through built-in documentation and the live example library."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchDocs)

	s.mcp.AddTool(mcp.NewTool("read_document",
		mcp.WithDescription("Read the full content of a document by its index path "+
			"(e.g. builtin/commands/debug.md or library/rules/my-rule.md)."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Document path from list_documents or search_docs")),
	), s.readDocument)

	s.mcp.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List all indexed document paths, optionally filtered by source (builtin or library)."),
		mcp.WithString("source", mcp.Description("Optional source filter: builtin or library")),
	), s.listDocuments)

	s.mcp.AddTool(mcp.NewTool("get_comparison",
		mcp.WithDescription("Returns the Rules-vs-Commands comparison table as markdown."),
	), s.getComparison)

	s.mcp.AddTool(mcp.NewTool("provider_status",
		mcp.WithDescription("Reports which model providers have credentials configured. No network call."),
	), s.providerStatus)

	s.mcp.AddTool(mcp.NewTool("generate_project_structure",
		mcp.WithDescription("Generate a project-structure.md document. Uses a model provider when "+
			"one is named and available, otherwise a deterministic template."),
		mcp.WithString("project_name", mcp.Required(), mcp.Description("Name of the project")),
		mcp.WithString("tech_stack", mcp.Description("Comma-separated list of technologies")),
		mcp.WithString("main_files", mcp.Description("Main files/directories, tree format")),
		mcp.WithString("architecture_notes", mcp.Description("Notes about the architecture")),
		mcp.WithString("provider", mcp.Description("Optional provider: openai or anthropic (empty for template mode)")),
	), s.generateProjectStructure)

	// Resource: the comparison reference.
	s.mcp.AddResource(
		mcp.NewResource("cursorkit://comparison", "Rules vs Commands Comparison",
			mcp.WithResourceDescription("Reference table comparing Cursor Rules and Commands."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readComparisonResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.db.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, ok := s.resolve(path)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(content), nil
}

// resolve maps an index path back to document content.
func (s *Server) resolve(path string) (string, bool) {
	switch {
	case path == "builtin/AGENTS.md":
		return catalog.AgentsDoc().Content, true
	case path == "builtin/README.md":
		return catalog.ReadmeDoc().Content, true
	case strings.HasPrefix(path, "builtin/rules/"):
		name := strings.TrimPrefix(path, "builtin/rules/")
		for _, doc := range catalog.StarterRules() {
			if doc.Name == name {
				return doc.Content, true
			}
		}
	case strings.HasPrefix(path, "builtin/commands/"):
		key := strings.TrimSuffix(strings.TrimPrefix(path, "builtin/commands/"), ".md")
		if cmd, ok := catalog.Command(key); ok {
			return cmd.Content, true
		}
	case strings.HasPrefix(path, "builtin/community/"):
		tech := strings.TrimSuffix(strings.TrimPrefix(path, "builtin/community/"), ".md")
		if rule, ok := catalog.CommunityRuleByTech(tech); ok {
			return rule.Content, true
		}
	case strings.HasPrefix(path, "library/"):
		rest := strings.TrimPrefix(path, "library/")
		category, rel, found := strings.Cut(rest, "/")
		if !found {
			return "", false
		}
		data, err := s.lib.Read(category, rel)
		if err != nil {
			return "", false
		}
		return string(data), true
	}
	return "", false
}

func (s *Server) listDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source := ""
	if v, err := req.RequireString("source"); err == nil {
		source = v
	}
	checksums, err := s.db.AllChecksums(source)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	paths := make([]string, 0, len(checksums))
	for p := range checksums {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) getComparison(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(catalog.ComparisonTable()), nil
}

func (s *Server) providerStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(llm.Status(s.llmCfg), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) generateProjectStructure(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("project_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	optional := func(key string) string {
		if v, reqErr := req.RequireString(key); reqErr == nil {
			return v
		}
		return ""
	}

	var stack []string
	for _, part := range strings.Split(optional("tech_stack"), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			stack = append(stack, trimmed)
		}
	}

	res := s.gen.Generate(ctx, structdoc.Request{
		ProjectName:       name,
		TechStack:         stack,
		MainFiles:         optional("main_files"),
		ArchitectureNotes: optional("architecture_notes"),
		Provider:          llm.Provider(optional("provider")),
	})
	if res.FallbackReason != "" {
		return mcp.NewToolResultText(fmt.Sprintf("(template fallback: %s)\n\n%s", res.FallbackReason, res.Content)), nil
	}
	return mcp.NewToolResultText(res.Content), nil
}

func (s *Server) readComparisonResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "cursorkit://comparison",
			MIMEType: "text/markdown",
			Text:     catalog.ComparisonTable(),
		},
	}, nil
}
