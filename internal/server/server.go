// Package server exposes catalog search as an MCP tool so that assistants
// can look up success criteria the same way the launcher does.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wcag-search/internal/catalog"
	"wcag-search/internal/config"
	"wcag-search/internal/match"
)

// ToolSearch is the name of the search tool.
const ToolSearch = "search_criteria"

// Result is one ranked record as returned to MCP clients.
type Result struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Score int    `json:"score"`
}

// Service ranks a fixed set of records.
type Service struct {
	records    []catalog.Record
	scorer     *match.Scorer
	baseURL    string
	maxResults int
}

// NewService creates a Service over records using cfg for scoring options,
// link building and the default result limit.
func NewService(records []catalog.Record, cfg config.Config) *Service {
	return &Service{
		records:    records,
		scorer:     match.NewScorer(match.Options{TypoTolerance: cfg.TypoTolerance}),
		baseURL:    cfg.BaseURL,
		maxResults: cfg.MaxResults,
	}
}

// Search ranks the records for query. limit <= 0 falls back to the
// configured maximum, which itself may be unlimited.
func (s *Service) Search(query string, limit int) []Result {
	if limit <= 0 {
		limit = s.maxResults
	}

	ranked := s.scorer.Rank(query, s.records).Top(limit)

	out := make([]Result, len(ranked))
	for i, r := range ranked {
		out[i] = Result{
			ID:    r.Record.ID,
			Slug:  r.Record.Slug,
			Title: r.Record.Title,
			URL:   r.Record.URL(s.baseURL),
			Score: r.Score,
		}
	}

	return out
}

// New builds the MCP server with the search tool registered.
func New(svc *Service, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"wcag-search",
		version,
		server.WithToolCapabilities(true),
	)

	searchTool := mcp.NewTool(
		ToolSearch,
		mcp.WithDescription("Search WCAG success criteria by title. Tolerates single-letter typos."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Keyword to search for, e.g. keyboard or label.")),
		mcp.WithString("max", mcp.Description("Max number of criteria to return (default: all matches).")),
	)

	s.AddTool(searchTool, searchHandler(svc))

	return s
}

// ServeStdio runs the MCP server on stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func searchHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := strings.TrimSpace(req.GetString("query", ""))
		if query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		limit := 0
		if raw := strings.TrimSpace(req.GetString("max", "")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return mcp.NewToolResultError(fmt.Sprintf("max must be a non-negative integer, got %q", raw)), nil
			}

			limit = n
		}

		results := svc.Search(query, limit)
		slog.Info("search", "query", query, "results", len(results))

		if len(results) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("no criteria match %q", query)), nil
		}

		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(string(out)), nil
	}
}
