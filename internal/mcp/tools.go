package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/searcher"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/session"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/storage"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeEmptyQuery    = -32004 // Query parameter is empty
	ErrorCodeNoResults     = -32005 // Query produced nothing to select
)

// handleSearchSite handles the search_site tool invocation
func (s *Server) handleSearchSite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, err := requireQuery(args)
	if err != nil {
		return nil, err
	}

	limit := getIntDefault(args, "limit", searcher.MaxResults)
	if limit < 1 || limit > searcher.MaxResults {
		return nil, newMCPError(ErrorCodeInvalidParams, fmt.Sprintf("limit must be between 1 and %d", searcher.MaxResults), map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	resp, err := s.searcher.Search(ctx, searcher.SearchRequest{
		Query:    query,
		Limit:    limit,
		UseCache: true,
	})
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(SearchResponseMap(resp))), nil
}

// handleSelectResult handles the select_result tool invocation
func (s *Server) handleSelectResult(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, err := requireQuery(args)
	if err != nil {
		return nil, err
	}

	index := getIntDefault(args, "index", 0)

	c := session.NewController(s.searcher, s.recent,
		session.WithSelectionRecorder(s.storage),
		session.WithLogger(s.logger),
	)
	c.Open()
	if err := c.SetQuery(ctx, query); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if len(c.Results()) == 0 {
		return nil, newMCPError(ErrorCodeNoResults, "no results to select", map[string]interface{}{
			"query": query,
			"state": c.State().String(),
		})
	}

	outcome, err := c.SelectAt(ctx, index)
	if errors.Is(err, session.ErrIndexOutOfRange) {
		return nil, newMCPError(ErrorCodeInvalidParams, "index out of range", map[string]interface{}{
			"param": "index",
			"value": index,
			"max":   len(c.Results()) - 1,
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "selection failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"query":    outcome.Query,
		"selected": formatResult(outcome.Result),
		"navigation": map[string]interface{}{
			"url":         outcome.Navigation.URL,
			"action":      string(outcome.Navigation.Action),
			"new_context": outcome.Navigation.NewContext,
		},
		"recent_searches": outcome.RecentSearches,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetRecentSearches handles the get_recent_searches tool invocation
func (s *Server) handleGetRecentSearches(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recent := s.recent.List()
	response := map[string]interface{}{
		"recent_searches": recent,
		"count":           len(recent),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleClearRecentSearches handles the clear_recent_searches tool invocation
func (s *Server) handleClearRecentSearches(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.recent.Clear(ctx)
	response := map[string]interface{}{
		"cleared":         true,
		"recent_searches": []string{},
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	top := getIntDefault(args, "top", 5)
	if top < 0 || top > 50 {
		return nil, newMCPError(ErrorCodeInvalidParams, "top must be between 0 and 50", map[string]interface{}{
			"param": "top",
			"value": top,
		})
	}

	status, err := s.storage.GetStatus(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	popular := []map[string]interface{}{}
	if top > 0 {
		counts, err := s.storage.TopSelections(ctx, top)
		if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "failed to get selections", map[string]interface{}{
				"error": err.Error(),
			})
		}
		for _, c := range counts {
			popular = append(popular, map[string]interface{}{
				"title": c.Title,
				"url":   c.URL,
				"count": c.Count,
			})
		}
	}

	cat := s.searcher.Catalog()
	response := map[string]interface{}{
		"practice": cat.Practice.Name,
		"catalog": map[string]interface{}{
			"conditions": len(cat.Conditions),
			"symptoms":   len(cat.Symptoms),
			"body_parts": len(cat.BodyParts),
			"activities": len(cat.Activities),
			"treatments": len(cat.Treatments),
		},
		"storage": map[string]interface{}{
			"backend":         status.Backend,
			"driver":          storage.DriverName,
			"build_mode":      storage.BuildMode,
			"schema_version":  status.SchemaVersion,
			"keys":            status.Keys,
			"selection_count": status.SelectionCount,
			"size_mb":         fmt.Sprintf("%.2f", status.SizeMB),
		},
		"cache_entries":   s.searcher.CacheLen(),
		"recent_searches": len(s.recent.List()),
		"top_selections":  popular,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// requireQuery extracts a non-blank query parameter
func requireQuery(args map[string]interface{}) (string, error) {
	query, ok := args["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return "", newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}
	return query, nil
}

// SearchResponseMap renders a search response with the field names the
// search_site tool returns
func SearchResponseMap(resp *searcher.SearchResponse) map[string]interface{} {
	results := make([]map[string]interface{}, len(resp.Results))
	for i := range resp.Results {
		results[i] = formatResult(resp.Results[i])
	}

	return map[string]interface{}{
		"query":         resp.Query,
		"state":         string(resp.State),
		"total_results": resp.TotalResults,
		"results":       results,
		"cache_hit":     resp.CacheHit,
		"duration_ms":   resp.Duration.Milliseconds(),
	}
}

func formatResult(r types.SearchResult) map[string]interface{} {
	return map[string]interface{}{
		"rank":        r.Rank,
		"title":       r.Title,
		"kind":        string(r.Kind),
		"source":      string(r.Source),
		"description": r.Description,
		"category":    r.Category,
		"url":         r.URL,
		"score":       r.Score,
		"action":      string(r.Action),
	}
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}
