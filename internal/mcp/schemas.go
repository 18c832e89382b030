package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/searcher"
)

// searchSiteTool returns the tool definition for search_site
func searchSiteTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_site",
		Description: "Search the clinic website for conditions, symptoms, treatments, booking and contact details",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "What the visitor typed (symptom, body part, activity, condition or question)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return",
					"default":     searcher.MaxResults,
					"minimum":     1,
					"maximum":     searcher.MaxResults,
				},
			},
			Required: []string{"query"},
		},
	}
}

// selectResultTool returns the tool definition for select_result
func selectResultTool() mcp.Tool {
	return mcp.Tool{
		Name:        "select_result",
		Description: "Choose a search result, remember the query and return where to navigate",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Query whose results to choose from",
				},
				"index": map[string]interface{}{
					"type":        "integer",
					"description": "Zero-based position of the result to choose",
					"default":     0,
					"minimum":     0,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getRecentSearchesTool returns the tool definition for get_recent_searches
func getRecentSearchesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_recent_searches",
		Description: "List the most recent selected searches, newest first",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// clearRecentSearchesTool returns the tool definition for clear_recent_searches
func clearRecentSearchesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "clear_recent_searches",
		Description: "Forget all recent searches",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report catalog size, storage statistics and the most selected results",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"top": map[string]interface{}{
					"type":        "integer",
					"description": "Number of most selected results to include",
					"default":     5,
					"minimum":     0,
					"maximum":     50,
				},
			},
		},
	}
}
