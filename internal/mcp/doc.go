// Package mcp implements the Model Context Protocol (MCP) server for the
// clinic site search.
//
// The MCP server exposes these tools:
//   - search_site: Rank site content for what a visitor typed
//   - select_result: Choose a result, remember the query and get a navigation target
//   - get_recent_searches: List remembered queries, newest first
//   - clear_recent_searches: Forget remembered queries
//   - get_status: Catalog size, storage statistics and popular results
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Logs go to stderr; stdout carries only protocol messages.
//
// # Tool: search_site
//
//	Request:
//	{
//	  "name": "search_site",
//	  "arguments": {"query": "knee", "limit": 3}
//	}
//
//	Response:
//	{
//	  "query": "knee",
//	  "state": "results",
//	  "total_results": 3,
//	  "results": [
//	    {"rank": 1, "title": "Knee Pain", "url": "/conditions/knee-pain",
//	     "score": 350, "action": "internal", ...}
//	  ]
//	}
//
// state is "keep_typing" for queries shorter than two characters and
// "no_results" when nothing matched.
//
// # Tool: select_result
//
//	Request:
//	{
//	  "name": "select_result",
//	  "arguments": {"query": "emergency", "index": 0}
//	}
//
//	Response:
//	{
//	  "selected": {...},
//	  "navigation": {"url": "tel:+19055550142", "action": "phone", "new_context": false},
//	  "recent_searches": ["emergency"]
//	}
//
// # Error Handling
//
// Errors are returned as MCPError values:
//   - -32602: Invalid params (bad limit, index out of range)
//   - -32603: Internal error
//   - -32004: Empty query
//   - -32005: No results to select
package mcp
