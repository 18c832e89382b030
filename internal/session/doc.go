// Package session drives the search modal: it holds the query being typed,
// the current result list and the highlighted row, and turns a selection
// into a navigation request.
//
// # States
//
//   - Closed: the modal is hidden
//   - OpenEmpty: open with a query shorter than two characters
//   - OpenSearching: open with a searchable query, whatever the result count
//
// Every query change re-runs the search and resets the highlight to the
// first row. Arrow movement is clamped to the list; there is no wraparound.
//
// # Selection
//
// Selecting a result records the query in the recent searches list,
// optionally logs the choice, returns the result's Navigation and closes
// the modal.
//
//	c := session.NewController(s, recent)
//	c.Open()
//	_ = c.SetQuery(ctx, "knee")
//	c.MoveDown()
//	outcome, err := c.Enter(ctx)
//
// A Controller is not safe for concurrent use.
package session
