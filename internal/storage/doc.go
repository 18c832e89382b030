// Package storage persists the small amount of state the site search keeps
// between visits.
//
// The storage layer manages:
//   - A key-value store standing in for the browser's local storage
//   - The recent searches list kept under RecentSearchesKey
//   - A log of results chosen from the search modal
//
// # Database Schema
//
// Tables:
//   - schema_version: Applied migrations (semantic versions)
//   - kv_store: Key-value pairs
//   - selections: Chosen results with the query that produced them
//
// # Basic Usage
//
//	db, err := storage.NewSQLiteStorage("physiosearch.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	recent := storage.NewRecentSearches(db, nil)
//	recent.Load(ctx)
//	recent.Add(ctx, "knee pain")
//
// Recent searches are best effort. A failing store never surfaces an error
// to the caller; the failure is logged and the in-memory list is kept.
//
// Use NewMemoryStore when persistence is disabled.
//
// # Build Tags
//
// The storage package supports two build configurations:
//
// Pure Go Build (default):
//
//   - Uses modernc.org/sqlite driver
//
//   - No C compiler needed
//
//     CGO_ENABLED=0 go build ./...
//
// CGO Build (sqlite_cgo tag):
//
//   - Uses github.com/mattn/go-sqlite3 driver
//
//   - Requires C compiler
//
//     CGO_ENABLED=1 go build -tags "sqlite_cgo" ./...
package storage
