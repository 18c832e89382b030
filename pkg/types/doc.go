// Package types provides shared type definitions for the KinetiKare site search.
//
// This package defines the record shapes used across the engine, the
// selection controller and the MCP server.
//
// # Core Types
//
// SearchCandidate is the single record shape every scoring rule emits:
//
//	candidate := types.SearchCandidate{
//	    Title:    "Knee Pain",
//	    Kind:     types.KindCondition,
//	    Source:   types.SourceBodyPart,
//	    URL:      "/conditions/knee-pain",
//	    Category: "Lower Body",
//	    Score:    350,
//	}
//
// Title is the deduplication key: two candidates with the same title collapse
// to the first one produced.
//
// SearchResult adds the 1-based rank and the derived action:
//
//	result.Rank    // 1
//	result.Action  // types.ActionInternal
//
// # Navigation
//
// Destinations are classified by URL:
//
//	types.ClassifyURL("tel:+15195551234")                 // ActionPhone
//	types.ClassifyURL("https://kinetikare.janeapp.com/")  // ActionBooking
//	types.ClassifyURL("https://example.org")              // ActionExternal
//	types.ClassifyURL("/conditions/sciatica")             // ActionInternal
//
// External and booking destinations open in a new context.
//
// # Validation
//
//	if err := candidate.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
