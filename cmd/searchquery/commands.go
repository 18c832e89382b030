package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/catalog"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/mcp"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/searcher"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/session"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/storage"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/pkg/types"
)

type options struct {
	catalogDir string
	dbPath     string
	limit      int
	jsonOutput bool
	noColor    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "searchquery [query...]",
		Short: "Run site search queries from the terminal",
		Long: `searchquery evaluates a query against the clinic catalog and prints
the ranked results the search modal would show.

Example usage:
  searchquery knee                 # Rank results for "knee"
  searchquery --json lower back    # Output as JSON
  searchquery select knee 1        # Choose the second result
  searchquery recent               # List remembered searches`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), out, opts, strings.Join(args, " "))
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.catalogDir, "catalog", "", "directory with catalog YAML files (default: embedded)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", mcp.MemoryDBPath, "database directory for recent searches, or \"memory\"")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.Flags().IntVarP(&opts.limit, "limit", "n", searcher.MaxResults, "maximum number of results")
	root.Flags().BoolVar(&opts.jsonOutput, "json", false, "output as JSON")

	root.AddCommand(newSelectCmd(out, opts), newRecentCmd(out, opts))
	return root
}

func newSelectCmd(out io.Writer, opts *options) *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "select query...",
		Short: "Choose a result and print where it navigates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd.Context(), out, opts, strings.Join(args, " "), index)
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 0, "zero-based result position")
	return cmd
}

func newRecentCmd(out io.Writer, opts *options) *cobra.Command {
	var clearAll bool
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List remembered searches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecent(cmd.Context(), out, opts, clearAll)
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "forget all remembered searches")
	return cmd
}

func newSearcher(ctx context.Context, opts *options) (*searcher.Searcher, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if opts.catalogDir == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.LoadDir(ctx, opts.catalogDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return searcher.NewSearcher(cat), nil
}

func openStore(opts *options) (storage.Storage, error) {
	if opts.dbPath == "" || strings.EqualFold(opts.dbPath, mcp.MemoryDBPath) {
		return storage.NewMemoryStore(), nil
	}
	if err := os.MkdirAll(opts.dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return storage.NewSQLiteStorage(filepath.Join(opts.dbPath, mcp.DBFileName))
}

func runSearch(ctx context.Context, out io.Writer, opts *options, query string) error {
	if opts.limit < 1 || opts.limit > searcher.MaxResults {
		return fmt.Errorf("limit must be between 1 and %d", searcher.MaxResults)
	}

	s, err := newSearcher(ctx, opts)
	if err != nil {
		return err
	}

	resp, err := s.Search(ctx, searcher.SearchRequest{Query: query, Limit: opts.limit})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(mcp.SearchResponseMap(resp))
	}

	switch resp.State {
	case searcher.StateKeepTyping:
		fmt.Fprintln(out, "Keep typing: enter at least 2 characters.")
		return nil
	case searcher.StateNoResults:
		fmt.Fprintf(out, "No results for %q.\n", query)
		return nil
	}

	renderResults(out, resp.Results)
	fmt.Fprintf(out, "\n%d result(s) from %d candidate(s) in %v\n", resp.TotalResults, resp.Candidates, resp.Duration)
	return nil
}

func runSelect(ctx context.Context, out io.Writer, opts *options, query string, index int) error {
	s, err := newSearcher(ctx, opts)
	if err != nil {
		return err
	}
	store, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	logger := log.New(io.Discard, "", 0)
	recent := storage.NewRecentSearches(store, logger)
	recent.Load(ctx)

	c := session.NewController(s, recent, session.WithSelectionRecorder(store), session.WithLogger(logger))
	c.Open()
	if err := c.SetQuery(ctx, query); err != nil {
		return err
	}
	if len(c.Results()) == 0 {
		return fmt.Errorf("no results for %q", query)
	}

	outcome, err := c.SelectAt(ctx, index)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", color.New(color.Bold).Sprint(outcome.Result.Title))
	fmt.Fprintf(out, "  %s %s\n", describeAction(outcome.Navigation), outcome.Navigation.URL)
	if outcome.Navigation.NewContext {
		fmt.Fprintln(out, "  (opens in a new tab)")
	}
	return nil
}

func runRecent(ctx context.Context, out io.Writer, opts *options, clearAll bool) error {
	store, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	recent := storage.NewRecentSearches(store, log.New(io.Discard, "", 0))
	recent.Load(ctx)

	if clearAll {
		recent.Clear(ctx)
		fmt.Fprintln(out, "Recent searches cleared.")
		return nil
	}

	items := recent.List()
	if len(items) == 0 {
		fmt.Fprintln(out, "No recent searches.")
		return nil
	}
	for i, q := range items {
		fmt.Fprintf(out, "%d. %s\n", i+1, q)
	}
	return nil
}

func renderResults(out io.Writer, results []types.SearchResult) {
	table := tablewriter.NewTable(out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		title := r.Title
		if r.Action == types.ActionPhone {
			title = color.RedString(title)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Rank),
			title,
			string(r.Kind),
			string(r.Source),
			fmt.Sprintf("%.0f", r.Score),
			r.URL,
		})
	}

	table.Header([]string{"RANK", "TITLE", "KIND", "SOURCE", "SCORE", "URL"})
	_ = table.Bulk(rows)
	_ = table.Render()
}

func describeAction(nav types.Navigation) string {
	switch nav.Action {
	case types.ActionPhone:
		return "Call"
	case types.ActionBooking:
		return "Book at"
	case types.ActionExternal:
		return "Open"
	default:
		return "Go to"
	}
}
