package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/catalog"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/searcher"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "physiosearch"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultDBPath is the default directory for the database
	DefaultDBPath = "~/.physiosearch"
	// MemoryDBPath disables persistence
	MemoryDBPath = "memory"
	// DBFileName is the database file created inside the DB directory
	DBFileName = "physiosearch.db"
)

// Config holds server settings
type Config struct {
	// DBPath is the directory holding the SQLite file, or MemoryDBPath
	DBPath string
	// CatalogDir overrides the embedded datasets when set
	CatalogDir string
	// CacheSize is the number of memoized queries
	CacheSize int
	// Logger receives best-effort failures; nil uses the standard logger
	Logger *log.Logger
}

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	storage  storage.Storage
	searcher *searcher.Searcher
	recent   *storage.RecentSearches
	logger   *log.Logger
}

// NewServer creates a new MCP server instance
func NewServer(cfg Config) (*Server, error) {
	ctx := context.Background()

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	cat, err := loadCatalog(ctx, cfg.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	store, err := openStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = searcher.DefaultCacheSize
	}
	srch := searcher.NewSearcher(cat, searcher.WithCacheSize(cacheSize))

	recent := storage.NewRecentSearches(store, logger)
	recent.Load(ctx)

	// Create MCP server
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		storage:  store,
		searcher: srch,
		recent:   recent,
		logger:   logger,
	}

	if err := s.registerTools(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

func loadCatalog(ctx context.Context, dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.Default()
	}
	return catalog.LoadDir(ctx, dir)
}

// openStorage resolves the DB directory and opens the store
func openStorage(dbPath string) (storage.Storage, error) {
	if strings.EqualFold(dbPath, MemoryDBPath) {
		return storage.NewMemoryStore(), nil
	}

	// Expand home directory if needed
	if dbPath == "" || dbPath == DefaultDBPath {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".physiosearch")
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	return storage.NewSQLiteStorage(filepath.Join(dbPath, DBFileName))
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.Close() }()
	return server.ServeStdio(s.mcp)
}

// Close releases the storage
func (s *Server) Close() error {
	return s.storage.Close()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(searchSiteTool(), s.handleSearchSite)
	s.mcp.AddTool(selectResultTool(), s.handleSelectResult)
	s.mcp.AddTool(getRecentSearchesTool(), s.handleGetRecentSearches)
	s.mcp.AddTool(clearRecentSearchesTool(), s.handleClearRecentSearches)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)

	return nil
}
