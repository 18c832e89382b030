package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/storage"
)

// PersistenceTestSuite runs the tools against an on-disk database that
// outlives individual servers
type PersistenceTestSuite struct {
	suite.Suite
	ctx   context.Context
	dbDir string
}

func TestPersistenceTestSuite(t *testing.T) {
	suite.Run(t, new(PersistenceTestSuite))
}

// SetupTest gives each test its own database directory
func (s *PersistenceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dbDir = s.T().TempDir()
}

func (s *PersistenceTestSuite) newServer() *Server {
	server, err := NewServer(Config{DBPath: s.dbDir, CacheSize: 16})
	s.Require().NoError(err)
	return server
}

func (s *PersistenceTestSuite) selectQuery(server *Server, query string) {
	_, err := server.handleSelectResult(s.ctx, callRequest("select_result", map[string]interface{}{"query": query}))
	s.Require().NoError(err)
}

func (s *PersistenceTestSuite) TestRecentSearchesSurviveRestart() {
	server := s.newServer()
	for _, q := range []string{"knee", "sciatica", "running"} {
		s.selectQuery(server, q)
	}
	s.Require().NoError(server.Close())

	server = s.newServer()
	defer server.Close()
	s.Equal([]string{"running", "sciatica", "knee"}, server.recent.List())
}

func (s *PersistenceTestSuite) TestClearSurvivesRestart() {
	server := s.newServer()
	s.selectQuery(server, "knee")
	_, err := server.handleClearRecentSearches(s.ctx, callRequest("clear_recent_searches", nil))
	s.Require().NoError(err)
	s.Require().NoError(server.Close())

	server = s.newServer()
	defer server.Close()
	s.Empty(server.recent.List())
}

func (s *PersistenceTestSuite) TestCapAcrossRestart() {
	server := s.newServer()
	for _, q := range []string{"knee", "running", "golf", "book", "parking", "emergency"} {
		s.selectQuery(server, q)
	}
	s.Require().NoError(server.Close())

	server = s.newServer()
	defer server.Close()
	recent := server.recent.List()
	s.Len(recent, storage.MaxRecentSearches)
	s.Equal("emergency", recent[0])
	s.NotContains(recent, "knee")
}

func (s *PersistenceTestSuite) TestSelectionsSurviveRestart() {
	server := s.newServer()
	s.selectQuery(server, "knee")
	s.selectQuery(server, "knee")
	s.Require().NoError(server.Close())

	server = s.newServer()
	defer server.Close()
	counts, err := server.storage.TopSelections(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(counts, 1)
	s.Equal("Knee Pain", counts[0].Title)
	s.Equal(2, counts[0].Count)
}

func (s *PersistenceTestSuite) TestSearchUsesCache() {
	server := s.newServer()
	defer server.Close()

	args := map[string]interface{}{"query": "shoulder"}
	_, err := server.handleSearchSite(s.ctx, callRequest("search_site", args))
	s.Require().NoError(err)

	result, err := server.handleSearchSite(s.ctx, callRequest("search_site", args))
	s.Require().NoError(err)
	out := decodeResult(s.T(), result)
	s.Equal(true, out["cache_hit"])
}
