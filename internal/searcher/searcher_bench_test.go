package searcher

import (
	"context"
	"testing"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/catalog"
)

var benchQueries = []string{
	"knee",
	"lower back pain after lifting",
	"running injuries",
	"book appointment",
	"sciatika",
	"xk",
}

func BenchmarkSearch(b *testing.B) {
	cat, err := catalog.Default()
	if err != nil {
		b.Fatal(err)
	}
	s := NewSearcher(cat)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := benchQueries[i%len(benchQueries)]
		if _, err := s.Search(ctx, SearchRequest{Query: q}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Cached(b *testing.B) {
	cat, err := catalog.Default()
	if err != nil {
		b.Fatal(err)
	}
	s := NewSearcher(cat)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := benchQueries[i%len(benchQueries)]
		if _, err := s.Search(ctx, SearchRequest{Query: q, UseCache: true}); err != nil {
			b.Fatal(err)
		}
	}
}
