// internal/page/snapshot.go
//
// Snapshot is the concrete Context built by the Resolver.  Storage-backed
// lookups are injected as functions so the Resolver can bind them to the
// request context, and tests can bind them to fixtures.
package page

import (
	"maps"
	"time"

	"github.com/yanizio/adept-analytics/internal/content"
)

// Snapshot satisfies Context.
type Snapshot struct {
	Flags Flag
	Query map[string]string
	Post  *content.Post

	// TaxonomyLoader and TermLoader may be nil; a nil loader reports no
	// taxonomies or no terms.
	TaxonomyLoader func() ([]string, error)
	TermLoader     func(taxonomy string) ([]content.Term, error)
}

var _ Context = (*Snapshot)(nil)

func (s *Snapshot) Is(f Flag) bool { return f != 0 && s.Flags&f == f }

func (s *Snapshot) QueryVar(key string) string { return s.Query[key] }

// QueryVars returns a copy so callers cannot mutate the snapshot.
func (s *Snapshot) QueryVars() map[string]string { return maps.Clone(s.Query) }

func (s *Snapshot) PostType() string {
	if s.Post == nil {
		return ""
	}
	return s.Post.Type
}

func (s *Snapshot) PostSlug() string {
	if s.Post == nil {
		return ""
	}
	return s.Post.Slug
}

func (s *Snapshot) PostAuthor() string {
	if s.Post == nil {
		return ""
	}
	return s.Post.Author
}

func (s *Snapshot) PostDate() time.Time {
	if s.Post == nil {
		return time.Time{}
	}
	return s.Post.PublishedAt
}

func (s *Snapshot) CommentCount() int {
	if s.Post == nil {
		return 0
	}
	return s.Post.CommentCount
}

func (s *Snapshot) Taxonomies() ([]string, error) {
	if s.TaxonomyLoader == nil {
		return nil, nil
	}
	return s.TaxonomyLoader()
}

func (s *Snapshot) Terms(taxonomy string) ([]content.Term, error) {
	if s.TermLoader == nil {
		return nil, nil
	}
	return s.TermLoader(taxonomy)
}
