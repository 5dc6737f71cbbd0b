// internal/page/resolver.go
//
// Resolver turns routed request parameters into a Snapshot.
//
// Context
// -------
// Every constructor sets the same predicate flags and query vars that the
// host's own query parser would set for that URL.  Only Single touches
// storage up front (the post row); taxonomy and term lookups are bound
// lazily so a render that never asks for them never pays for them.
//
// Notes
// -----
// • Date archives set Year, plus Month and Day when present.  Day pages
//   therefore also report Month and Year.
// • Oxford commas, two spaces after periods.
package page

import (
	"context"
	"strconv"

	"github.com/yanizio/adept-analytics/internal/content"
)

// Store is the subset of content.Repository the resolver needs.
type Store interface {
	PostBySlug(ctx context.Context, postType, slug string) (*content.Post, error)
	Taxonomies(ctx context.Context, postType string) ([]string, error)
	PostTerms(ctx context.Context, postID uint64, taxonomy string) ([]content.Term, error)
}

// Resolver builds per-request snapshots.
type Resolver struct {
	store Store
}

// NewResolver returns a Resolver backed by store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Home is the blog index.  paged may be empty.
func (r *Resolver) Home(paged string) *Snapshot {
	return &Snapshot{Flags: Home, Query: vars(QueryPaged, pageNumber(paged))}
}

// Single loads the post and binds its taxonomy lookups to ctx.
func (r *Resolver) Single(ctx context.Context, postType, slug string) (*Snapshot, error) {
	post, err := r.store.PostBySlug(ctx, postType, slug)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Flags: Singular,
		Query: vars(QueryPostType, postType, QueryName, slug),
		Post:  post,
		TaxonomyLoader: func() ([]string, error) {
			return r.store.Taxonomies(ctx, post.Type)
		},
		TermLoader: func(taxonomy string) ([]content.Term, error) {
			return r.store.PostTerms(ctx, post.ID, taxonomy)
		},
	}, nil
}

func (r *Resolver) CategoryArchive(name string) *Snapshot {
	return &Snapshot{Flags: Archive | Category, Query: vars(QueryCategoryName, name)}
}

func (r *Resolver) TagArchive(tag string) *Snapshot {
	return &Snapshot{Flags: Archive | Tag, Query: vars(QueryTag, tag)}
}

func (r *Resolver) AuthorArchive(name string) *Snapshot {
	return &Snapshot{Flags: Archive | Author, Query: vars(QueryAuthorName, name)}
}

// DateArchive accepts month and day as empty strings for coarser archives.
func (r *Resolver) DateArchive(year, month, day string) *Snapshot {
	f := Archive | Date | Year
	if month != "" {
		f |= Month
	}
	if day != "" {
		f |= Day
	}
	return &Snapshot{
		Flags: f,
		Query: vars(QueryYear, year, QueryMonth, month, QueryDay, day),
	}
}

func (r *Resolver) PostTypeArchive(postType, paged string) *Snapshot {
	return &Snapshot{
		Flags: Archive | PostTypeArchive,
		Query: vars(QueryPostType, postType, QueryPaged, pageNumber(paged)),
	}
}

func (r *Resolver) TaxArchive(taxonomy, term string) *Snapshot {
	return &Snapshot{
		Flags: Archive | Tax,
		Query: vars(QueryTaxonomy, taxonomy, QueryTerm, term),
	}
}

// pageNumber normalises a raw paged value the way the host parses it as
// an integer: anything that is not a positive number is unset.
func pageNumber(raw string) string {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// vars builds a query map from key/value pairs, skipping empty values the
// way an unset query var is absent.
func vars(kv ...string) map[string]string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			m[kv[i]] = kv[i+1]
		}
	}
	return m
}
