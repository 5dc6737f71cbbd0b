// internal/content/repository.go
//
// Read-only content queries used by the page resolver.
//
// Context
// -------
// Each helper executes exactly one parameterised SELECT against a *sqlx.DB
// that is already connected to the content database.  Errors are returned
// verbatim, except `sql.ErrNoRows`, which becomes ErrNotFound so the HTTP
// layer can answer 404 without importing database/sql.
//
// PostBySlug runs behind a singleflight group: a burst of requests for the
// same post (a link shared on social media, for example) collapses into a
// single query.
//
// Notes
// -----
//   - Column lists match the fields in model.go; update both together.
//   - The repository never logs; callers decide what to log.
//   - Oxford commas, two spaces after periods.
package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned when no live post matches the lookup.
var ErrNotFound = errors.New("content not found")

// Repository wraps the content tables.
type Repository struct {
	db  *sqlx.DB
	sfg singleflight.Group
}

// NewRepository returns a Repository bound to db.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// PostBySlug fetches one live post by type and slug.
//
// Concurrent lookups of the same post share one query.  The query runs
// detached from any single caller's cancellation; each caller stops
// waiting when its own ctx is done.
func (r *Repository) PostBySlug(ctx context.Context, postType, slug string) (*Post, error) {
	shared := context.WithoutCancel(ctx)
	ch := r.sfg.DoChan(postType+"/"+slug, func() (any, error) {
		const q = `
        SELECT id, post_type, slug, author, comment_count, published_at, deleted_at
        FROM   post
        WHERE  post_type = ?
          AND  slug = ?
          AND  deleted_at IS NULL
        LIMIT  1`
		var p Post
		if err := r.db.GetContext(shared, &p, q, postType, slug); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("post %s/%s: %w", postType, slug, err)
		}
		return &p, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		// Shared callers get their own copy.
		p := *res.Val.(*Post)
		return &p, nil
	}
}

// Taxonomies lists the taxonomy names attached to a post type, in display
// order.
func (r *Repository) Taxonomies(ctx context.Context, postType string) ([]string, error) {
	const q = `
        SELECT   name
        FROM     taxonomy
        WHERE    post_type = ?
        ORDER BY position, name`
	var names []string
	if err := r.db.SelectContext(ctx, &names, q, postType); err != nil {
		return nil, fmt.Errorf("taxonomies of %s: %w", postType, err)
	}
	return names, nil
}

// PostTerms returns the terms of one taxonomy assigned to a post, in the
// order they were assigned.  A post without terms yields an empty slice.
func (r *Repository) PostTerms(ctx context.Context, postID uint64, taxonomy string) ([]Term, error) {
	const q = `
        SELECT   t.id, t.taxonomy, t.slug, t.name
        FROM     post_term pt
        JOIN     term t ON t.id = pt.term_id
        WHERE    pt.post_id = ?
          AND    t.taxonomy = ?
        ORDER BY pt.position, t.id`
	terms := make([]Term, 0, 4)
	if err := r.db.SelectContext(ctx, &terms, q, postID, taxonomy); err != nil {
		return nil, fmt.Errorf("terms of post %d in %s: %w", postID, taxonomy, err)
	}
	return terms, nil
}
