// internal/page/context.go
//
// Page context handed to the analytics core on every render.
//
/*
Context
--------
The host builds one Context per render and treats it as immutable input.
It answers two kinds of questions:

  1. Which page kind is this?  `Is(flag)` mirrors the host's own routing
     decision.  Flags are not exclusive: a day archive also reports
     Month, Year, Date, and Archive, exactly like the host's query
     parser does.
  2. What does the page carry?  Raw query vars, the current post, and
     the taxonomy terms attached to it.

Taxonomies and Terms may hit storage, so they return errors; everything
else is already resolved when the Context is built.

Notes
-----
  • Query var names follow the host's public query vocabulary (see the
    Query* constants).
  • Oxford commas, two spaces after periods.
*/
package page

import (
	"time"

	"github.com/yanizio/adept-analytics/internal/content"
)

// Flag is one page-kind predicate.
type Flag uint16

const (
	Home Flag = 1 << iota
	Singular
	Archive
	Category
	Tag
	Author
	Date
	Day
	Month
	Year
	PostTypeArchive
	Tax
)

var flagNames = []struct {
	f    Flag
	name string
}{
	{Home, "home"},
	{Singular, "singular"},
	{Archive, "archive"},
	{Category, "category"},
	{Tag, "tag"},
	{Author, "author"},
	{Date, "date"},
	{Day, "day"},
	{Month, "month"},
	{Year, "year"},
	{PostTypeArchive, "post_type_archive"},
	{Tax, "tax"},
}

// Names lists the set predicates, lowest bit first.
func (f Flag) Names() []string {
	var out []string
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			out = append(out, fn.name)
		}
	}
	return out
}

// Public query var names.
const (
	QueryPaged        = "paged"
	QueryCategoryName = "category_name"
	QueryTag          = "tag"
	QueryAuthorName   = "author_name"
	QueryYear         = "year"
	QueryMonth        = "monthnum"
	QueryDay          = "day"
	QueryPostType     = "post_type"
	QueryTaxonomy     = "taxonomy"
	QueryTerm         = "term"
	QueryName         = "name"
)

// Context is the read-only view of the page being rendered.
type Context interface {
	// Is reports whether every bit in f is set.
	Is(f Flag) bool

	QueryVar(key string) string
	QueryVars() map[string]string

	PostType() string
	PostSlug() string
	PostAuthor() string
	PostDate() time.Time
	CommentCount() int

	// Taxonomies lists the taxonomies registered for the current post
	// type, in host order.
	Taxonomies() ([]string, error)
	// Terms returns the current post's terms in one taxonomy.
	Terms(taxonomy string) ([]content.Term, error)
}
