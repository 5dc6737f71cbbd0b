// internal/analytics/classify.go
//
// Page classification.
//
/*
Context
--------
Classify walks an ordered rule list and stops at the first rule whose
flags are all set on the page.  The order is the contract:

  1. home
  2. singular
  3. archive sub-kinds: category, tag, author, date (day, month, year),
     post-type archive, custom taxonomy

Date granularity is checked day first because a day page also reports
month and year.  A date archive with no granularity is a terminal
KindNone rule, so evaluation does not fall through to the post-type or
taxonomy rules.

Notes
-----
  • Rules() exposes a copy of the list for inspection and tests.
  • Oxford commas, two spaces after periods.
*/
package analytics

import (
	"strconv"

	"github.com/yanizio/adept-analytics/internal/page"
)

// Kind is the page kind a Classification resolved to.
type Kind int

const (
	KindNone Kind = iota
	KindHome
	KindSingular
	KindCategory
	KindTag
	KindAuthor
	KindDay
	KindMonth
	KindYear
	KindPostType
	KindTaxonomy
)

var kindNames = [...]string{
	KindNone:     "none",
	KindHome:     "home",
	KindSingular: "singular",
	KindCategory: "category",
	KindTag:      "tag",
	KindAuthor:   "author",
	KindDay:      "day",
	KindMonth:    "month",
	KindYear:     "year",
	KindPostType: "post_type",
	KindTaxonomy: "taxonomy",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Classification is the tagged result of Classify.  Which fields are set
// depends on Kind:
//
//	KindHome      Page
//	KindSingular  PostType, Slug, Taxonomies
//	KindCategory  Value (category name)
//	KindTag       Value (tag slug)
//	KindAuthor    Value (author name)
//	KindDay…Year  Value (formatted date)
//	KindPostType  PostType, Page
//	KindTaxonomy  Taxonomy, Value (term slug)
type Classification struct {
	Kind       Kind
	Page       string
	PostType   string
	Slug       string
	Taxonomy   string
	Value      string
	Taxonomies []string
}

// Rule is one entry of the ordered classification list.
type Rule struct {
	Kind  Kind
	Flags page.Flag
	// derive fills the kind-specific fields; nil for terminal KindNone rules.
	derive func(pc page.Context, c *Classification) error
}

var rules = []Rule{
	{KindHome, page.Home, func(pc page.Context, c *Classification) error {
		c.Page = pageNumber(pc)
		return nil
	}},
	{KindSingular, page.Singular, func(pc page.Context, c *Classification) error {
		c.PostType = pc.PostType()
		c.Slug = pc.PostSlug()
		taxes, err := pc.Taxonomies()
		if err != nil {
			return err
		}
		c.Taxonomies = taxes
		return nil
	}},
	{KindCategory, page.Archive | page.Category, queryValue(page.QueryCategoryName)},
	{KindTag, page.Archive | page.Tag, queryValue(page.QueryTag)},
	{KindAuthor, page.Archive | page.Author, queryValue(page.QueryAuthorName)},
	{KindDay, page.Archive | page.Date | page.Day, func(pc page.Context, c *Classification) error {
		c.Value = pc.QueryVar(page.QueryYear) + "-" + padMonth(pc.QueryVar(page.QueryMonth)) +
			"-" + pc.QueryVar(page.QueryDay)
		return nil
	}},
	{KindMonth, page.Archive | page.Date | page.Month, func(pc page.Context, c *Classification) error {
		c.Value = pc.QueryVar(page.QueryYear) + "-" + padMonth(pc.QueryVar(page.QueryMonth))
		return nil
	}},
	{KindYear, page.Archive | page.Date | page.Year, queryValue(page.QueryYear)},
	{KindNone, page.Archive | page.Date, nil},
	{KindPostType, page.Archive | page.PostTypeArchive, func(pc page.Context, c *Classification) error {
		c.PostType = pc.QueryVar(page.QueryPostType)
		c.Page = pageNumber(pc)
		return nil
	}},
	{KindTaxonomy, page.Archive | page.Tax, func(pc page.Context, c *Classification) error {
		c.Taxonomy = pc.QueryVar(page.QueryTaxonomy)
		c.Value = pc.QueryVar(page.QueryTerm)
		return nil
	}},
}

// Rules returns a copy of the ordered rule list.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify resolves pc to exactly one Kind.  An unrecognised page yields
// KindNone and a nil error.  Errors from the page context are returned
// unchanged.
func Classify(pc page.Context) (Classification, error) {
	for _, r := range rules {
		if !pc.Is(r.Flags) {
			continue
		}
		c := Classification{Kind: r.Kind}
		if r.derive == nil {
			return c, nil
		}
		if err := r.derive(pc, &c); err != nil {
			return Classification{}, err
		}
		return c, nil
	}
	return Classification{Kind: KindNone}, nil
}

func queryValue(key string) func(page.Context, *Classification) error {
	return func(pc page.Context, c *Classification) error {
		c.Value = pc.QueryVar(key)
		return nil
	}
}

// pageNumber returns the paged query var, or "1" when it is unset or "0".
func pageNumber(pc page.Context) string {
	p := pc.QueryVar(page.QueryPaged)
	if p == "" || p == "0" {
		return "1"
	}
	return p
}

// padMonth renders the month as two digits.  Anything that is not a
// number counts as zero, so a missing month renders "00".
func padMonth(m string) string {
	n, _ := strconv.Atoi(m)
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
