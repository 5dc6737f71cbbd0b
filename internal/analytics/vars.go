// internal/analytics/vars.go
//
// Custom-variable derivation.
//
// Context
// -------
// Build turns a Classification into the ordered VariableMap that the sinks
// number slot by slot.  Insertion order is the slot order, so Build adds
// names in a fixed sequence:
//
//   - single items: <post type>, author, date, comments, then every
//     configured taxonomy in host order;
//   - everything else: exactly one name.
//
// Optional single-item fields are dropped only when they are not listed in
// config.Analytics.SingleVars.  Empty values are kept.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package analytics

import (
	"strconv"

	"github.com/yanizio/adept-analytics/internal/config"
	"github.com/yanizio/adept-analytics/internal/page"
)

// DateLayout is the single-item date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Optional single-item field identifiers that are not taxonomies.
const (
	FieldAuthor   = "author"
	FieldDate     = "date"
	FieldComments = "comments"
)

// VariableMap is an insertion-ordered name→value map.  The zero value is
// ready to use.
type VariableMap struct {
	names  []string
	values map[string]string
}

// Set adds name or replaces its value in place, keeping its position.
// Empty names are ignored.
func (m *VariableMap) Set(name, value string) {
	if name == "" {
		return
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Get returns the value for name.
func (m VariableMap) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Len is the number of variables.
func (m VariableMap) Len() int { return len(m.names) }

// Names returns the names in insertion order.
func (m VariableMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Each calls fn for every variable in insertion order.
func (m VariableMap) Each(fn func(name, value string)) {
	for _, n := range m.names {
		fn(n, m.values[n])
	}
}

// Pair is one name/value entry.
type Pair struct {
	Name  string
	Value string
}

// Pairs returns the entries in insertion order.
func (m VariableMap) Pairs() []Pair {
	out := make([]Pair, 0, len(m.names))
	m.Each(func(n, v string) { out = append(out, Pair{n, v}) })
	return out
}

// Vars classifies pc and builds its variables in one call.
func Vars(pc page.Context, cfg config.Analytics) (VariableMap, error) {
	c, err := Classify(pc)
	if err != nil {
		return VariableMap{}, err
	}
	return Build(c, pc, cfg)
}

// Build derives the variables for c.  pc is consulted only for single
// items, for the post's author, date, comment count, and terms.
func Build(c Classification, pc page.Context, cfg config.Analytics) (VariableMap, error) {
	var m VariableMap

	switch c.Kind {
	case KindHome:
		m.Set("blog", c.Page)

	case KindSingular:
		m.Set(c.PostType, c.Slug)
		if cfg.Includes(FieldAuthor) {
			m.Set(FieldAuthor, pc.PostAuthor())
		}
		if cfg.Includes(FieldDate) {
			m.Set(FieldDate, pc.PostDate().Format(DateLayout))
		}
		if cfg.Includes(FieldComments) {
			m.Set(FieldComments, strconv.Itoa(pc.CommentCount()))
		}
		for _, tax := range c.Taxonomies {
			if !cfg.Includes(tax) {
				continue
			}
			terms, err := pc.Terms(tax)
			if err != nil {
				return VariableMap{}, err
			}
			m.Set(tax, FormatTerms(terms))
		}

	case KindCategory:
		m.Set("archive-category", c.Value)
	case KindTag:
		m.Set("archive-tag", c.Value)
	case KindAuthor:
		m.Set("archive-author", c.Value)
	case KindDay, KindMonth, KindYear:
		m.Set("archive-date", c.Value)
	case KindPostType:
		m.Set("archive-"+c.PostType, c.Page)
	case KindTaxonomy:
		m.Set("archive-"+c.Taxonomy, c.Value)
	}

	return m, nil
}
