// internal/head/builder.go
//
// The Builder collects everything that should appear inside a page’s
// <head> element.  It is scoped to a single render.  The renderer and hook
// output push into the builder, then the page template emits each slice.
//
// Features
// --------
//   - SetTitle     – single <title> tag (last call wins).
//   - Meta         – pre-formed tags with deduplication.
//   - InlineScript – raw JavaScript wrapped in <script>…</script>.
//   - Comment      – raw HTML comment blocks (debug output).
//   - Render helpers return template.HTML.
//
// Script bodies and comments are trusted: they come from our own hooks, not
// from user input.
package head

import (
	"html/template"
	"strings"
	"sync"
)

// Builder is one render's <head> content.
type Builder struct {
	mu sync.Mutex

	title string

	metas    []string
	scripts  []string
	comments []string

	// seen tracks keys for deduplication.
	seen map[string]struct{}
}

func New() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// SetTitle overrides the page <title>.  The last caller wins.
func (b *Builder) SetTitle(t string) {
	b.mu.Lock()
	b.title = t
	b.mu.Unlock()
}

// Title returns a fully formed <title> tag or an empty string.
func (b *Builder) Title() template.HTML {
	if b.title == "" {
		return ""
	}
	return template.HTML("<title>" + template.HTMLEscapeString(b.title) + "</title>")
}

func (b *Builder) Meta(tag string) { b.add("meta:"+tag, &b.metas, tag) }

// InlineScript stores js; empty bodies are skipped.
func (b *Builder) InlineScript(js string) {
	if js == "" {
		return
	}
	b.add("script:"+js, &b.scripts, "<script>"+js+"</script>")
}

// Comment stores a raw comment block; empty blocks are skipped.
func (b *Builder) Comment(c string) {
	if c == "" {
		return
	}
	b.add("comment:"+c, &b.comments, c)
}

func (b *Builder) add(key string, tgt *[]string, tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.seen[key]; dup {
		return
	}
	b.seen[key] = struct{}{}
	*tgt = append(*tgt, tag)
}

func (b *Builder) Metas() template.HTML    { return concat(b.metas) }
func (b *Builder) Scripts() template.HTML  { return concat(b.scripts) }
func (b *Builder) Comments() template.HTML { return concat(b.comments) }

// concat joins pre-formed tags without a separator.
func concat(sl []string) template.HTML {
	return template.HTML(strings.Join(sl, ""))
}
