// cmd/web/render.go
//
// Page renderer.  Every page gets the same minimal layout; what differs is
// the <head>:
//
//   - hook.Head output (the debug comment, when debug is on), and
//   - the tracker snippet, built either from the push list filtered through
//     hook.CustomVars ("push") or from statements written by
//     hook.TrackerBeforeJS ("direct").
//
// No snippet is rendered when http.tracking_id is empty.
package main

import (
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/adept-analytics/internal/config"
	"github.com/yanizio/adept-analytics/internal/head"
	"github.com/yanizio/adept-analytics/internal/hook"
	"github.com/yanizio/adept-analytics/internal/page"
)

const layout = `<!DOCTYPE html>
<html>
<head>
{{ .Head.Title }}{{ .Head.Metas }}{{ .Head.Comments }}{{ .Head.Scripts }}
</head>
<body>
<p>{{ .Kinds }}</p>
</body>
</html>
`

type renderer struct {
	reg  *hook.Registry
	http config.HTTP
	tpl  *template.Template
}

func newRenderer(reg *hook.Registry, h config.HTTP) *renderer {
	return &renderer{
		reg:  reg,
		http: h,
		tpl:  template.Must(template.New("page").Parse(layout)),
	}
}

func (rd *renderer) render(w http.ResponseWriter, r *http.Request, pc page.Context) {
	hb := head.New()
	hb.Meta(`<meta charset="utf-8">`)

	var comment strings.Builder
	if err := rd.reg.DoAction(hook.Head, pc, &comment); err != nil {
		rd.fail(w, r, hook.Head, err)
		return
	}
	hb.Comment(comment.String())

	js, err := rd.trackerJS(pc)
	if err != nil {
		rd.fail(w, r, rd.http.Tracker, err)
		return
	}
	hb.InlineScript(js)

	var kinds []string
	if s, ok := pc.(*page.Snapshot); ok {
		kinds = s.Flags.Names()
	}
	hb.SetTitle(pageTitle(pc, kinds))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rd.tpl.Execute(w, map[string]any{"Head": hb, "Kinds": strings.Join(kinds, " ")}); err != nil {
		zap.S().Errorw("render error", "path", r.URL.Path, "err", err)
	}
}

// pageTitle is the post slug on single items and the page kinds elsewhere.
func pageTitle(pc page.Context, kinds []string) string {
	if slug := pc.PostSlug(); slug != "" {
		return slug
	}
	if len(kinds) == 0 {
		return "page"
	}
	return strings.Join(kinds, " ")
}

// trackerJS builds the tracker snippet for the configured integration.
func (rd *renderer) trackerJS(pc page.Context) (string, error) {
	if rd.http.TrackingID == "" {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("var _gaq = _gaq || [];")
	account := "'_setAccount','" + rd.http.TrackingID + "'"

	if rd.http.Tracker == "direct" {
		sb.WriteString("_gaq.push([" + account + "]);")
		if err := rd.reg.DoAction(hook.TrackerBeforeJS, pc, &sb); err != nil {
			return "", err
		}
		sb.WriteString("_gaq.push(['_trackPageview']);")
		return sb.String(), nil
	}

	push, err := rd.reg.ApplyFilters(hook.CustomVars, pc, []string{account}, 1)
	if err != nil {
		return "", err
	}
	push = append(push, "'_trackPageview'")
	for _, p := range push {
		sb.WriteString("_gaq.push([" + p + "]);")
	}
	return sb.String(), nil
}

func (rd *renderer) fail(w http.ResponseWriter, r *http.Request, stage string, err error) {
	zap.S().Errorw("hook failed", "stage", stage, "path", r.URL.Path, "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
