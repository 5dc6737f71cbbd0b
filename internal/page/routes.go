// internal/page/routes.go
//
// chi routes that map public URLs onto Resolver constructors.
//
//	/                                 home            (?paged=N)
//	/page/{paged}                     home, page N
//	/category/{name}                  category archive
//	/tag/{tag}                        tag archive
//	/author/{name}                    author archive
//	/archive/{year}[/{month}[/{day}]] date archive
//	/type/{postType}[/page/{paged}]   post-type archive (or ?paged=N)
//	/tax/{taxonomy}/{term}            custom taxonomy archive
//	/{postType}/{slug}                single item
//
// Static prefixes win over the catch-all single route, so post types must
// not be named page, category, tag, author, archive, type, or tax.
//
// Every free-text segment is restricted to slug characters (slugPat) and
// paged to digits.  Those values reach the tracker snippet verbatim, so
// anything else answers 404 here.
package page

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/adept-analytics/internal/content"
)

// slugPat is the chi pattern suffix for slug-like segments.
const slugPat = ":[a-z0-9_-]+}"

// RenderFunc receives the resolved Context for one request.
type RenderFunc func(w http.ResponseWriter, r *http.Request, pc Context)

// Routes mounts every page kind on a fresh router.
func Routes(res *Resolver, render RenderFunc) chi.Router {
	r := chi.NewRouter()

	serve := func(build func(*http.Request) (*Snapshot, error)) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			snap, err := build(req)
			if err != nil {
				if errors.Is(err, content.ErrNotFound) {
					http.NotFound(w, req)
					return
				}
				zap.S().Errorw("page resolve failed", "path", req.URL.Path, "err", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			render(w, req, snap)
		}
	}
	static := func(build func(*http.Request) *Snapshot) http.HandlerFunc {
		return serve(func(req *http.Request) (*Snapshot, error) { return build(req), nil })
	}

	home := static(func(req *http.Request) *Snapshot {
		return res.Home(pagedParam(req))
	})
	r.Get("/", home)
	r.Get("/page/{paged:[0-9]+}", home)
	r.Get("/category/{name"+slugPat, static(func(req *http.Request) *Snapshot {
		return res.CategoryArchive(chi.URLParam(req, "name"))
	}))
	r.Get("/tag/{tag"+slugPat, static(func(req *http.Request) *Snapshot {
		return res.TagArchive(chi.URLParam(req, "tag"))
	}))
	r.Get("/author/{name"+slugPat, static(func(req *http.Request) *Snapshot {
		return res.AuthorArchive(chi.URLParam(req, "name"))
	}))

	r.Route("/archive/{year:[0-9]{4}}", func(ar chi.Router) {
		date := static(func(req *http.Request) *Snapshot {
			return res.DateArchive(
				chi.URLParam(req, "year"),
				chi.URLParam(req, "month"),
				chi.URLParam(req, "day"),
			)
		})
		ar.Get("/", date)
		ar.Get("/{month:[0-9]{1,2}}", date)
		ar.Get("/{month:[0-9]{1,2}}/{day:[0-9]{1,2}}", date)
	})

	typeArchive := static(func(req *http.Request) *Snapshot {
		return res.PostTypeArchive(chi.URLParam(req, "postType"), pagedParam(req))
	})
	r.Get("/type/{postType"+slugPat, typeArchive)
	r.Get("/type/{postType"+slugPat+"/page/{paged:[0-9]+}", typeArchive)
	r.Get("/tax/{taxonomy"+slugPat+"/{term"+slugPat, static(func(req *http.Request) *Snapshot {
		return res.TaxArchive(chi.URLParam(req, "taxonomy"), chi.URLParam(req, "term"))
	}))
	r.Get("/{postType"+slugPat+"/{slug"+slugPat, serve(func(req *http.Request) (*Snapshot, error) {
		return res.Single(req.Context(), chi.URLParam(req, "postType"), chi.URLParam(req, "slug"))
	}))

	return r
}

// pagedParam prefers the /page/{paged} segment over the ?paged= query.
func pagedParam(req *http.Request) string {
	if p := chi.URLParam(req, "paged"); p != "" {
		return p
	}
	return req.URL.Query().Get(QueryPaged)
}
