// cmd/web/main.go
//
// Analytics variables demo host – HTTP entry point.
//
// Start-up
// --------
//
//  1. Load layered config (defaults → conf/analytics.yaml → .env → AV_*).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Open the content DB when database.dsn is set.  Without it, only
//     archive and home pages resolve; single items answer 404.
//
//  4. Build the hook registry and register the analytics plugin.  Debug
//     mode is decided here, once.
//
//  5. Expose Prometheus /metrics and mount the page routes behind the
//     security-header middleware.
//
//  6. Serve until SIGINT/SIGTERM, then shut down gracefully.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanizio/adept-analytics/internal/config"
	"github.com/yanizio/adept-analytics/internal/content"
	"github.com/yanizio/adept-analytics/internal/database"
	"github.com/yanizio/adept-analytics/internal/hook"
	"github.com/yanizio/adept-analytics/internal/logger"
	"github.com/yanizio/adept-analytics/internal/middleware"
	"github.com/yanizio/adept-analytics/internal/page"
	"github.com/yanizio/adept-analytics/internal/plugin"
	"github.com/yanizio/adept-analytics/internal/server"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logOut, err := logger.New(cfg.Log, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	//
	// ── 1.  Content store ───────────────────────────────────────────────
	//
	var store page.Store = noStore{}
	if cfg.Database.DSN != "" {
		logOut.Infow("connecting to content DB")
		db, err := database.Open(context.Background(), cfg.Database.DSN, database.DefaultOptions)
		if err != nil {
			logOut.Fatalw("connect content DB", "err", err)
		}
		defer db.Close()
		store = content.NewRepository(db)
		logOut.Infow("content DB online")
	} else {
		logOut.Warnw("database.dsn not set, single items disabled")
	}

	//
	// ── 2.  Hooks ───────────────────────────────────────────────────────
	//
	reg := hook.New()
	plugin.Register(reg, cfg.Analytics)

	//
	// ── 3.  Router ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(middleware.Security)
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", page.Routes(page.NewResolver(store), newRenderer(reg, cfg.HTTP).render))

	//
	// ── 4.  Serve ───────────────────────────────────────────────────────
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr, "tracker", cfg.HTTP.Tracker)
	if err := server.Run(ctx, server.New(cfg.HTTP.ListenAddr, r)); err != nil {
		logOut.Errorw("http server", "err", err)
	}
	logOut.Infow("shutdown complete")
}

// noStore answers every single-item lookup with content.ErrNotFound.
type noStore struct{}

func (noStore) PostBySlug(context.Context, string, string) (*content.Post, error) {
	return nil, content.ErrNotFound
}

func (noStore) Taxonomies(context.Context, string) ([]string, error) { return nil, nil }

func (noStore) PostTerms(context.Context, uint64, string) ([]content.Term, error) {
	return nil, nil
}
