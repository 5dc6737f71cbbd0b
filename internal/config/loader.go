// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from four layers (highest
precedence last):

  1. Built-in defaults (confmap).
  2. `conf/analytics.yaml`, when present.
  3. Optional `.env` file at `<root>/conf/.env`, exported into the process
     environment so layer 4 sees it.
  4. Environment variables prefixed `AV_`, where `__` maps to “.”
     (e.g., `AV_HTTP__TRACKER → http.tracker`).  The list key
     `analytics.single_vars` is split on whitespace.

After merging, the tree is unmarshalled into typed structs, validated, and
cached in an `atomic.Pointer` for lock-free reads.

`New()` is the construction-time entry point for embedders that do not
want files or env at all: it takes a flat map with the recognised keys
`debug` and `single_vars`, ignores anything else, and fills the rest from
defaults.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML read.
  • ERROR spans — YAML parse, env overlay, unmarshal, validation failures.
  • INFO  span  — final “config loaded” with key highlights.
  • Logs use the global *sugared* logger (`zap.S()`), a no-op until the
    file logger is installed.

Notes
-----
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const (
	envPrefix = "AV_"
	confFile  = "analytics.yaml"
)

var current atomic.Pointer[Config]

// DefaultSingleVars is the optional single-item field set used when the
// caller supplies none.
//
// Entries other than author, date, and comments are taxonomy names as the
// host registers them, not display names: tags are "post_tag" and post
// formats are "post_format".  A configured "tag" or "format" therefore
// matches no taxonomy and emits nothing.
func DefaultSingleVars() []string {
	return []string{"category", "post_tag", "author", "date", "comments", "post_format"}
}

func defaults() map[string]any {
	return map[string]any{
		"analytics.debug":       false,
		"analytics.single_vars": DefaultSingleVars(),
		"http.listen_addr":      ":8080",
		"http.tracker":          "push",
		"http.tracking_id":      "",
		"database.dsn":          "",
		"log.dir":               "logs",
		"log.tee":               false,
	}
}

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves AV_ROOT or climbs directories until conf/analytics.yaml
// is found.  Falls back to the working directory.
func rootDir() string {
	if r := os.Getenv(envPrefix + "ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", confFile)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load merges every layer under the discovered root, validates, and caches.
func Load() (*Config, error) {
	return LoadFrom(rootDir())
}

// LoadFrom is Load with an explicit root directory.
func LoadFrom(root string) (*Config, error) {
	zap.S().Debugw("config root resolved", "root", root)

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}

	yamlPath := filepath.Join(root, "conf", confFile)
	if _, err := os.Stat(yamlPath); err == nil {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, err
		}
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envKey), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}
	if !filepath.IsAbs(cfg.Log.Dir) {
		cfg.Log.Dir = filepath.Join(root, cfg.Log.Dir)
	}
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"debug", cfg.Analytics.Debug,
		"single_vars", cfg.Analytics.SingleVars,
		"tracker", cfg.HTTP.Tracker,
		"listen_addr", cfg.HTTP.ListenAddr,
	)
	return &cfg, nil
}

// envKey maps AV_ANALYTICS__SINGLE_VARS → analytics.single_vars.
func envKey(key, value string) (string, any) {
	key = strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, envPrefix), "__", "."))
	if key == "analytics.single_vars" {
		return key, strings.Fields(value)
	}
	return key, value
}

// New builds an Analytics section from a flat construction-time map.
// Recognised keys are `debug` and `single_vars`; unknown keys are ignored.
// A supplied key replaces its default outright.
func New(args map[string]any) (Analytics, error) {
	k := koanf.New(".")
	base := map[string]any{
		"debug":       false,
		"single_vars": DefaultSingleVars(),
	}
	if err := k.Load(confmap.Provider(base, ""), nil); err != nil {
		return Analytics{}, err
	}
	if len(args) > 0 {
		if err := k.Load(confmap.Provider(args, ""), nil); err != nil {
			return Analytics{}, err
		}
	}

	var a Analytics
	if err := k.Unmarshal("", &a); err != nil {
		return Analytics{}, err
	}
	if err := validateStruct(&a); err != nil {
		return Analytics{}, err
	}
	return a, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// Get returns the Config cached by the last Load, or nil before the first.
func Get() *Config { return current.Load() }
