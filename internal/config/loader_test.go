// internal/config/loader_test.go
//
// Unit-tests for the layered loader and the construction-time New().
//
// Run: go test ./internal/config -v

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_Defaults(t *testing.T) {
	a, err := New(nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if a.Debug {
		t.Fatalf("debug = true, want false")
	}
	if diff := cmp.Diff(DefaultSingleVars(), a.SingleVars); diff != "" {
		t.Fatalf("single_vars mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultSingleVars_UseHostTaxonomyNames(t *testing.T) {
	a, _ := New(nil)
	for _, id := range []string{"category", "post_tag", "post_format"} {
		if !a.Includes(id) {
			t.Errorf("defaults missing %q", id)
		}
	}
	for _, id := range []string{"tag", "format"} {
		if a.Includes(id) {
			t.Errorf("defaults list display name %q", id)
		}
	}
}

func TestNew_SuppliedListReplacesDefaults(t *testing.T) {
	a, err := New(map[string]any{
		"single_vars": []string{"category", "post_format", "profile_cat"},
		"unknown":     "ignored",
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := []string{"category", "post_format", "profile_cat"}
	if diff := cmp.Diff(want, a.SingleVars); diff != "" {
		t.Fatalf("single_vars mismatch (-want +got):\n%s", diff)
	}
	if a.Includes("author") {
		t.Fatalf("author must not survive a replaced list")
	}
}

func TestNew_DebugOnlyKeepsDefaultList(t *testing.T) {
	a, err := New(map[string]any{"debug": true})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !a.Debug || !a.Includes("comments") {
		t.Fatalf("got %+v, want debug with default list", a)
	}
}

func TestNew_BlankIdentifierRejected(t *testing.T) {
	if _, err := New(map[string]any{"single_vars": []string{"date", ""}}); err == nil {
		t.Fatalf("expected validation error for blank identifier")
	}
}

func TestLoadFrom_YAMLAndEnv(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatal(err)
	}
	yml := []byte("analytics:\n  single_vars: [author, date]\nhttp:\n  tracker: direct\n")
	if err := os.WriteFile(filepath.Join(root, "conf", "analytics.yaml"), yml, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AV_ANALYTICS__DEBUG", "true")
	t.Setenv("AV_HTTP__TRACKING_ID", "UA-1234-1")

	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if !cfg.Analytics.Debug {
		t.Errorf("debug = false, want env override true")
	}
	if diff := cmp.Diff([]string{"author", "date"}, cfg.Analytics.SingleVars); diff != "" {
		t.Errorf("single_vars mismatch (-want +got):\n%s", diff)
	}
	if cfg.HTTP.Tracker != "direct" || cfg.HTTP.TrackingID != "UA-1234-1" {
		t.Errorf("http = %+v", cfg.HTTP)
	}
	if cfg.HTTP.ListenAddr != ":8080" {
		t.Errorf("listen_addr = %q, want default", cfg.HTTP.ListenAddr)
	}
	if cfg.Log.Dir != filepath.Join(root, "logs") {
		t.Errorf("log.dir = %q", cfg.Log.Dir)
	}
	if Get() != cfg {
		t.Errorf("Get() did not return the cached config")
	}
}

func TestLoadFrom_EnvListIsSplit(t *testing.T) {
	t.Setenv("AV_ANALYTICS__SINGLE_VARS", "category  comments")

	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if diff := cmp.Diff([]string{"category", "comments"}, cfg.Analytics.SingleVars); diff != "" {
		t.Fatalf("single_vars mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_BadTracker(t *testing.T) {
	t.Setenv("AV_HTTP__TRACKER", "beacon")
	if _, err := LoadFrom(t.TempDir()); err == nil {
		t.Fatalf("expected validation error for tracker=beacon")
	}
}
