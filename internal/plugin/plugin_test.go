// internal/plugin/plugin_test.go
//
// Unit-tests for callback installation and delivery.
//
// Run: go test ./internal/plugin -v

package plugin

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yanizio/adept-analytics/internal/config"
	"github.com/yanizio/adept-analytics/internal/content"
	"github.com/yanizio/adept-analytics/internal/hook"
	"github.com/yanizio/adept-analytics/internal/metrics"
	"github.com/yanizio/adept-analytics/internal/page"
)

func tagArchive() *page.Snapshot {
	return &page.Snapshot{
		Flags: page.Archive | page.Tag,
		Query: map[string]string{page.QueryTag: "golang"},
	}
}

func TestRegister_TrackerMode(t *testing.T) {
	reg := hook.New()
	cfg, _ := config.New(nil)
	Register(reg, cfg)

	if !reg.HasFilter(hook.CustomVars) || !reg.HasAction(hook.TrackerBeforeJS) {
		t.Fatalf("tracker hooks not installed")
	}
	if reg.HasAction(hook.Head) {
		t.Fatalf("debug hook installed outside debug mode")
	}

	before := testutil.ToFloat64(metrics.CustomVarsTotal.WithLabelValues(SinkPush))
	push, err := reg.ApplyFilters(hook.CustomVars, tagArchive(), []string{"'_setAccount','UA-1'"}, 1)
	if err != nil {
		t.Fatalf("ApplyFilters error: %v", err)
	}
	want := []string{"'_setAccount','UA-1'", "'_setCustomVar',1,'archive-tag','golang',3"}
	if diff := cmp.Diff(want, push); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if got := testutil.ToFloat64(metrics.CustomVarsTotal.WithLabelValues(SinkPush)) - before; got != 1 {
		t.Fatalf("push counter delta = %v, want 1", got)
	}

	var sb strings.Builder
	if err := reg.DoAction(hook.TrackerBeforeJS, tagArchive(), &sb); err != nil {
		t.Fatalf("DoAction error: %v", err)
	}
	if sb.String() != "_gaq.push(['_setCustomVar',1,'archive-tag','golang',3]);" {
		t.Fatalf("direct output = %q", sb.String())
	}
}

func TestRegister_DebugMode(t *testing.T) {
	reg := hook.New()
	cfg, _ := config.New(map[string]any{"debug": true})
	Register(reg, cfg)

	if reg.HasFilter(hook.CustomVars) || reg.HasAction(hook.TrackerBeforeJS) {
		t.Fatalf("tracker hooks installed in debug mode")
	}

	var sb strings.Builder
	if err := reg.DoAction(hook.Head, tagArchive(), &sb); err != nil {
		t.Fatalf("DoAction error: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"debug-analytics-variables", "archive-tag: golang", "tag: golang"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestRegister_UnrecognizedPageEmitsNothing(t *testing.T) {
	reg := hook.New()
	cfg, _ := config.New(nil)
	Register(reg, cfg)

	push, err := reg.ApplyFilters(hook.CustomVars, &page.Snapshot{}, nil, 1)
	if err != nil || len(push) != 0 {
		t.Fatalf("push = %v, %v; want empty", push, err)
	}
	var sb strings.Builder
	if err := reg.DoAction(hook.TrackerBeforeJS, &page.Snapshot{}, &sb); err != nil || sb.Len() != 0 {
		t.Fatalf("direct = %q, %v; want empty", sb.String(), err)
	}
}

func TestRegister_HostErrorPropagates(t *testing.T) {
	reg := hook.New()
	cfg, _ := config.New(nil)
	Register(reg, cfg)

	boom := errors.New("terms unavailable")
	pc := &page.Snapshot{
		Flags:          page.Singular,
		Post:           &content.Post{Type: "post", Slug: "x"},
		TaxonomyLoader: func() ([]string, error) { return []string{"category"}, nil },
		TermLoader:     func(string) ([]content.Term, error) { return nil, boom },
	}

	before := testutil.ToFloat64(metrics.HookErrorsTotal.WithLabelValues(hook.CustomVars))
	if _, err := reg.ApplyFilters(hook.CustomVars, pc, nil, 1); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if got := testutil.ToFloat64(metrics.HookErrorsTotal.WithLabelValues(hook.CustomVars)) - before; got != 1 {
		t.Fatalf("error counter delta = %v, want 1", got)
	}
}
