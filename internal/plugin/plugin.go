// internal/plugin/plugin.go
//
// Registers the analytics callbacks with the render pipeline.
//
/*
Context
--------
Register is called once at startup with the immutable analytics config.
The install decision is made there and never revisited per request:

  • debug = false → the push-list filter (hook.CustomVars) and the
    direct-emission action (hook.TrackerBeforeJS).  The page template
    decides which one it consults.
  • debug = true  → a single hook.Head action that writes the diagnostic
    comment.  Neither tracker callback is installed.

Every callback classifies the page, builds the variables, and hands them to
one sink.  Errors from the page context propagate to the renderer.

Instrumentation
---------------
  • analytics_pages_classified_total{kind} per callback run.
  • analytics_custom_vars_total{sink} per delivered variable.
  • analytics_hook_errors_total{hook} per failed callback.
  • DEBUG span per delivery with kind and variable count.

Notes
-----
  • Oxford commas, two spaces after periods.
*/
package plugin

import (
	"io"

	"go.uber.org/zap"

	"github.com/yanizio/adept-analytics/internal/analytics"
	"github.com/yanizio/adept-analytics/internal/config"
	"github.com/yanizio/adept-analytics/internal/hook"
	"github.com/yanizio/adept-analytics/internal/metrics"
	"github.com/yanizio/adept-analytics/internal/page"
)

// Sink labels used in metrics.
const (
	SinkPush   = "push"
	SinkDirect = "direct"
)

// Plugin carries the config captured at registration.
type Plugin struct {
	cfg config.Analytics
}

// Register installs the analytics callbacks on reg.
func Register(reg *hook.Registry, cfg config.Analytics) *Plugin {
	p := &Plugin{cfg: cfg}
	if cfg.Debug {
		reg.AddAction(hook.Head, p.debug)
		zap.S().Infow("analytics debug mode, tracker hooks not installed")
		return p
	}
	reg.AddFilter(hook.CustomVars, p.pushVars)
	reg.AddAction(hook.TrackerBeforeJS, p.emitVars)
	zap.S().Infow("analytics hooks installed", "single_vars", cfg.SingleVars)
	return p
}

// Vars classifies pc and builds its variables.
func (p *Plugin) Vars(pc page.Context) (analytics.VariableMap, error) {
	c, err := analytics.Classify(pc)
	if err != nil {
		return analytics.VariableMap{}, err
	}
	metrics.PagesClassifiedTotal.WithLabelValues(c.Kind.String()).Inc()

	vars, err := analytics.Build(c, pc, p.cfg)
	if err != nil {
		return analytics.VariableMap{}, err
	}
	zap.S().Debugw("custom vars built", "kind", c.Kind.String(), "count", vars.Len())
	return vars, nil
}

func (p *Plugin) pushVars(pc page.Context, push []string, slot int) ([]string, error) {
	vars, err := p.Vars(pc)
	if err != nil {
		metrics.HookErrorsTotal.WithLabelValues(hook.CustomVars).Inc()
		return nil, err
	}
	metrics.CustomVarsTotal.WithLabelValues(SinkPush).Add(float64(vars.Len()))
	return analytics.AppendCustomVars(push, slot, vars), nil
}

func (p *Plugin) emitVars(pc page.Context, w io.Writer) error {
	vars, err := p.Vars(pc)
	if err == nil {
		err = analytics.EmitCustomVars(w, vars)
	}
	if err != nil {
		metrics.HookErrorsTotal.WithLabelValues(hook.TrackerBeforeJS).Inc()
		return err
	}
	metrics.CustomVarsTotal.WithLabelValues(SinkDirect).Add(float64(vars.Len()))
	return nil
}

func (p *Plugin) debug(pc page.Context, w io.Writer) error {
	vars, err := p.Vars(pc)
	if err == nil {
		err = analytics.WriteDebug(w, p.cfg, vars, pc.QueryVars())
	}
	if err != nil {
		metrics.HookErrorsTotal.WithLabelValues(hook.Head).Inc()
	}
	return err
}
