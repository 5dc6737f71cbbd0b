// internal/analytics/debug.go
//
// Debug reporter.
//
// When debug is enabled the tracker integrations are not installed;
// instead the page <head> receives an HTML comment dumping the analytics
// configuration, the computed variables, and the raw query vars as YAML:
//
//	<!-- debug-analytics-variables
//	params:
//	  debug: true
//	  …
//	custom vars:
//	  post: hello-world
//	query vars:
//	  name: hello-world
//	-->
//
// Custom vars keep insertion order; query vars are sorted by key.
package analytics

import (
	"bytes"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yanizio/adept-analytics/internal/config"
)

// MarshalYAML renders the map as an ordered YAML mapping.
func (m VariableMap) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	m.Each(func(name, value string) {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	})
	return n, nil
}

// WriteDebug writes the diagnostic comment block to w.
func WriteDebug(w io.Writer, cfg config.Analytics, vars VariableMap, query map[string]string) error {
	var buf bytes.Buffer
	buf.WriteString("\n<!-- debug-analytics-variables")
	for _, s := range []struct {
		label string
		v     any
	}{
		{"params", cfg},
		{"custom vars", vars},
		{"query vars", query},
	} {
		body, err := dump(s.v)
		if err != nil {
			return err
		}
		buf.WriteString("\n" + s.label + ":\n")
		buf.WriteString(body)
	}
	buf.WriteString("\n-->")
	_, err := w.Write(buf.Bytes())
	return err
}

// dump marshals v and indents every line by two spaces.
func dump(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n"), nil
}
