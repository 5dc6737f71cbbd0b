package analytics

import (
	"strings"

	"github.com/yanizio/adept-analytics/internal/content"
)

// FormatTerms joins term slugs with a single space, in input order.  nil
// and empty input both yield "".
func FormatTerms(terms []content.Term) string {
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Slug)
	}
	return sb.String()
}
