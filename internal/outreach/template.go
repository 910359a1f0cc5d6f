// Package outreach composes contact messages for postings.
package outreach

import (
	"fmt"
	"strings"

	"go-gigradar/internal/model"
)

const maxExcerptRunes = 200

// BuildTemplate writes a short outreach message for a posting. Missing
// company or title fall back to generic phrasing; a missing excerpt drops
// the reference clause entirely. Pure string composition.
func BuildTemplate(job *model.JobPosting, requesterName string, skills []string, portfolioURL string) string {
	company := strings.TrimSpace(job.Company)
	if company == "" {
		company = "Hiring team"
	}

	role := strings.TrimSpace(job.Title)
	if role == "" {
		role = "the role"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", company)
	fmt.Fprintf(&b, "I came across your posting for %s and I'd love to help.\n", role)

	if excerpt := truncateExcerpt(job.Excerpt); excerpt != "" {
		fmt.Fprintf(&b, "\n\"%s\" — this sounds like exactly the kind of work I do.\n", excerpt)
	}

	if len(skills) > 0 {
		fmt.Fprintf(&b, "\nI work with %s.\n", strings.Join(skills, ", "))
	}
	if portfolioURL != "" {
		fmt.Fprintf(&b, "Portfolio: %s\n", portfolioURL)
	}

	fmt.Fprintf(&b, "\nBest,\n%s", requesterName)
	return b.String()
}

// truncateExcerpt collapses whitespace and caps the excerpt length so the
// quoted clause stays readable in a chat message.
func truncateExcerpt(excerpt string) string {
	cleaned := strings.Join(strings.Fields(excerpt), " ")
	runes := []rune(cleaned)
	if len(runes) <= maxExcerptRunes {
		return cleaned
	}
	return strings.TrimSpace(string(runes[:maxExcerptRunes])) + "…"
}
