package orchestrator

import (
	"regexp"
	"strings"

	"uitp/internal/domain"
)

// accountIndicators are URL fragments that signal a successful login landing
// page. The rule is deliberately lenient: storefronts rarely echo the exact
// expected text, but they do route to one of these paths.
var accountIndicators = []string{"account", "profile", "dashboard", "my-account", "customer"}

// Verdict classifies a finished run from its final page content, final URL
// and the expected output. Pure function; comparisons are case-insensitive.
func Verdict(content, url, expected string) domain.VerdictKind {
	c := strings.ToLower(content)
	u := strings.ToLower(url)
	e := strings.ToLower(expected)

	if strings.Contains(c, e) || strings.Contains(u, e) {
		return domain.VerdictPass
	}

	if strings.Contains(e, "account") {
		for _, indicator := range accountIndicators {
			if strings.Contains(u, indicator) {
				return domain.VerdictPass
			}
		}
	}

	return domain.VerdictFail
}

// Preview bounds content to limit runes, marking truncation.
func Preview(content string, limit int) string {
	if limit <= 0 || len(content) <= limit {
		return content
	}
	return content[:limit] + "..."
}

var domainPattern = regexp.MustCompile(`https?://(?:www\.)?([^/]+)`)

// PageContext derives the page-context label embedded in translation prompts
// from a URL, e.g. "demo.opencart.com website".
func PageContext(url string) string {
	if m := domainPattern.FindStringSubmatch(url); m != nil {
		return m[1] + " website"
	}
	return "ecommerce website"
}
