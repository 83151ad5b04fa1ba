package browser

import (
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
)

// normalizeSelector maps the selector dialect used in test actions onto
// chromedp query options. "text=..." selectors become XPath text matches.
func normalizeSelector(selector string) (string, chromedp.QueryOption) {
	if text, ok := strings.CutPrefix(selector, "text="); ok {
		return textXPath(text), chromedp.BySearch
	}
	if strings.HasPrefix(selector, "//") || strings.HasPrefix(selector, "(//") {
		return selector, chromedp.BySearch
	}
	return selector, chromedp.ByQuery
}

// textXPath matches clickable elements whose visible text contains text.
func textXPath(text string) string {
	return fmt.Sprintf(
		`//*[self::a or self::button or self::span or self::div or self::input][contains(normalize-space(.), %s)]`,
		xpathLiteral(text),
	)
}

// xpathLiteral quotes a string for embedding in an XPath expression. XPath 1.0
// has no escaping, so strings containing both quote kinds use concat().
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if part != "" {
			quoted = append(quoted, "'"+part+"'")
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}

// lookupScript returns a JS expression that evaluates to the first element
// matching selector, or null when nothing matches.
func lookupScript(selector string) string {
	if text, ok := strings.CutPrefix(selector, "text="); ok {
		selector = textXPath(text)
	}
	if strings.HasPrefix(selector, "//") || strings.HasPrefix(selector, "(//") {
		return fmt.Sprintf(
			`document.evaluate(%q, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null).singleNodeValue`,
			selector,
		)
	}
	// CSS selectors with vendor-specific extensions would throw in
	// querySelector; guard with a try inside an IIFE.
	return fmt.Sprintf(
		`(function() { try { return document.querySelector(%q); } catch (e) { return null; } })()`,
		selector,
	)
}
