package browser

import (
	"context"
	"time"
)

// WaitCondition selects how long navigation blocks before returning.
type WaitCondition int

const (
	// WaitNetworkIdle waits for the load event plus a quiet network window.
	WaitNetworkIdle WaitCondition = iota
	// WaitDOMContentLoaded returns as soon as the DOM is parsed.
	WaitDOMContentLoaded
)

// Page is the driver surface the executor, navigator and orchestrator consume.
// The chromedp-backed Session implements it; tests substitute fakes.
type Page interface {
	// Navigate loads url and blocks per the wait condition, bounded by timeout.
	Navigate(ctx context.Context, url string, wait WaitCondition, timeout time.Duration) error
	// Exists reports whether any element matches the selector right now.
	Exists(ctx context.Context, selector string) (bool, error)
	// ForceVisible overrides display/visibility/opacity on the first match.
	ForceVisible(ctx context.Context, selector string) error
	// Click clicks the first element matching selector, bounded by timeout.
	Click(ctx context.Context, selector string, timeout time.Duration) error
	// Fill clears and types value into the first match, bounded by timeout.
	Fill(ctx context.Context, selector, value string, timeout time.Duration) error
	// Content returns the full page HTML.
	Content(ctx context.Context) (string, error)
	// Title returns the current document title.
	Title(ctx context.Context) (string, error)
	// URL returns the current location.
	URL(ctx context.Context) (string, error)
	// Screenshot writes a full-viewport PNG to path.
	Screenshot(ctx context.Context, path string) error
}
