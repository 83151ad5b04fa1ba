package executor

import (
	"context"
	"log"
	"strings"
	"time"

	"uitp/internal/browser"
	"uitp/internal/config"
	"uitp/internal/domain"
)

// Executor executes one Action against the current page. Execute never
// returns an error: internal failures resolve to a false outcome so one bad
// step never aborts the remaining steps.
type Executor struct {
	selectorTimeout time.Duration
	navigateTimeout time.Duration
	sleep           func(ctx context.Context, d time.Duration) error
}

// New creates an Executor with the default timeouts.
func New() *Executor {
	return &Executor{
		selectorTimeout: config.DefaultSelectorTimeout,
		navigateTimeout: config.DefaultActionNavTimeout,
		sleep:           sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Execute performs action on page and reports whether it succeeded.
func (e *Executor) Execute(ctx context.Context, page browser.Page, action domain.Action) bool {
	log.Printf("executing: %s", action.Description)

	switch action.Type {
	case domain.ActionClick:
		return e.click(ctx, page, action)
	case domain.ActionFill:
		return e.fill(ctx, page, action)
	case domain.ActionNavigate:
		return e.navigate(ctx, page, action)
	case domain.ActionWait:
		return e.wait(ctx, action)
	case domain.ActionCheck:
		return e.check(ctx, page, action)
	default:
		log.Printf("unknown action type %q", action.Type)
		return false
	}
}

func (e *Executor) click(ctx context.Context, page browser.Page, action domain.Action) bool {
	if action.Selector == "" {
		log.Printf("no selector provided for click action")
		return false
	}

	// Hidden login UI often sits behind an account trigger; reveal it
	// first. Failures here are logged and ignored.
	e.revealAccountUI(ctx, page)

	for _, sel := range clickChain(action) {
		e.coerceVisible(ctx, page, sel)
		if err := page.Click(ctx, sel, e.selectorTimeout); err != nil {
			log.Printf("failed to click with selector %s: %v", sel, err)
			continue
		}
		log.Printf("successfully clicked using selector: %s", sel)
		_ = e.sleep(ctx, time.Second)
		return true
	}
	return false
}

func (e *Executor) fill(ctx context.Context, page browser.Page, action domain.Action) bool {
	if action.Selector == "" {
		log.Printf("no selector provided for fill action")
		return false
	}

	for _, sel := range fillChain(action) {
		e.coerceVisible(ctx, page, sel)
		if err := page.Fill(ctx, sel, action.Value, e.selectorTimeout); err != nil {
			log.Printf("failed to fill with selector %s: %v", sel, err)
			continue
		}
		log.Printf("successfully filled %s using selector: %s", action.Description, sel)
		return true
	}
	return false
}

func (e *Executor) navigate(ctx context.Context, page browser.Page, action domain.Action) bool {
	if action.URL == "" {
		log.Printf("no URL provided for navigate action")
		return false
	}
	if err := page.Navigate(ctx, action.URL, browser.WaitDOMContentLoaded, e.navigateTimeout); err != nil {
		log.Printf("failed to navigate to %s: %v", action.URL, err)
		return false
	}
	log.Printf("successfully navigated to %s", action.URL)
	return true
}

func (e *Executor) wait(ctx context.Context, action domain.Action) bool {
	d := time.Duration(action.Time * float64(time.Second))
	if d <= 0 {
		d = time.Second
	}
	if err := e.sleep(ctx, d); err != nil {
		return false
	}
	log.Printf("waited for %s", d)
	return true
}

func (e *Executor) check(ctx context.Context, page browser.Page, action domain.Action) bool {
	if action.Text == "" {
		// A bare check is a "view" step; seeing the page is enough.
		log.Printf("viewing page content")
		return true
	}
	content, err := page.Content(ctx)
	if err != nil {
		log.Printf("failed to fetch page content: %v", err)
		return false
	}
	found := strings.Contains(strings.ToLower(content), strings.ToLower(action.Text))
	log.Printf("checking for text %q: found=%v", action.Text, found)
	return found
}

// revealAccountUI clicks the first present account trigger to expose login
// forms hidden in drawers or popups. Best effort only.
func (e *Executor) revealAccountUI(ctx context.Context, page browser.Page) {
	for _, sel := range accountTriggerSelectors {
		found, err := page.Exists(ctx, sel)
		if err != nil || !found {
			continue
		}
		log.Printf("found possible account trigger %s, clicking", sel)
		if err := page.Click(ctx, sel, e.selectorTimeout); err != nil {
			log.Printf("account trigger click failed: %v", err)
			continue
		}
		_ = e.sleep(ctx, time.Second) // let the reveal animation finish
		return
	}
}

// coerceVisible force-shows a present-but-hidden element before an attempt.
// Failure is a logged no-op; it never alters the fallback chain.
func (e *Executor) coerceVisible(ctx context.Context, page browser.Page, selector string) {
	found, err := page.Exists(ctx, selector)
	if err != nil || !found {
		return
	}
	if err := page.ForceVisible(ctx, selector); err != nil {
		log.Printf("visibility override failed for %s: %v", selector, err)
	}
}
