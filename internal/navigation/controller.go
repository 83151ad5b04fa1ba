// Package navigation gets a page to a usable state for a target URL. The
// retry/degrade/probe logic is an explicit state machine driven by a backoff
// policy, kept separate from the driver calls so it is testable on its own.
package navigation

import (
	"context"
	"fmt"
	"log"
	"time"

	"uitp/internal/browser"
	"uitp/internal/config"
)

// state is the controller's position in the fallback ladder.
type state int

const (
	stateAttempting state = iota // strict network-quiet attempts, up to maxAttempts
	stateDegraded                // one attempt with the lighter DOM-content-loaded wait
	stateProbing                 // title probe for a usable partial load
	stateDone
	stateFailed
)

// BackoffPolicy maps a failed attempt number to the delay before the next one.
type BackoffPolicy func(attempt int) time.Duration

// FixedBackoff waits the same duration after every failed attempt.
func FixedBackoff(d time.Duration) BackoffPolicy {
	return func(int) time.Duration { return d }
}

// Result describes how navigation ended.
type Result struct {
	Success bool
	Title   string
	// Degraded is set when the strict wait never settled and the page was
	// accepted via the lighter wait or the title probe.
	Degraded bool
	// Attempts counts strict-wait attempts that were made.
	Attempts int
}

// Controller navigates with retry, degraded-strategy fallback and a title
// probe before giving up.
type Controller struct {
	maxAttempts int
	timeout     time.Duration
	backoff     BackoffPolicy
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewController creates a Controller with the default retry policy.
func NewController() *Controller {
	return &Controller{
		maxAttempts: config.DefaultNavigationRetries,
		timeout:     config.DefaultNavigationTimeout,
		backoff:     FixedBackoff(config.DefaultRetryDelay),
		sleep: func(ctx context.Context, d time.Duration) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d):
				return nil
			}
		},
	}
}

// SetBackoff replaces the backoff policy, e.g. to disable delays in tests.
func (c *Controller) SetBackoff(policy BackoffPolicy) {
	c.backoff = policy
}

// Navigate drives page to url. It fails only when every strategy in the
// ladder is exhausted and even the title probe comes back empty.
func (c *Controller) Navigate(ctx context.Context, page browser.Page, url string) (Result, error) {
	res := Result{}
	current := stateAttempting

	for {
		switch current {
		case stateAttempting:
			res.Attempts++
			err := page.Navigate(ctx, url, browser.WaitNetworkIdle, c.timeout)
			if err == nil {
				current = stateDone
				break
			}
			log.Printf("navigation attempt %d failed: %v", res.Attempts, err)
			if res.Attempts >= c.maxAttempts {
				current = stateDegraded
				break
			}
			if serr := c.sleep(ctx, c.backoff(res.Attempts)); serr != nil {
				return res, serr
			}

		case stateDegraded:
			log.Printf("all navigation attempts failed, retrying with DOM-content-loaded wait")
			if err := page.Navigate(ctx, url, browser.WaitDOMContentLoaded, c.timeout); err == nil {
				res.Degraded = true
				current = stateDone
				break
			}
			current = stateProbing

		case stateProbing:
			// The wait condition never settled, but the page may still have
			// loaded something usable.
			title, err := page.Title(ctx)
			if err == nil && title != "" {
				log.Printf("partial page load detected, title: %s", title)
				res.Degraded = true
				res.Title = title
				current = stateDone
				break
			}
			current = stateFailed

		case stateDone:
			res.Success = true
			if res.Title == "" {
				if title, err := page.Title(ctx); err == nil {
					res.Title = title
				}
			}
			return res, nil

		case stateFailed:
			return res, fmt.Errorf("could not navigate to %s after %d attempts", url, res.Attempts)
		}
	}
}
