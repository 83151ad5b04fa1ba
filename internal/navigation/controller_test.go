package navigation

import (
	"context"
	"errors"
	"testing"
	"time"

	"uitp/internal/browser"
)

// fakePage fails navigation a configurable number of times per wait condition.
type fakePage struct {
	strictFailures int // strict attempts that fail before one succeeds (-1: always fail)
	degradedFails  bool
	title          string
	titleErr       error

	strictAttempts   int
	degradedAttempts int
}

func (f *fakePage) Navigate(_ context.Context, _ string, wait browser.WaitCondition, _ time.Duration) error {
	if wait == browser.WaitNetworkIdle {
		f.strictAttempts++
		if f.strictFailures < 0 || f.strictAttempts <= f.strictFailures {
			return errors.New("net::ERR_TIMED_OUT")
		}
		return nil
	}
	f.degradedAttempts++
	if f.degradedFails {
		return errors.New("net::ERR_TIMED_OUT")
	}
	return nil
}

func (f *fakePage) Exists(context.Context, string) (bool, error)             { return false, nil }
func (f *fakePage) ForceVisible(context.Context, string) error               { return nil }
func (f *fakePage) Click(context.Context, string, time.Duration) error       { return nil }
func (f *fakePage) Fill(context.Context, string, string, time.Duration) error { return nil }
func (f *fakePage) Content(context.Context) (string, error)                  { return "", nil }
func (f *fakePage) Title(context.Context) (string, error)                    { return f.title, f.titleErr }
func (f *fakePage) URL(context.Context) (string, error)                      { return "", nil }
func (f *fakePage) Screenshot(context.Context, string) error                 { return nil }

func newTestController() (*Controller, *[]time.Duration) {
	c := NewController()
	var delays []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return c, &delays
}

func TestController_Navigate(t *testing.T) {
	ctx := context.Background()

	t.Run("first attempt succeeds", func(t *testing.T) {
		c, delays := newTestController()
		page := &fakePage{title: "Example Domain"}

		res, err := c.Navigate(ctx, page, "https://example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.Degraded {
			t.Errorf("expected clean success, got %+v", res)
		}
		if res.Attempts != 1 || len(*delays) != 0 {
			t.Errorf("expected one attempt and no backoff, got %d attempts, %d delays", res.Attempts, len(*delays))
		}
		if res.Title != "Example Domain" {
			t.Errorf("expected title, got %q", res.Title)
		}
	})

	t.Run("retries with fixed backoff then succeeds", func(t *testing.T) {
		c, delays := newTestController()
		page := &fakePage{strictFailures: 2}

		res, err := c.Navigate(ctx, page, "https://example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Attempts != 3 {
			t.Errorf("expected 3 attempts, got %d", res.Attempts)
		}
		if len(*delays) != 2 {
			t.Fatalf("expected 2 backoff delays, got %d", len(*delays))
		}
		for _, d := range *delays {
			if d != 3*time.Second {
				t.Errorf("expected fixed 3s backoff, got %s", d)
			}
		}
	})

	t.Run("strict attempts capped before degrading", func(t *testing.T) {
		c, _ := newTestController()
		page := &fakePage{strictFailures: -1}

		res, err := c.Navigate(ctx, page, "https://example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.strictAttempts != 3 {
			t.Errorf("expected exactly 3 strict attempts, got %d", page.strictAttempts)
		}
		if page.degradedAttempts != 1 {
			t.Errorf("expected 1 degraded attempt, got %d", page.degradedAttempts)
		}
		if !res.Success || !res.Degraded {
			t.Errorf("expected degraded success, got %+v", res)
		}
	})

	t.Run("title probe accepts partial load", func(t *testing.T) {
		c, _ := newTestController()
		page := &fakePage{strictFailures: -1, degradedFails: true, title: "Half-loaded shop"}

		res, err := c.Navigate(ctx, page, "https://example.com")
		if err != nil {
			t.Fatalf("expected probe success, got error: %v", err)
		}
		if !res.Success || !res.Degraded {
			t.Errorf("expected degraded success via probe, got %+v", res)
		}
		if res.Title != "Half-loaded shop" {
			t.Errorf("expected probed title, got %q", res.Title)
		}
	})

	t.Run("empty title fails the run", func(t *testing.T) {
		c, _ := newTestController()
		page := &fakePage{strictFailures: -1, degradedFails: true, title: ""}

		_, err := c.Navigate(ctx, page, "https://example.com")
		if err == nil {
			t.Fatal("expected navigation failure")
		}
	})

	t.Run("title error fails the run", func(t *testing.T) {
		c, _ := newTestController()
		page := &fakePage{strictFailures: -1, degradedFails: true, titleErr: errors.New("tab gone")}

		if _, err := c.Navigate(ctx, page, "https://example.com"); err == nil {
			t.Fatal("expected navigation failure")
		}
	})
}
