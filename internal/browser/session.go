package browser

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// Options configures session acquisition.
type Options struct {
	Headless       bool
	ViewportWidth  int64
	ViewportHeight int64
	UserAgent      string
	// LogEvents wires console and network diagnostics into the process log.
	LogEvents bool
}

// Launcher acquires browser sessions. Each session owns its own Chrome
// process; Close releases it.
type Launcher struct {
	opts Options
}

// NewLauncher creates a Launcher with the given options.
func NewLauncher(opts Options) *Launcher {
	return &Launcher{opts: opts}
}

// Session is an exclusively-owned browser tab. It is not safe for concurrent
// use; one run drives one session at a time.
type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

// NewSession starts Chrome with mobile emulation and returns a ready Session.
func (l *Launcher) NewSession(ctx context.Context) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", l.opts.Headless),
		chromedp.Flag("disable-gpu", l.opts.Headless),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("mute-audio", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	s := &Session{ctx: tabCtx, cancel: tabCancel, allocCancel: allocCancel}

	width := l.opts.ViewportWidth
	height := l.opts.ViewportHeight
	if width <= 0 || height <= 0 {
		width, height = 390, 844
	}

	actions := []chromedp.Action{
		network.Enable(),
		emulation.SetDeviceMetricsOverride(width, height, 3.0, true),
	}
	if ua := strings.TrimSpace(l.opts.UserAgent); ua != "" {
		actions = append(actions, emulation.SetUserAgentOverride(ua))
	}
	if err := chromedp.Run(tabCtx, actions...); err != nil {
		s.Close()
		return nil, fmt.Errorf("start browser session: %w", err)
	}

	if l.opts.LogEvents {
		s.listenDiagnostics()
	}
	return s, nil
}

// listenDiagnostics logs console messages and network traffic. Purely
// observational; it never feeds back into control flow.
func (s *Session) listenDiagnostics() {
	chromedp.ListenTarget(s.ctx, func(ev interface{}) {
		switch e := ev.(type) {
		case *runtime.EventConsoleAPICalled:
			var parts []string
			for _, arg := range e.Args {
				if len(arg.Value) > 0 {
					parts = append(parts, string(arg.Value))
				}
			}
			log.Printf("browser console [%s]: %s", e.Type, strings.Join(parts, " "))
		case *network.EventRequestWillBeSent:
			log.Printf("request: %s %s", e.Request.Method, e.Request.URL)
		case *network.EventResponseReceived:
			log.Printf("response: %d %s", e.Response.Status, e.Response.URL)
		}
	})
}

// Close releases the tab and the Chrome process. Safe to call more than once.
func (s *Session) Close() error {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.allocCancel != nil {
		s.allocCancel()
		s.allocCancel = nil
	}
	return nil
}

// run executes chromedp actions against the session tab, bounded by timeout
// and by the caller's context.
func (s *Session) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	if timeout > 0 {
		var tcancel context.CancelFunc
		runCtx, tcancel = context.WithTimeout(runCtx, timeout)
		defer tcancel()
	}
	// Propagate caller cancellation into the tab-derived context.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

// Navigate loads url and blocks according to the wait condition.
func (s *Session) Navigate(ctx context.Context, url string, wait WaitCondition, timeout time.Duration) error {
	switch wait {
	case WaitDOMContentLoaded:
		return s.run(ctx, timeout,
			chromedp.ActionFunc(func(cctx context.Context) error {
				_, _, errText, err := page.Navigate(url).Do(cctx)
				if err != nil {
					return err
				}
				if errText != "" {
					return fmt.Errorf("navigate to %s: %s", url, errText)
				}
				return nil
			}),
			waitReadyState("interactive"),
		)
	default:
		// chromedp.Navigate blocks until the load event; add a quiet
		// network window on top for the strict condition.
		return s.run(ctx, timeout,
			chromedp.Navigate(url),
			s.waitNetworkIdle(500*time.Millisecond),
		)
	}
}

// waitReadyState polls document.readyState until it reaches at least the
// given state ("interactive" is satisfied by "complete" too).
func waitReadyState(state string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		for {
			var ready string
			if err := chromedp.Evaluate(`document.readyState`, &ready).Do(ctx); err != nil {
				return err
			}
			if ready == "complete" || ready == state {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(100 * time.Millisecond):
			}
		}
	}
}

// waitNetworkIdle resolves once no request has been in flight for the quiet
// window, bounded by the surrounding action context.
func (s *Session) waitNetworkIdle(quiet time.Duration) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		var (
			mu       sync.Mutex
			inflight int
			once     sync.Once
		)
		idle := make(chan struct{})
		timer := time.AfterFunc(quiet, func() {
			once.Do(func() { close(idle) })
		})
		defer timer.Stop()

		listenCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		chromedp.ListenTarget(listenCtx, func(ev interface{}) {
			mu.Lock()
			defer mu.Unlock()
			switch ev.(type) {
			case *network.EventRequestWillBeSent:
				inflight++
				timer.Stop()
			case *network.EventLoadingFinished, *network.EventLoadingFailed:
				if inflight > 0 {
					inflight--
				}
				if inflight == 0 {
					timer.Reset(quiet)
				}
			}
		})

		select {
		case <-idle:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Exists reports whether the selector currently matches an element.
func (s *Session) Exists(ctx context.Context, selector string) (bool, error) {
	js := lookupScript(selector)
	var found bool
	err := s.run(ctx, 2*time.Second, chromedp.Evaluate(`(`+js+`) !== null`, &found))
	if err != nil {
		return false, err
	}
	return found, nil
}

// ForceVisible overrides the CSS that commonly hides login UI on the first
// element matching selector.
func (s *Session) ForceVisible(ctx context.Context, selector string) error {
	js := lookupScript(selector)
	script := fmt.Sprintf(`(function() {
		var el = %s;
		if (!el) { return false; }
		el.style.display = "block";
		el.style.visibility = "visible";
		el.style.opacity = "1";
		return true;
	})()`, js)
	var changed bool
	return s.run(ctx, 2*time.Second, chromedp.Evaluate(script, &changed))
}

// Click clicks the first element matching selector.
func (s *Session) Click(ctx context.Context, selector string, timeout time.Duration) error {
	sel, opt := normalizeSelector(selector)
	return s.run(ctx, timeout, chromedp.Click(sel, opt))
}

// Fill clears the first matching input and types value into it.
func (s *Session) Fill(ctx context.Context, selector, value string, timeout time.Duration) error {
	sel, opt := normalizeSelector(selector)
	return s.run(ctx, timeout,
		chromedp.Focus(sel, opt),
		chromedp.Clear(sel, opt),
		chromedp.SendKeys(sel, value, opt),
	)
}

// Content returns the serialized page HTML.
func (s *Session) Content(ctx context.Context) (string, error) {
	var html string
	err := s.run(ctx, 10*time.Second, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	return html, err
}

// Title returns the current document title.
func (s *Session) Title(ctx context.Context) (string, error) {
	var title string
	err := s.run(ctx, 5*time.Second, chromedp.Title(&title))
	return title, err
}

// URL returns the current location.
func (s *Session) URL(ctx context.Context) (string, error) {
	var loc string
	err := s.run(ctx, 5*time.Second, chromedp.Location(&loc))
	return loc, err
}

// Screenshot captures the viewport as a PNG file at path.
func (s *Session) Screenshot(ctx context.Context, path string) error {
	var buf []byte
	if err := s.run(ctx, 10*time.Second, chromedp.CaptureScreenshot(&buf)); err != nil {
		return fmt.Errorf("capture screenshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create screenshot dir: %w", err)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	return nil
}
