// Package orchestrator runs one test case end to end: session acquisition,
// navigation, the step loop, verdict computation and guaranteed cleanup.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"uitp/internal/browser"
	"uitp/internal/config"
	"uitp/internal/domain"
	"uitp/internal/executor"
	"uitp/internal/navigation"
	"uitp/internal/translator"
)

// Session is the exclusively-owned browser handle a run drives. Exactly one
// Close happens per acquired session, on every exit path.
type Session interface {
	browser.Page
	Close() error
}

// LaunchFunc acquires a fresh session for one run.
type LaunchFunc func(ctx context.Context) (Session, error)

// StepObserver is notified after each step completes; the run command hangs
// its progress bar off this. May be nil.
type StepObserver func(step string, success bool)

// Orchestrator runs test cases. Run never returns an error and never panics
// through: every failure becomes an Error verdict.
type Orchestrator struct {
	cfg        *config.Config
	launch     LaunchFunc
	translator *translator.Translator
	executor   *executor.Executor
	nav        *navigation.Controller
	observer   StepObserver
	sleep      func(ctx context.Context, d time.Duration) error
}

// New creates an Orchestrator from its collaborators.
func New(cfg *config.Config, launch LaunchFunc, tr *translator.Translator, ex *executor.Executor, nav *navigation.Controller) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		launch:     launch,
		translator: tr,
		executor:   ex,
		nav:        nav,
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

// SetObserver registers a per-step callback.
func (o *Orchestrator) SetObserver(obs StepObserver) {
	o.observer = obs
}

// Run executes one test case and returns its verdict. All errors, including
// driver panics, are absorbed here; partial step outcomes are discarded when
// the run degrades to an Error verdict.
func (o *Orchestrator) Run(ctx context.Context, tc domain.TestCase) (verdict domain.RunVerdict) {
	verdict = domain.RunVerdict{Result: domain.VerdictError, ExpectedOutput: tc.ExpectedOutput}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("run panicked: %v", r)
			verdict = domain.RunVerdict{
				Result:         domain.VerdictError,
				ExpectedOutput: tc.ExpectedOutput,
				Error:          fmt.Sprintf("panic: %v", r),
			}
		}
	}()

	session, err := o.launch(ctx)
	if err != nil {
		verdict.Error = fmt.Sprintf("acquire browser session: %v", err)
		return verdict
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Printf("error during session cleanup: %v", cerr)
		}
	}()

	url := tc.URL
	pageContext := PageContext(url)

	navRes, err := o.nav.Navigate(ctx, session, url)
	if err != nil {
		verdict.Error = err.Error()
		return verdict
	}

	// A known-unreliable site that probed back an empty title loaded
	// nothing usable; swap in the alternate site and retarget the prompt
	// context.
	if o.shouldFallback(url, navRes.Title) {
		log.Printf("%s appears unreachable, switching to alternate site %s", url, o.cfg.AlternateSiteURL)
		url = o.cfg.AlternateSiteURL
		pageContext = PageContext(url)
		if _, err := o.nav.Navigate(ctx, session, url); err != nil {
			verdict.Error = err.Error()
			return verdict
		}
	}

	o.screenshot(ctx, session, "screenshot_before.png")

	outcomes := make([]domain.StepOutcome, 0, len(tc.Steps))
	for i, step := range tc.Steps {
		log.Printf("step %d: %s", i+1, step)

		action := o.translator.Translate(ctx, step, pageContext)
		success := o.executor.Execute(ctx, session, action)
		outcomes = append(outcomes, domain.StepOutcome{Step: step, Success: success})
		if o.observer != nil {
			o.observer(step, success)
		}

		o.screenshot(ctx, session, fmt.Sprintf("screenshot_step_%d.png", i+1))
		if err := o.sleep(ctx, config.DefaultStepPause); err != nil {
			verdict.Error = err.Error()
			return verdict
		}
	}

	o.screenshot(ctx, session, "screenshot_final.png")

	content, err := session.Content(ctx)
	if err != nil {
		verdict.Error = fmt.Sprintf("fetch final page content: %v", err)
		return verdict
	}
	finalURL, err := session.URL(ctx)
	if err != nil {
		verdict.Error = fmt.Sprintf("fetch final url: %v", err)
		return verdict
	}

	return domain.RunVerdict{
		Result:         Verdict(content, finalURL, tc.ExpectedOutput),
		ExpectedOutput: tc.ExpectedOutput,
		FinalURL:       finalURL,
		StepResults:    outcomes,
		ContentPreview: Preview(content, config.DefaultContentPreviewLen),
	}
}

// shouldFallback reports whether the alternate site should replace url.
func (o *Orchestrator) shouldFallback(url, title string) bool {
	if o.cfg.UnreliableDomain == "" || o.cfg.AlternateSiteURL == "" {
		return false
	}
	return title == "" && strings.Contains(strings.ToLower(url), o.cfg.UnreliableDomain)
}

// screenshot captures a diagnostic artifact. Write-only; failure never
// affects the run.
func (o *Orchestrator) screenshot(ctx context.Context, session Session, name string) {
	path := o.cfg.GetScreenshotPath(name)
	if err := session.Screenshot(ctx, path); err != nil {
		log.Printf("screenshot %s failed: %v", name, err)
		return
	}
	log.Printf("screenshot saved: %s", path)
}
