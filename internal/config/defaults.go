package config

import "time"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default directory scanned for *.test.json files
	DefaultTestPath = "cases"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "ui-test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultScreenshotDir is where diagnostic screenshots are written
	DefaultScreenshotDir = "screenshots"

	// DefaultCohereAPIURL is the Cohere generate endpoint
	DefaultCohereAPIURL = "https://api.cohere.ai/v1/generate"
	// DefaultCohereModel is the model used for step translation
	DefaultCohereModel = "command"
	// DefaultMaxTokens caps the model's output length
	DefaultMaxTokens = 300
	// DefaultTemperature biases the model towards deterministic output
	DefaultTemperature = 0.2

	// DefaultSelectorTimeout bounds a single click/fill attempt
	DefaultSelectorTimeout = 2 * time.Second
	// DefaultActionNavTimeout bounds a navigate action inside a step
	DefaultActionNavTimeout = 15 * time.Second
	// DefaultNavigationTimeout bounds one top-level navigation attempt
	DefaultNavigationTimeout = 30 * time.Second
	// DefaultNavigationRetries is the number of strict-wait navigation attempts
	DefaultNavigationRetries = 3
	// DefaultRetryDelay is the pause between navigation attempts
	DefaultRetryDelay = 3 * time.Second
	// DefaultStepPause lets the UI settle between steps
	DefaultStepPause = 1 * time.Second

	// Mobile emulation surfaces mobile-specific login UI on storefronts.
	DefaultViewportWidth  = 390
	DefaultViewportHeight = 844
	DefaultUserAgent      = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"

	// DefaultUnreliableDomain marks a site known to be flaky enough to warrant
	// the alternate-site fallback when it serves an empty page.
	DefaultUnreliableDomain = "farmley"
	// DefaultAlternateSiteURL is the substitute login page for unreachable sites
	DefaultAlternateSiteURL = "https://demo.opencart.com/index.php?route=account/login"

	// DefaultContentPreviewLen bounds the content snippet kept in a verdict
	DefaultContentPreviewLen = 200
)

// DefaultPathsToIgnore are directories skipped when scanning for test case files
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"storage",
	"screenshots",
	"testdata",
}
