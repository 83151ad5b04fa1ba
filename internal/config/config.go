package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	ScreenshotDir  string

	// Model settings
	CohereAPIKey string
	CohereModel  string
	CohereAPIURL string

	// Browser settings
	Headless bool

	// Optional MySQL DSN for run history
	DBDSN string

	// Site fallback settings
	UnreliableDomain string
	AlternateSiteURL string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	TestPath     string
	NameFilter   string
	ShowSteps    bool
	FailFast     bool
	OpenFailures bool
	Headed       bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:      DefaultProjectPath,
		TestPath:         DefaultTestPath,
		OutputJSONFile:   DefaultOutputJSONFile,
		OutputJSONDir:    DefaultOutputJSONDir,
		ScreenshotDir:    DefaultScreenshotDir,
		CohereModel:      DefaultCohereModel,
		CohereAPIURL:     DefaultCohereAPIURL,
		Headless:         true,
		UnreliableDomain: DefaultUnreliableDomain,
		AlternateSiteURL: DefaultAlternateSiteURL,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config, reads the project's .env file if present, and applies
// environment overrides. A missing .env file is fine; plain environment
// variables still apply.
func Load() *Config {
	cfg := New()
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	cfg.CohereAPIKey = os.Getenv("COHERE_API_KEY")
	if v := os.Getenv("COHERE_MODEL"); v != "" {
		cfg.CohereModel = v
	}
	if v := os.Getenv("COHERE_API_URL"); v != "" {
		cfg.CohereAPIURL = v
	}
	if v := os.Getenv("UITP_TEST_PATH"); v != "" {
		cfg.TestPath = v
	}
	if v := os.Getenv("UITP_SCREENSHOT_DIR"); v != "" {
		cfg.ScreenshotDir = v
	}
	if v := os.Getenv("UITP_HEADLESS"); v == "false" || v == "0" {
		cfg.Headless = false
	}
	cfg.DBDSN = os.Getenv("UITP_DB_DSN")
	return cfg
}

// Validate checks preconditions that must hold before any run starts.
func (c *Config) Validate() error {
	if c.CohereAPIKey == "" {
		return fmt.Errorf("COHERE_API_KEY is not set; add it to your environment or .env file")
	}
	return nil
}

// GetTestPath returns the test path, using flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and results always read/write the same
// file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetScreenshotPath returns the path for a named diagnostic screenshot.
func (c *Config) GetScreenshotPath(name string) string {
	return filepath.Join(c.ProjectPath, c.ScreenshotDir, name)
}
