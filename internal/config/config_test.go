package config

import (
	"testing"
)

func TestConfig_GetTestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				TestPath:    "cases",
				Flags:       Flags{},
			},
			expected: "cases",
		},
		{
			name: "with test path flag",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    "cases",
				Flags: Flags{
					TestPath: "suites",
				},
			},
			expected: "/project/suites",
		},
		{
			name: "absolute test path",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    "cases",
				Flags: Flags{
					TestPath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := New()
		cfg.CohereAPIKey = ""
		if err := cfg.Validate(); err == nil {
			t.Error("expected an error when COHERE_API_KEY is missing")
		}
	})

	t.Run("api key set", func(t *testing.T) {
		cfg := New()
		cfg.CohereAPIKey = "test-key"
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if !cfg.Headless {
		t.Error("expected headless by default")
	}

	if cfg.CohereModel != DefaultCohereModel {
		t.Errorf("expected model %s, got %s", DefaultCohereModel, cfg.CohereModel)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}
