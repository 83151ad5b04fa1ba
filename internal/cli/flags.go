package cli

import "uitp/internal/config"

// Flags holds command-line flags
type Flags struct {
	TestPath     string
	NameFilter   string
	ShowSteps    bool
	FailFast     bool
	OpenFailures bool
	Headed       bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		TestPath:     f.TestPath,
		NameFilter:   f.NameFilter,
		ShowSteps:    f.ShowSteps,
		FailFast:     f.FailFast,
		OpenFailures: f.OpenFailures,
		Headed:       f.Headed,
	}
}
