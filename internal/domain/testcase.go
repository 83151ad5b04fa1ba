package domain

// TestCase is a single natural-language UI test definition, loaded from a
// *.test.json file. Steps are executed in order against the target URL.
type TestCase struct {
	Name           string   `json:"name"`
	URL            string   `json:"url"`
	Steps          []string `json:"steps"`
	ExpectedOutput string   `json:"expected_output"`

	// FilePath is the definition file this case was loaded from.
	FilePath string `json:"-"`
}
