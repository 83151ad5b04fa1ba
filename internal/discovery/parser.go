package discovery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"uitp/internal/domain"
)

// Parser loads test case definitions from *.test.json files
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Load reads and validates a single test case definition file.
func (p *Parser) Load(path string) (domain.TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.TestCase{}, fmt.Errorf("read test case %s: %w", path, err)
	}

	var tc domain.TestCase
	if err := json.Unmarshal(data, &tc); err != nil {
		return domain.TestCase{}, fmt.Errorf("parse test case %s: %w", path, err)
	}

	if tc.URL == "" {
		return domain.TestCase{}, fmt.Errorf("test case %s has no url", path)
	}
	if len(tc.Steps) == 0 {
		return domain.TestCase{}, fmt.Errorf("test case %s has no steps", path)
	}
	if tc.Name == "" {
		tc.Name = strings.TrimSuffix(filepath.Base(path), TestFileSuffix)
	}
	tc.FilePath = path
	return tc, nil
}

// LoadAll loads every test case file in order, failing on the first bad file.
func (p *Parser) LoadAll(paths []string) ([]domain.TestCase, error) {
	cases := make([]domain.TestCase, 0, len(paths))
	for _, path := range paths {
		tc, err := p.Load(path)
		if err != nil {
			return nil, err
		}
		cases = append(cases, tc)
	}
	return cases, nil
}
