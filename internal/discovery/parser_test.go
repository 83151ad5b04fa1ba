package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCaseFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write case file: %v", err)
	}
	return path
}

func TestParser_Load(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	t.Run("loads a valid case", func(t *testing.T) {
		path := writeCaseFile(t, tmpDir, "login.test.json", `{
			"name": "Customer login",
			"url": "https://shop.test",
			"steps": ["Click on the 'Sign in' button", "Enter email as user@example.com"],
			"expected_output": "My Account"
		}`)

		tc, err := parser.Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tc.Name != "Customer login" {
			t.Errorf("unexpected name: %q", tc.Name)
		}
		if tc.URL != "https://shop.test" {
			t.Errorf("unexpected url: %q", tc.URL)
		}
		if len(tc.Steps) != 2 {
			t.Errorf("expected 2 steps, got %d", len(tc.Steps))
		}
		if tc.ExpectedOutput != "My Account" {
			t.Errorf("unexpected expected_output: %q", tc.ExpectedOutput)
		}
		if tc.FilePath != path {
			t.Errorf("expected file path %q, got %q", path, tc.FilePath)
		}
	})

	t.Run("name defaults to file basename", func(t *testing.T) {
		path := writeCaseFile(t, tmpDir, "guest-checkout.test.json", `{
			"url": "https://shop.test",
			"steps": ["View the page content"],
			"expected_output": "Checkout"
		}`)

		tc, err := parser.Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tc.Name != "guest-checkout" {
			t.Errorf("expected name guest-checkout, got %q", tc.Name)
		}
	})

	t.Run("rejects a case without url", func(t *testing.T) {
		path := writeCaseFile(t, tmpDir, "no-url.test.json", `{
			"steps": ["View the page content"],
			"expected_output": "x"
		}`)
		if _, err := parser.Load(path); err == nil {
			t.Error("expected error for missing url")
		}
	})

	t.Run("rejects a case without steps", func(t *testing.T) {
		path := writeCaseFile(t, tmpDir, "no-steps.test.json", `{
			"url": "https://shop.test",
			"expected_output": "x"
		}`)
		if _, err := parser.Load(path); err == nil {
			t.Error("expected error for missing steps")
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		path := writeCaseFile(t, tmpDir, "broken.test.json", `{"url": "https://shop.test",`)
		if _, err := parser.Load(path); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		if _, err := parser.Load(filepath.Join(tmpDir, "missing.test.json")); err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}

func TestParser_LoadAll(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	good := writeCaseFile(t, tmpDir, "a.test.json", `{"url": "https://a.test", "steps": ["View the page content"], "expected_output": "A"}`)
	bad := writeCaseFile(t, tmpDir, "b.test.json", `{"steps": ["x"]}`)

	t.Run("loads all valid files in order", func(t *testing.T) {
		cases, err := parser.LoadAll([]string{good})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 1 || cases[0].Name != "a" {
			t.Errorf("unexpected cases: %+v", cases)
		}
	})

	t.Run("fails on the first bad file", func(t *testing.T) {
		if _, err := parser.LoadAll([]string{good, bad}); err == nil {
			t.Error("expected error from invalid file")
		}
	})
}
