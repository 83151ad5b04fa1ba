package browser

import (
	"strings"
	"testing"
)

func TestNormalizeSelector(t *testing.T) {
	t.Run("text selector becomes an xpath text match", func(t *testing.T) {
		sel, _ := normalizeSelector("text=Sign in")
		if !strings.HasPrefix(sel, "//*") {
			t.Errorf("expected an xpath, got %q", sel)
		}
		if !strings.Contains(sel, "'Sign in'") {
			t.Errorf("expected the text embedded as a literal, got %q", sel)
		}
	})

	t.Run("xpath passes through", func(t *testing.T) {
		in := `//button[@type='submit']`
		sel, _ := normalizeSelector(in)
		if sel != in {
			t.Errorf("expected xpath unchanged, got %q", sel)
		}
	})

	t.Run("css passes through", func(t *testing.T) {
		in := `input[type='email']`
		sel, _ := normalizeSelector(in)
		if sel != in {
			t.Errorf("expected css unchanged, got %q", sel)
		}
	})
}

func TestXPathLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sign in", "'Sign in'"},
		{"Bob's shop", `"Bob's shop"`},
		{`say "hi"`, `'say "hi"'`},
		{`Bob's "shop"`, `concat('Bob', "'", 's "shop"')`},
	}
	for _, tt := range tests {
		if got := xpathLiteral(tt.in); got != tt.want {
			t.Errorf("xpathLiteral(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLookupScript(t *testing.T) {
	t.Run("css selector uses querySelector", func(t *testing.T) {
		js := lookupScript("input[name='email']")
		if !strings.Contains(js, "querySelector") {
			t.Errorf("expected querySelector lookup, got %q", js)
		}
	})

	t.Run("xpath selector uses document.evaluate", func(t *testing.T) {
		js := lookupScript(`//a[contains(., 'Account')]`)
		if !strings.Contains(js, "document.evaluate") {
			t.Errorf("expected xpath evaluation, got %q", js)
		}
	})

	t.Run("text selector routes through xpath", func(t *testing.T) {
		js := lookupScript("text=Sign in")
		if !strings.Contains(js, "document.evaluate") {
			t.Errorf("expected xpath evaluation for text selector, got %q", js)
		}
	})
}
