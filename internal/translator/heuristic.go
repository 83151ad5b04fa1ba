package translator

import (
	"strings"

	"uitp/internal/domain"
)

// rule pairs a predicate over the lowercased step text with an Action
// constructor. Rules are evaluated top to bottom; the first match wins.
type rule struct {
	match func(step string) bool
	build func(step string) domain.Action
}

func contains(keywords ...string) func(string) bool {
	return func(step string) bool {
		for _, kw := range keywords {
			if !strings.Contains(step, kw) {
				return false
			}
		}
		return true
	}
}

var heuristicRules = []rule{
	{
		match: contains("view"),
		build: func(string) domain.Action {
			return domain.Action{Type: domain.ActionCheck, Text: "", Description: "viewing the page content"}
		},
	},
	{
		match: contains("click", "sign in"),
		build: func(string) domain.Action {
			return domain.Action{Type: domain.ActionClick, Selector: "text=Sign in", Description: "clicking sign in button"}
		},
	},
	{
		match: contains("enter", "email"),
		build: func(step string) domain.Action {
			email := valueAfterAs(step, "test@example.com")
			if !strings.Contains(email, "@") {
				email = "test@example.com"
			}
			return domain.Action{Type: domain.ActionFill, Selector: "input[type='email']", Value: email, Description: "entering email"}
		},
	},
	{
		match: contains("enter", "password"),
		build: func(step string) domain.Action {
			return domain.Action{Type: domain.ActionFill, Selector: "input[type='password']", Value: valueAfterAs(step, "test123"), Description: "entering password"}
		},
	},
}

// Heuristic deterministically maps a step to an Action using the ordered rule
// table above; steps no rule claims become unknown actions.
func Heuristic(step string) domain.Action {
	lowered := strings.ToLower(step)
	for _, r := range heuristicRules {
		if r.match(lowered) {
			return r.build(step)
		}
	}
	return domain.Action{Type: domain.ActionUnknown, Description: step}
}

// valueAfterAs extracts the quoted value following the word "as" in a step
// like `Enter email as 'user@shop.test'`, falling back when absent.
func valueAfterAs(step, fallback string) string {
	fields := strings.Fields(step)
	for i, f := range fields {
		if strings.EqualFold(f, "as") && i+1 < len(fields) {
			value := strings.Join(fields[i+1:], " ")
			value = strings.Trim(value, `'"`)
			if value != "" {
				return value
			}
		}
	}
	return fallback
}
