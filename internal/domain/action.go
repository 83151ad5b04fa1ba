package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActionType is the bounded vocabulary of browser commands the executor
// understands.
type ActionType string

const (
	ActionClick    ActionType = "click"
	ActionFill     ActionType = "fill"
	ActionNavigate ActionType = "navigate"
	ActionWait     ActionType = "wait"
	ActionCheck    ActionType = "check"
	ActionUnknown  ActionType = "unknown"
)

// Action is a structured browser command produced by the translator for a
// single step. Only the fields relevant to its Type are populated.
type Action struct {
	Type        ActionType `json:"action"`
	Selector    string     `json:"selector,omitempty"`
	Value       string     `json:"value,omitempty"`
	URL         string     `json:"url,omitempty"`
	Time        float64    `json:"time,omitempty"`
	Text        string     `json:"text,omitempty"`
	Description string     `json:"description"`
}

// ParseAction decodes raw JSON into an Action and validates that it carries a
// known action type plus the fields that type requires. Callers fall back to
// the heuristic translator when this fails.
func ParseAction(data []byte) (Action, error) {
	var a Action
	if err := json.Unmarshal(data, &a); err != nil {
		return Action{}, fmt.Errorf("decode action: %w", err)
	}
	a.Type = ActionType(strings.ToLower(strings.TrimSpace(string(a.Type))))
	switch a.Type {
	case ActionClick, ActionFill:
		if a.Selector == "" {
			return Action{}, fmt.Errorf("%s action missing selector", a.Type)
		}
	case ActionNavigate:
		if a.URL == "" {
			return Action{}, fmt.Errorf("navigate action missing url")
		}
	case ActionWait, ActionCheck, ActionUnknown:
	default:
		return Action{}, fmt.Errorf("unrecognized action type %q", a.Type)
	}
	return a, nil
}
