package translator

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"uitp/internal/config"
	"uitp/internal/domain"
	"uitp/internal/llm"

	"github.com/kaptinlin/jsonrepair"
)

// Generator is the text-generation surface the translator consumes.
type Generator interface {
	Generate(ctx context.Context, req llm.GenerateRequest) (string, error)
}

// Translator converts one natural-language step plus page context into a
// structured Action. Translate is total: every failure mode falls through a
// degradation ladder that ends in the deterministic heuristic parser, so the
// caller always gets a valid Action back.
type Translator struct {
	gen         Generator
	maxTokens   int
	temperature float64
}

// New creates a Translator backed by the given generator.
func New(gen Generator) *Translator {
	return &Translator{
		gen:         gen,
		maxTokens:   config.DefaultMaxTokens,
		temperature: config.DefaultTemperature,
	}
}

const promptTemplate = `Convert the following test step for a %s into a structured browser action command.
Return ONLY the JSON format with action type and parameters.

Step: %q

Output format examples:
For clicks: {"action": "click", "selector": "selector_value", "description": "what is being clicked"}
For typing: {"action": "fill", "selector": "selector_value", "value": "text to type", "description": "what field is being filled"}
For navigation: {"action": "navigate", "url": "url_to_navigate", "description": "navigating to page"}
For waiting: {"action": "wait", "time": seconds_to_wait, "description": "reason for waiting"}
For checking: {"action": "check", "text": "text to verify", "description": "what is being verified"}
For viewing: {"action": "check", "text": "", "description": "viewing the page content"}
`

// BuildPrompt renders the translation prompt for a step.
func BuildPrompt(step, pageContext string) string {
	return fmt.Sprintf(promptTemplate, pageContext, step)
}

// braceBlock matches the first brace-delimited substring, newlines included.
var braceBlock = regexp.MustCompile(`(?s)\{.*?\}`)

// Translate converts a step into an Action. It never fails: model or parse
// errors degrade to brace extraction, then JSON repair, then the heuristic.
func (t *Translator) Translate(ctx context.Context, step, pageContext string) domain.Action {
	raw, err := t.gen.Generate(ctx, llm.GenerateRequest{
		Prompt:      BuildPrompt(step, pageContext),
		MaxTokens:   t.maxTokens,
		Temperature: t.temperature,
	})
	if err != nil {
		log.Printf("model call failed for step %q: %v; using heuristic parser", step, err)
		return Heuristic(step)
	}
	raw = strings.TrimSpace(raw)

	if action, err := domain.ParseAction([]byte(raw)); err == nil {
		return action
	}

	// The model tends to wrap its JSON in prose; pull out the first object.
	if block := braceBlock.FindString(raw); block != "" {
		if action, err := domain.ParseAction([]byte(block)); err == nil {
			return action
		}
		// Last resort before the heuristic: repair malformed JSON
		// (unquoted keys, trailing commas) and retry.
		if fixed, err := jsonrepair.JSONRepair(block); err == nil {
			if action, err := domain.ParseAction([]byte(fixed)); err == nil {
				return action
			}
		}
	}

	log.Printf("could not parse model response as an action for step %q; using heuristic parser", step)
	return Heuristic(step)
}
