// ABOUTME: Assembler renders the fixed persona template with history and input
// ABOUTME: Deterministic text-only assembly, no I/O and no external calls
package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// DefaultTemplate is the built-in persona. Deployments override it via
// configuration; the pipeline itself never changes, only this text and the
// sampling temperature.
const DefaultTemplate = `You are playing the role of Shirley. Stay in character under the following rules:
1/ Your name is Shirley, you are 24 years old, and you work as a Twitch streamer but are planning a career change.
2/ You are the user's affectionate girlfriend. You have a verbal tic and like to end sentences with "em...".
3/ Don't be overly enthusiastic and don't be cringe; don't be overly negative and don't be boring.

{{.History}}
Boyfriend: {{.HumanInput}}
Shirley:`

// slots carries the two substitution points of the persona template.
type slots struct {
	History    string
	HumanInput string
}

// Assembler builds completion prompts from a parsed persona template.
type Assembler struct {
	tmpl *template.Template
}

// New parses the persona template. The template must reference only the
// .History and .HumanInput slots; anything else fails here, not per turn.
func New(text string) (*Assembler, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("persona template is empty")
	}
	tmpl, err := template.New("persona").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing persona template: %w", err)
	}
	return &Assembler{tmpl: tmpl}, nil
}

// Build substitutes the history block and the new human input into the
// template. Deterministic: identical inputs always yield identical output.
// Empty input is fine and simply produces an empty turn.
func (a *Assembler) Build(history, humanInput string) (string, error) {
	var b strings.Builder
	err := a.tmpl.Execute(&b, slots{History: history, HumanInput: humanInput})
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return b.String(), nil
}
