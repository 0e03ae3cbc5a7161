// ABOUTME: Tests for the prompt assembler
// ABOUTME: Verifies slot substitution, determinism, and template validation
package prompt

import (
	"strings"
	"testing"
)

func TestNew_InvalidTemplates(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t "},
		{"unclosed action", "hello {{.History"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.text); err == nil {
				t.Error("New() error = nil, want error")
			}
		})
	}
}

func TestBuild_SubstitutesBothSlots(t *testing.T) {
	a, err := New("persona\n{{.History}}\nBoyfriend: {{.HumanInput}}\nShirley:")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	got, err := a.Build("Human: hi\nAI: hey", "missed you")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := "persona\nHuman: hi\nAI: hey\nBoyfriend: missed you\nShirley:"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := New(DefaultTemplate)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	first, err := a.Build("Human: a\nAI: b", "same input")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := a.Build("Human: a\nAI: b", "same input")
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		if again != first {
			t.Fatalf("Build() not deterministic: %q vs %q", again, first)
		}
	}
}

func TestBuild_EmptyInputs(t *testing.T) {
	a, err := New(DefaultTemplate)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// Empty history (fresh session) and empty input must both assemble.
	got, err := a.Build("", "")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !strings.Contains(got, "Boyfriend: \nShirley:") {
		t.Errorf("Build() = %q, want empty turn present", got)
	}
}

func TestDefaultTemplate_Parses(t *testing.T) {
	if _, err := New(DefaultTemplate); err != nil {
		t.Fatalf("DefaultTemplate does not parse: %v", err)
	}
}
