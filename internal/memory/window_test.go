// ABOUTME: Tests for the fixed-capacity conversation window
// ABOUTME: Verifies FIFO eviction, render ordering, and restartable iteration
package memory

import (
	"fmt"
	"slices"
	"testing"

	"github.com/harper/companion/internal/models"
)

func TestWindow_AppendNeverExceedsCapacity(t *testing.T) {
	for _, k := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			w := NewWindow(k)
			for i := 0; i < 3*k; i++ {
				w.Append(models.NewExchange(fmt.Sprintf("in-%d", i), fmt.Sprintf("out-%d", i)))
				if w.Len() > k {
					t.Fatalf("after append %d: Len() = %d, want <= %d", i, w.Len(), k)
				}
			}
		})
	}
}

func TestWindow_FIFOEviction(t *testing.T) {
	// k=2: append A, B, C -> window holds {B, C}
	w := NewWindow(2)
	w.Append(models.NewExchange("A", "a"))
	w.Append(models.NewExchange("B", "b"))
	w.Append(models.NewExchange("C", "c"))

	want := []string{
		"Human: B",
		"AI: b",
		"Human: C",
		"AI: c",
	}
	got := slices.Collect(w.Render())
	if !slices.Equal(got, want) {
		t.Errorf("Render() = %v, want %v", got, want)
	}
}

func TestWindow_RenderMatchesInsertionOrder(t *testing.T) {
	w := NewWindow(10)
	var want []string
	for i := 0; i < 4; i++ {
		in := fmt.Sprintf("q%d", i)
		out := fmt.Sprintf("a%d", i)
		w.Append(models.NewExchange(in, out))
		want = append(want, "Human: "+in, "AI: "+out)
	}

	got := slices.Collect(w.Render())
	if !slices.Equal(got, want) {
		t.Errorf("Render() = %v, want %v", got, want)
	}
}

func TestWindow_RenderIsRestartable(t *testing.T) {
	w := NewWindow(3)
	w.Append(models.NewExchange("hello", "hi"))
	w.Append(models.NewExchange("bye", "later"))

	seq := w.Render()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second pass = %v, want %v", second, first)
	}

	// Early break must not poison later passes.
	for range seq {
		break
	}
	third := slices.Collect(seq)
	if !slices.Equal(first, third) {
		t.Errorf("pass after early break = %v, want %v", third, first)
	}
}

func TestWindow_History(t *testing.T) {
	w := NewWindow(2)
	if w.History() != "" {
		t.Errorf("empty window History() = %q, want \"\"", w.History())
	}

	w.Append(models.NewExchange("how was your day", "pretty good, em..."))
	want := "Human: how was your day\nAI: pretty good, em..."
	if got := w.History(); got != want {
		t.Errorf("History() = %q, want %q", got, want)
	}
}

func TestNewWindow_ClampsCapacity(t *testing.T) {
	w := NewWindow(0)
	if w.Capacity() != 1 {
		t.Errorf("Capacity() = %d, want 1", w.Capacity())
	}
	w.Append(models.NewExchange("a", "b"))
	w.Append(models.NewExchange("c", "d"))
	if w.Len() != 1 {
		t.Errorf("Len() = %d, want 1", w.Len())
	}
}
