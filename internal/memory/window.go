// ABOUTME: Window is a fixed-capacity FIFO log of conversation exchanges
// ABOUTME: Bounds prompt growth by retaining only the most recent k turns
package memory

import (
	"iter"
	"strings"

	"github.com/harper/companion/internal/models"
)

// Speaker prefixes used when rendering history lines into a prompt.
const (
	humanPrefix = "Human: "
	aiPrefix    = "AI: "
)

// Window holds the last k exchanges of one conversation, oldest first.
// Appending beyond capacity evicts from the head. A Window is not
// goroutine-safe; callers serialize turns per conversation (see Sessions).
type Window struct {
	capacity  int
	exchanges []models.Exchange
}

// NewWindow creates a Window retaining at most k exchanges. k < 1 is
// clamped to 1 so the window always carries the most recent turn.
func NewWindow(k int) *Window {
	if k < 1 {
		k = 1
	}
	return &Window{
		capacity:  k,
		exchanges: make([]models.Exchange, 0, k),
	}
}

// Append records an exchange at the tail, evicting from the head until the
// window is back within capacity. Total: it never fails.
func (w *Window) Append(x models.Exchange) {
	w.exchanges = append(w.exchanges, x)
	if len(w.exchanges) > w.capacity {
		over := len(w.exchanges) - w.capacity
		w.exchanges = append(w.exchanges[:0], w.exchanges[over:]...)
	}
}

// Len returns the number of retained exchanges.
func (w *Window) Len() int {
	return len(w.exchanges)
}

// Capacity returns the window capacity k.
func (w *Window) Capacity() int {
	return w.capacity
}

// Render yields the retained exchanges as chronological history lines, two
// per exchange (human then AI). The sequence is lazy and restartable: each
// range over it replays the currently retained exchanges from the start.
func (w *Window) Render() iter.Seq[string] {
	retained := w.exchanges
	return func(yield func(string) bool) {
		for _, x := range retained {
			if !yield(humanPrefix + x.Input) {
				return
			}
			if !yield(aiPrefix + x.Output) {
				return
			}
		}
	}
}

// History joins the rendered lines into the newline-separated block that is
// substituted verbatim into the prompt template.
func (w *Window) History() string {
	var b strings.Builder
	first := true
	for line := range w.Render() {
		if !first {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		first = false
	}
	return b.String()
}
