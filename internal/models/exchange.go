// ABOUTME: Exchange represents a single conversation turn between user and persona
// ABOUTME: Core data structure for the bounded conversation window
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Exchange is one recorded (input, output) turn pair. Immutable once recorded.
type Exchange struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
}

// NewExchange creates a new Exchange. Empty input is allowed: an empty user
// message still produces a valid (degenerate) turn.
func NewExchange(input, output string) Exchange {
	return Exchange{
		ID:        generateExchangeID(),
		Timestamp: time.Now().UTC(),
		Input:     input,
		Output:    output,
	}
}

// generateExchangeID generates a unique exchange identifier
func generateExchangeID() string {
	return fmt.Sprintf("xchg_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
