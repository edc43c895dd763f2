package orchestrator

import "time"

// Config tunes the reasoning loop.
type Config struct {
	StepTimeout     time.Duration
	MaxHistoryTurns int
	Temperature     float64
	Timezone        string
}

// Input is one inbound customer message.
type Input struct {
	Name    string
	Phone   string
	Message string
}

// Output is the outcome of one turn.
// Actions lists every requested capability name in invocation order.
type Output struct {
	Reply   string
	Actions []string
	Steps   int
	// Ceiling is set when the turn ran out of round-trips.
	Ceiling bool
}
