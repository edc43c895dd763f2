package memory

import (
	"sync"
	"time"
)

// Invocation is one capability call made during a turn.
type Invocation struct {
	Name    string
	Args    map[string]interface{}
	Success bool
	Result  interface{}
}

// Turn is one completed request/response cycle.
type Turn struct {
	Utterance   string
	Invocations []Invocation
	Reply       string
	Timestamp   time.Time
}

// Conversation is the turn history of one phone number.
// Lock/Unlock serialize whole turns; the accessors are safe on their own.
type Conversation struct {
	ID string

	turnMu sync.Mutex

	mu          sync.RWMutex
	turns       []Turn
	lastUpdated time.Time
}

func newConversation(id string) *Conversation {
	return &Conversation{ID: id, lastUpdated: time.Now()}
}

// Lock acquires the per-conversation turn lock.
func (c *Conversation) Lock() { c.turnMu.Lock() }

// Unlock releases the per-conversation turn lock.
func (c *Conversation) Unlock() { c.turnMu.Unlock() }

// Append records a completed turn.
func (c *Conversation) Append(t Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, t)
	c.lastUpdated = time.Now()
}

// History returns a copy of every stored turn, oldest first.
func (c *Conversation) History() []Turn {
	return c.Recent(0)
}

// Recent returns a copy of the last n turns, oldest first. n <= 0 means all.
func (c *Conversation) Recent(n int) []Turn {
	c.mu.RLock()
	defer c.mu.RUnlock()

	start := 0
	if n > 0 && len(c.turns) > n {
		start = len(c.turns) - n
	}
	out := make([]Turn, len(c.turns)-start)
	copy(out, c.turns[start:])
	return out
}

// Len returns the number of stored turns.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.turns)
}

// LastUpdated returns when the conversation was created or last appended to.
func (c *Conversation) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdated
}
