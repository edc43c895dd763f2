package chat

// ChatInput is one customer message.
type ChatInput struct {
	Name    string
	Phone   string
	Message string
}

// ChatOutput is the reply to one customer message.
// Timestamp is UTC ISO-8601.
type ChatOutput struct {
	Reply     string
	Actions   []string
	Timestamp string
}

// ClearOutput reports a memory reset.
type ClearOutput struct {
	Cleared string
	Count   int
}
