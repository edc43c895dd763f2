package chat

import "context"

// UseCase is the inbound conversation surface.
type UseCase interface {
	// Chat runs one turn. Backend faults never surface as errors: they come
	// back as the fixed apology reply with the "error" action.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ClearConversation drops the memory of one phone number.
	ClearConversation(ctx context.Context, phone string) (ClearOutput, error)

	// ClearAllConversations drops every conversation.
	ClearAllConversations(ctx context.Context) (ClearOutput, error)

	// Close waits for pending chat log writes.
	Close(ctx context.Context) error
}
