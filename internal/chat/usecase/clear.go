package usecase

import (
	"context"
	"strings"

	"delivery-agent/internal/chat"
)

func (uc *implUseCase) ClearConversation(ctx context.Context, phone string) (chat.ClearOutput, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return chat.ClearOutput{}, chat.ErrMissingPhone
	}

	count := 0
	if uc.conversations.Clear(phone) {
		count = 1
	}
	uc.l.Info(ctx, "internal.chat.usecase.ClearConversation", "phone", phone, "existed", count == 1)
	return chat.ClearOutput{Cleared: phone, Count: count}, nil
}

func (uc *implUseCase) ClearAllConversations(ctx context.Context) (chat.ClearOutput, error) {
	count := uc.conversations.ClearAll()
	uc.l.Info(ctx, "internal.chat.usecase.ClearAllConversations", "count", count)
	return chat.ClearOutput{Cleared: ClearedAll, Count: count}, nil
}
