package usecase

import (
	"context"
	"strings"
	"time"

	"delivery-agent/internal/agent/orchestrator"
	"delivery-agent/internal/chat"
	"delivery-agent/pkg/metrics"
)

func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	// The phone is the conversation key; ClearConversation trims it the same way.
	input.Phone = strings.TrimSpace(input.Phone)
	if strings.TrimSpace(input.Name) == "" || input.Phone == "" || strings.TrimSpace(input.Message) == "" {
		return chat.ChatOutput{}, chat.ErrMissingFields
	}

	out, err := uc.agent.Run(ctx, orchestrator.Input{
		Name:    input.Name,
		Phone:   input.Phone,
		Message: input.Message,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.Chat: agent.Run phone=%s: %v", input.Phone, err)
		metrics.ChatTurnsTotal.WithLabelValues(OutcomeError).Inc()
		return chat.ChatOutput{
			Reply:     ReplyError,
			Actions:   []string{ActionError},
			Timestamp: uc.timestamp(),
		}, nil
	}

	outcome := OutcomeOK
	if out.Ceiling {
		outcome = OutcomeCeiling
	}
	metrics.ChatTurnsTotal.WithLabelValues(outcome).Inc()

	uc.scheduleLog(ctx, input, out.Reply)

	actions := out.Actions
	if actions == nil {
		actions = []string{}
	}
	return chat.ChatOutput{
		Reply:     out.Reply,
		Actions:   actions,
		Timestamp: uc.timestamp(),
	}, nil
}

func (uc *implUseCase) timestamp() string {
	return uc.now().UTC().Format(time.RFC3339Nano)
}
