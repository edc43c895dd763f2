package usecase

import (
	"context"

	"delivery-agent/internal/agent/tools"
	"delivery-agent/internal/chat"
	"delivery-agent/pkg/metrics"
)

// scheduleLog records the finished turn through messageTool in the
// background. The task outlives the request and never touches the reply.
func (uc *implUseCase) scheduleLog(ctx context.Context, input chat.ChatInput, reply string) {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		uc.l.Warnf(ctx, "internal.chat.usecase.scheduleLog: closed, dropping log for %s", input.Phone)
		metrics.LoggerOutcomesTotal.WithLabelValues(LogOutcomeSkipped).Inc()
		return
	}
	uc.pending.Add(1)
	uc.mu.Unlock()

	// Keep request-scoped values (request id) but drop the cancellation.
	detached := context.WithoutCancel(ctx)

	go func() {
		defer uc.pending.Done()

		ctx, cancel := context.WithTimeout(detached, uc.loggerTimeout)
		defer cancel()

		outcome := uc.logTurn(ctx, input, reply)
		metrics.LoggerOutcomesTotal.WithLabelValues(outcome).Inc()
	}()
}

func (uc *implUseCase) logTurn(ctx context.Context, input chat.ChatInput, reply string) (outcome string) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.chat.usecase.logTurn: panic: %v", r)
			outcome = LogOutcomeFailed
		}
	}()

	res := uc.registry.Invoke(ctx, tools.TurnLoggerToolName, map[string]interface{}{
		"name":     input.Name,
		"phone":    input.Phone,
		"message":  input.Message,
		"response": reply,
	})
	if !res.Success {
		uc.l.Errorf(ctx, "internal.chat.usecase.logTurn: %s: %s", res.Error, res.Details)
		return LogOutcomeFailed
	}
	if payload, ok := res.Payload.(tools.TurnLoggerResult); ok && payload.LoggedTo == tools.LoggedToConsole {
		return LogOutcomeFallback
	}
	return LogOutcomeStored
}

// Close stops accepting log tasks and waits for the pending ones.
func (uc *implUseCase) Close(ctx context.Context) error {
	uc.mu.Lock()
	uc.closed = true
	uc.mu.Unlock()

	done := make(chan struct{})
	go func() {
		uc.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
