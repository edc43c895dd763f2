package tools

import (
	"context"
	"errors"
	"time"

	"delivery-agent/internal/agent"
	"delivery-agent/internal/model"
	"delivery-agent/internal/record"
	"delivery-agent/internal/record/repository"
	pkgLog "delivery-agent/pkg/log"
)

// TurnLoggerTool appends a chat-log row, falling back to the local log on any store fault.
type TurnLoggerTool struct {
	repo repository.ChatLogRepository
	l    pkgLog.Logger
	now  func() time.Time
}

var _ agent.Tool = (*TurnLoggerTool)(nil)

// NewTurnLoggerTool creates a new turn logger tool.
func NewTurnLoggerTool(repo repository.ChatLogRepository, l pkgLog.Logger) agent.Tool {
	return &TurnLoggerTool{repo: repo, l: l, now: time.Now}
}

func (t *TurnLoggerTool) Name() string     { return TurnLoggerToolName }
func (t *TurnLoggerTool) Kind() agent.Kind { return agent.KindTurnLogger }

func (t *TurnLoggerTool) Description() string {
	return turnLoggerDescription
}

func (t *TurnLoggerTool) Parameters() map[string]interface{} {
	str := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "string", "description": desc}
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name":     str("שם הלקוח"),
			"phone":    str("מספר הטלפון של הלקוח"),
			"message":  str("ההודעה מהלקוח"),
			"response": str("התשובה שניתנה ללקוח"),
		},
		"required": []string{"name", "phone", "message", "response"},
	}
}

func (t *TurnLoggerTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in TurnLoggerInput
	if err := agent.DecodeArgs(params, &in); err != nil {
		return nil, err
	}

	now := t.now().UTC()
	err := t.repo.AppendChatLog(ctx, model.ChatLog{
		Timestamp: now,
		Name:      in.Name,
		Phone:     in.Phone,
		Message:   in.Message,
		Response:  in.Response,
	})
	if err == nil {
		return TurnLoggerResult{
			Success:   true,
			Message:   msgLogStored,
			Timestamp: now.Format(time.RFC3339Nano),
		}, nil
	}

	t.l.Info(ctx, "chat log (local)",
		"timestamp", now.Format(time.RFC3339Nano),
		"name", in.Name,
		"phone", in.Phone,
		"message", in.Message,
		"response", in.Response,
		"cause", err.Error(),
	)

	if errors.Is(err, record.ErrNotConfigured) {
		return TurnLoggerResult{Success: true, Message: msgLogNotConfigured, LoggedTo: LoggedToConsole}, nil
	}
	return TurnLoggerResult{
		Success:  true,
		Message:  msgLogUnavailable,
		LoggedTo: LoggedToConsole,
		Details:  err.Error(),
	}, nil
}
