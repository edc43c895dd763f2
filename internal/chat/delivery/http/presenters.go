package http

import (
	"strings"

	"delivery-agent/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Phone) == "" || strings.TrimSpace(r.Message) == "" {
		return errMissingFields
	}
	return nil
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply     string   `json:"reply"`
	Actions   []string `json:"actions"`
	Timestamp string   `json:"timestamp"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	actions := out.Actions
	if actions == nil {
		actions = []string{}
	}
	return chatResp{
		Reply:     out.Reply,
		Actions:   actions,
		Timestamp: out.Timestamp,
	}
}

type clearResp struct {
	Cleared string `json:"cleared"`
	Count   int    `json:"count"`
}

func (h *handler) newClearResp(out chat.ClearOutput) clearResp {
	return clearResp{Cleared: out.Cleared, Count: out.Count}
}
