package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"delivery-agent/pkg/gemini"
	"delivery-agent/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// The same adapter serves every OpenAI-compatible backend (openai, deepseek, qwen).
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter reporting the given provider name
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Messages:    convertToOpenAIMessages(req.Messages),
		Tools:       convertToOpenAITools(req.Tools),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		oaReq.SystemPrompt = joinText(req.SystemInstruction.Parts)
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.RateLimited() {
			return nil, fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
		}
		return nil, err
	}

	parts := make([]Part, 0, len(resp.ToolCalls)+1)
	if resp.Content != "" {
		parts = append(parts, Part{Text: resp.Content})
	}
	for _, tc := range resp.ToolCalls {
		parts = append(parts, Part{FunctionCall: &FunctionCall{ID: tc.ID, Name: tc.Name, Args: tc.Args}})
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) && apiErr.RateLimited() {
			return nil, fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
		}
		return nil, err
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage.InputTokens = resp.Usage.InputTokens
		usage.OutputTokens = resp.Usage.OutputTokens
		usage.TotalTokens = resp.Usage.TotalTokens
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for OpenAI-compatible backends
func convertToOpenAIMessages(msgs []Message) []openai.Message {
	out := make([]openai.Message, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Role {
		case RoleTool:
			// One tool message per result, correlated by call id.
			for _, p := range msg.Parts {
				if p.FunctionResponse == nil {
					continue
				}
				out = append(out, openai.Message{
					Role:       RoleTool,
					Name:       p.FunctionResponse.Name,
					ToolCallID: p.FunctionResponse.ID,
					Content:    encodeResult(p.FunctionResponse.Response),
				})
			}
		default:
			m := openai.Message{Role: msg.Role, Content: joinText(msg.Parts)}
			for _, p := range msg.Parts {
				if p.FunctionCall != nil {
					m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
						ID:   p.FunctionCall.ID,
						Name: p.FunctionCall.Name,
						Args: p.FunctionCall.Args,
					})
				}
			}
			out = append(out, m)
		}
	}
	return out
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

// Conversion helpers for Gemini
func geminiRole(role string) string {
	switch role {
	case RoleAssistant:
		return gemini.RoleModel
	case RoleTool:
		return gemini.RoleFunction
	default:
		return role
	}
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: geminiResult(p.FunctionResponse.Response),
			}
		}
	}
	return &gemini.Content{Role: geminiRole(msg.Role), Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, 0, len(content.Parts))
	for _, p := range content.Parts {
		if p.FunctionCall != nil {
			parts = append(parts, Part{FunctionCall: &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}})
			continue
		}
		if p.Text != "" {
			parts = append(parts, Part{Text: p.Text})
		}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// geminiResult wraps non-object results, the API only accepts JSON objects.
func geminiResult(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	raw, err := json.Marshal(v)
	if err == nil && len(raw) > 0 && raw[0] == '{' {
		var m map[string]interface{}
		if json.Unmarshal(raw, &m) == nil {
			return m
		}
	}
	return map[string]interface{}{"result": v}
}

func encodeResult(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

func joinText(parts []Part) string {
	var text string
	for _, p := range parts {
		if p.Text == "" {
			continue
		}
		if text != "" {
			text += "\n"
		}
		text += p.Text
	}
	return text
}
