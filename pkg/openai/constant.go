package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default OpenAI API endpoint.
	// DeepSeek and Qwen expose the same wire format under their own base URLs.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	roleSystem   = "system"
	roleTool     = "tool"
	typeFunction = "function"

	completionsPath = "/chat/completions"
)
