package agent

import (
	"context"
	"errors"
	"fmt"

	"delivery-agent/pkg/llmprovider"
	"delivery-agent/pkg/metrics"
)

// Kind is the closed set of capability kinds the agent can dispatch to.
type Kind string

const (
	KindDeliveryStatus Kind = "delivery_status"
	KindCustomerRecord Kind = "customer_record"
	KindTurnLogger     Kind = "turn_logger"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDeliveryStatus, KindCustomerRecord, KindTurnLogger:
		return true
	}
	return false
}

// Tool represents an agent tool that can be called by LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Kind returns the capability kind the tool implements.
	Kind() Kind

	// Description returns what the tool does and when to use it (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters.
	// Expected outcomes such as "not found" are payloads, not errors.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// Invocation error codes reported in Result.Error.
const (
	CodeUnknownTool      = "unknown_tool"
	CodeInvalidArguments = "invalid_arguments"
	CodeExecutionFailed  = "execution_failed"
)

// Result is the outcome of one registry invocation.
type Result struct {
	Success bool
	Error   string
	Details string
	Payload interface{}
}

// Feedback returns what is handed back to the model for this result.
func (r Result) Feedback() interface{} {
	if r.Success {
		return r.Payload
	}
	return map[string]interface{}{
		"success": false,
		"error":   r.Error,
		"details": r.Details,
	}
}

// ToolRegistry manages available tools.
// Registration happens at startup; lookups are safe for concurrent use afterwards.
type ToolRegistry struct {
	tools map[string]Tool
	order []string
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) error {
	if !tool.Kind().Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, tool.Kind())
	}
	if _, exists := r.tools[tool.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name())
	}
	r.tools[tool.Name()] = tool
	r.order = append(r.order, tool.Name())
	return nil
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in registration order.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.order))
	for _, tool := range r.List() {
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}

// Invoke dispatches a call by name. It never returns an error:
// every failure, a panic included, is folded into a Result the model can react to.
func (r *ToolRegistry) Invoke(ctx context.Context, name string, args map[string]interface{}) (res Result) {
	tool, ok := r.tools[name]
	if !ok {
		metrics.ToolInvocationsTotal.WithLabelValues("unregistered", CodeUnknownTool).Inc()
		return Result{
			Error:   CodeUnknownTool,
			Details: fmt.Sprintf("no tool named %q; available: %v", name, r.order),
		}
	}

	defer func() {
		if p := recover(); p != nil {
			metrics.ToolInvocationsTotal.WithLabelValues(name, CodeExecutionFailed).Inc()
			res = Result{Error: CodeExecutionFailed, Details: fmt.Sprintf("tool panicked: %v", p)}
		}
	}()

	payload, err := tool.Execute(ctx, args)
	if err != nil {
		code := CodeExecutionFailed
		if errors.Is(err, ErrInvalidArguments) {
			code = CodeInvalidArguments
		}
		metrics.ToolInvocationsTotal.WithLabelValues(name, code).Inc()
		return Result{Error: code, Details: err.Error()}
	}

	metrics.ToolInvocationsTotal.WithLabelValues(name, "ok").Inc()
	return Result{Success: true, Payload: payload}
}
