package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"delivery-agent/internal/agent"
	"delivery-agent/internal/agent/memory"
	"delivery-agent/internal/agent/tools"
	"delivery-agent/internal/model"
	shipmentmem "delivery-agent/internal/shipment/repository/memory"
	"delivery-agent/pkg/llmprovider"
	"delivery-agent/pkg/log"
)

// scriptedProvider replays responses in order and records what it was sent.
// Once the script is exhausted the last response repeats.
type scriptedProvider struct {
	mu        sync.Mutex
	responses []*llmprovider.Response
	err       error
	requests  []llmprovider.Request
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := *req
	snapshot.Messages = append([]llmprovider.Message(nil), req.Messages...)
	p.requests = append(p.requests, snapshot)

	if p.err != nil {
		return nil, p.err
	}
	i := len(p.requests) - 1
	if i >= len(p.responses) {
		i = len(p.responses) - 1
	}
	// Copy so the orchestrator's id assignment does not leak into the script.
	resp := *p.responses[i]
	resp.Content.Parts = clonePartsWithCalls(resp.Content.Parts)
	return &resp, nil
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

func (p *scriptedProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

func clonePartsWithCalls(parts []llmprovider.Part) []llmprovider.Part {
	out := make([]llmprovider.Part, len(parts))
	for i, part := range parts {
		out[i] = part
		if part.FunctionCall != nil {
			fc := *part.FunctionCall
			out[i].FunctionCall = &fc
		}
	}
	return out
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.Message{
		Role:  llmprovider.RoleAssistant,
		Parts: []llmprovider.Part{{Text: text}},
	}}
}

func callResponse(name string, args map[string]interface{}) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.Message{
		Role:  llmprovider.RoleAssistant,
		Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{Name: name, Args: args}}},
	}}
}

type nopChatLogs struct{}

func (nopChatLogs) AppendChatLog(ctx context.Context, entry model.ChatLog) error { return nil }

func newTestOrchestrator(t *testing.T, p *scriptedProvider) (*Orchestrator, *memory.Store) {
	t.Helper()
	l := log.NewNop()

	registry := agent.NewToolRegistry()
	if err := registry.Register(tools.NewDeliveryStatusTool(shipmentmem.New(nil))); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(tools.NewTurnLoggerTool(nopChatLogs{}, l)); err != nil {
		t.Fatalf("register: %v", err)
	}

	manager := llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{RetryAttempts: 1}, l)
	store := memory.NewStore(memory.Config{}, l)
	o := New(manager, registry, store, l, Config{Timezone: "UTC"})
	o.now = func() time.Time { return time.Date(2025, 11, 9, 10, 30, 0, 0, time.UTC) }
	return o, store
}

var dani = Input{Name: "דני לוי", Phone: "0521234567", Message: "status 12345?"}

func TestRun_DirectReply(t *testing.T) {
	p := &scriptedProvider{responses: []*llmprovider.Response{textResponse("שלום דני! איך אפשר לעזור? אולי תרצה להזמין משלוח חדש?")}}
	o, store := newTestOrchestrator(t, p)

	out, err := o.Run(context.Background(), Input{Name: "דני לוי", Phone: "0521234567", Message: "שלום"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Actions == nil || len(out.Actions) != 0 {
		t.Errorf("expected empty non-nil actions, got %#v", out.Actions)
	}
	if out.Reply != "שלום דני! איך אפשר לעזור? אולי תרצה להזמין משלוח חדש?" {
		t.Errorf("unexpected reply %q", out.Reply)
	}
	if out.Steps != 1 || out.Ceiling {
		t.Errorf("unexpected steps=%d ceiling=%v", out.Steps, out.Ceiling)
	}

	req := p.requests[0]
	if req.SystemInstruction == nil || !strings.Contains(req.SystemInstruction.Parts[0].Text, "A.B Deliveries") {
		t.Error("system prompt should be sent on every request")
	}
	if len(req.Tools) != 2 {
		t.Errorf("expected 2 tool definitions, got %d", len(req.Tools))
	}
	if len(req.Messages) != 1 || req.Messages[0].Parts[0].Text != "דני לוי (טלפון: 0521234567) אומר: שלום" {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}

	conv, ok := store.Get("0521234567")
	if !ok || conv.Len() != 1 {
		t.Fatalf("expected one stored turn")
	}
}

func TestRun_DeliveryStatusLookup(t *testing.T) {
	p := &scriptedProvider{responses: []*llmprovider.Response{
		callResponse("deliveryStatusTool", map[string]interface{}{"shipmentId": "12345"}),
		textResponse("המשלוח 12345 בדרך ונמצא בתל אביב. תרצה לבצע הזמנה נוספת?"),
	}}
	o, store := newTestOrchestrator(t, p)

	out, err := o.Run(context.Background(), dani)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply == "" {
		t.Error("reply should not be empty")
	}
	if len(out.Actions) != 1 || out.Actions[0] != "deliveryStatusTool" {
		t.Errorf("expected [deliveryStatusTool], got %v", out.Actions)
	}

	if p.calls() != 2 {
		t.Fatalf("expected 2 round-trips, got %d", p.calls())
	}
	second := p.requests[1].Messages
	if len(second) != 3 {
		t.Fatalf("expected user, call and result messages, got %d", len(second))
	}

	call := second[1].Parts[0].FunctionCall
	if second[1].Role != llmprovider.RoleAssistant || call == nil || call.ID == "" {
		t.Fatalf("expected assistant function call with an id, got %+v", second[1])
	}
	result := second[2].Parts[0].FunctionResponse
	if second[2].Role != llmprovider.RoleTool || result == nil || result.ID != call.ID {
		t.Fatalf("tool result should echo the call id, got %+v", second[2])
	}
	status, ok := result.Response.(tools.DeliveryStatusResult)
	if !ok || !status.Success || status.Data.Status != "בדרך" {
		t.Errorf("unexpected tool result: %#v", result.Response)
	}

	conv, _ := store.Get(dani.Phone)
	turns := conv.History()
	if len(turns) != 1 || len(turns[0].Invocations) != 1 || !turns[0].Invocations[0].Success {
		t.Errorf("invocation should be recorded on the turn: %+v", turns)
	}
}

func TestRun_KeepsProviderCallID(t *testing.T) {
	withID := callResponse("deliveryStatusTool", map[string]interface{}{"shipmentId": "67890"})
	withID.Content.Parts[0].FunctionCall.ID = "call_abc"
	p := &scriptedProvider{responses: []*llmprovider.Response{withID, textResponse("נמסר")}}
	o, _ := newTestOrchestrator(t, p)

	if _, err := o.Run(context.Background(), dani); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.requests[1].Messages[2].Parts[0].FunctionResponse.ID; got != "call_abc" {
		t.Errorf("expected call_abc, got %q", got)
	}
}

func TestRun_StepCeiling(t *testing.T) {
	t.Run("fixed fallback", func(t *testing.T) {
		p := &scriptedProvider{responses: []*llmprovider.Response{
			callResponse("deliveryStatusTool", map[string]interface{}{"shipmentId": "12345"}),
		}}
		o, _ := newTestOrchestrator(t, p)

		out, err := o.Run(context.Background(), dani)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.calls() != MaxAgentSteps {
			t.Errorf("expected %d round-trips, got %d", MaxAgentSteps, p.calls())
		}
		if len(out.Actions) != MaxAgentSteps {
			t.Errorf("expected %d actions, got %v", MaxAgentSteps, out.Actions)
		}
		if !out.Ceiling || out.Reply != ReplyCeiling {
			t.Errorf("expected ceiling fallback, got %q", out.Reply)
		}
	})

	t.Run("last model text", func(t *testing.T) {
		resp := callResponse("deliveryStatusTool", map[string]interface{}{"shipmentId": "12345"})
		resp.Content.Parts = append([]llmprovider.Part{{Text: "בודק את המשלוח..."}}, resp.Content.Parts...)
		p := &scriptedProvider{responses: []*llmprovider.Response{resp}}
		o, _ := newTestOrchestrator(t, p)

		out, err := o.Run(context.Background(), dani)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply != "בודק את המשלוח..." {
			t.Errorf("expected last model text, got %q", out.Reply)
		}
	})
}

func TestRun_UnknownToolIsReported(t *testing.T) {
	p := &scriptedProvider{responses: []*llmprovider.Response{
		callResponse("weatherTool", map[string]interface{}{"city": "חיפה"}),
		textResponse("זה לא התחום שלי, אבל אשמח לעזור במשלוחים."),
	}}
	o, _ := newTestOrchestrator(t, p)

	out, err := o.Run(context.Background(), dani)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Actions) != 1 || out.Actions[0] != "weatherTool" {
		t.Errorf("unknown tool should still be listed, got %v", out.Actions)
	}
	fb, ok := p.requests[1].Messages[2].Parts[0].FunctionResponse.Response.(map[string]interface{})
	if !ok || fb["error"] != agent.CodeUnknownTool {
		t.Errorf("expected unknown_tool feedback, got %#v", p.requests[1].Messages[2].Parts[0].FunctionResponse.Response)
	}
}

// panickingTool fails the way a buggy capability would.
type panickingTool struct{}

func (panickingTool) Name() string                       { return tools.DeliveryStatusToolName }
func (panickingTool) Kind() agent.Kind                   { return agent.KindDeliveryStatus }
func (panickingTool) Description() string                { return "" }
func (panickingTool) Parameters() map[string]interface{} { return nil }
func (panickingTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	var m map[string]int
	m["x"]++
	return nil, nil
}

func TestRun_ToolPanicStaysInsideLoop(t *testing.T) {
	p := &scriptedProvider{responses: []*llmprovider.Response{
		callResponse(tools.DeliveryStatusToolName, map[string]interface{}{"shipmentId": "12345"}),
		textResponse("מצטער, יש תקלה בבדיקת המשלוח."),
	}}
	l := log.NewNop()
	registry := agent.NewToolRegistry()
	if err := registry.Register(panickingTool{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	manager := llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{RetryAttempts: 1}, l)
	o := New(manager, registry, memory.NewStore(memory.Config{}, l), l, Config{Timezone: "UTC"})

	out, err := o.Run(context.Background(), dani)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "מצטער, יש תקלה בבדיקת המשלוח." || out.Steps != 2 {
		t.Errorf("unexpected output %+v", out)
	}
	fb, ok := p.requests[1].Messages[2].Parts[0].FunctionResponse.Response.(map[string]interface{})
	if !ok || fb["error"] != agent.CodeExecutionFailed {
		t.Errorf("expected execution_failed feedback, got %#v", p.requests[1].Messages[2].Parts[0].FunctionResponse.Response)
	}
}

func TestRun_EmptyTextFallback(t *testing.T) {
	p := &scriptedProvider{responses: []*llmprovider.Response{textResponse("   ")}}
	o, _ := newTestOrchestrator(t, p)

	out, err := o.Run(context.Background(), dani)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != ReplyEmpty {
		t.Errorf("expected empty-reply fallback, got %q", out.Reply)
	}
}

func TestRun_BackendError(t *testing.T) {
	p := &scriptedProvider{err: errors.New("connection reset")}
	o, store := newTestOrchestrator(t, p)

	_, err := o.Run(context.Background(), dani)
	if !errors.Is(err, ErrBackend) {
		t.Fatalf("expected ErrBackend, got %v", err)
	}
	conv, ok := store.Get(dani.Phone)
	if !ok {
		t.Fatal("conversation should exist")
	}
	if conv.Len() != 0 {
		t.Errorf("memory should not change on backend failure, got %d turns", conv.Len())
	}
}

func TestRun_HistoryReplayAndIsolation(t *testing.T) {
	p := &scriptedProvider{responses: []*llmprovider.Response{textResponse("בשמחה!")}}
	o, store := newTestOrchestrator(t, p)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := o.Run(ctx, dani); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if _, err := o.Run(ctx, Input{Name: "רותי", Phone: "0549876543", Message: "היי"}); err != nil {
		t.Fatalf("run other: %v", err)
	}

	if n := len(p.requests[1].Messages); n != 3 {
		t.Errorf("second turn should replay one prior exchange, got %d messages", n)
	}
	if p.requests[1].Messages[1].Role != llmprovider.RoleAssistant || p.requests[1].Messages[1].Parts[0].Text != "בשמחה!" {
		t.Errorf("unexpected replayed reply: %+v", p.requests[1].Messages[1])
	}
	if n := len(p.requests[2].Messages); n != 1 {
		t.Errorf("another phone must start empty, got %d messages", n)
	}

	a, _ := store.Get(dani.Phone)
	b, _ := store.Get("0549876543")
	if a.Len() != 2 || b.Len() != 1 {
		t.Errorf("unexpected turn counts a=%d b=%d", a.Len(), b.Len())
	}

	store.Clear(dani.Phone)
	if _, err := o.Run(ctx, dani); err != nil {
		t.Fatalf("run after clear: %v", err)
	}
	if n := len(p.requests[3].Messages); n != 1 {
		t.Errorf("cleared conversation should start empty, got %d messages", n)
	}
}

func TestRun_HistoryWindow(t *testing.T) {
	p := &scriptedProvider{responses: []*llmprovider.Response{textResponse("בסדר")}}
	o, _ := newTestOrchestrator(t, p)
	o.cfg.MaxHistoryTurns = 2

	for i := 0; i < 4; i++ {
		if _, err := o.Run(context.Background(), dani); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if n := len(p.requests[3].Messages); n != 5 {
		t.Errorf("expected 2 replayed exchanges plus the utterance, got %d", n)
	}
}
