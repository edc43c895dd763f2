package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"delivery-agent/internal/agent/memory"
	"delivery-agent/pkg/llmprovider"
	"delivery-agent/pkg/metrics"
)

// Run processes one customer message: Reason → Act → Observe.
// The conversation of in.Phone is locked for the whole turn; on a backend
// failure the error wraps ErrBackend and memory is left untouched.
func (o *Orchestrator) Run(ctx context.Context, in Input) (Output, error) {
	conv := o.store.GetOrCreate(in.Phone)
	conv.Lock()
	defer conv.Unlock()

	utterance := fmt.Sprintf(UtteranceTemplate, in.Name, in.Phone, in.Message)

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: SystemPromptAgent + buildTimeContext(o.now(), o.cfg.Timezone)}},
		},
		Messages:    append(replay(conv.Recent(o.cfg.MaxHistoryTurns)), userMessage(utterance)),
		Tools:       o.registry.ToFunctionDefinitions(),
		Temperature: o.cfg.Temperature,
	}

	out := Output{Actions: []string{}}
	var invocations []memory.Invocation
	var lastText string
	done := false

	for step := 0; step < MaxAgentSteps; step++ {
		o.l.Infof(ctx, LogMsgStep, step+1, MaxAgentSteps)
		out.Steps = step + 1

		// 1. Reason
		resp, err := o.generate(ctx, req)
		if err != nil {
			o.l.Errorf(ctx, "%s: "+LogMsgBackendFailed, LogPrefixRun, step+1, err)
			return Output{}, fmt.Errorf("%w: step %d: %v", ErrBackend, step+1, err)
		}

		text := strings.TrimSpace(resp.Text())
		if text != "" {
			lastText = text
		}

		call := resp.FunctionCall()
		if call == nil {
			o.l.Infof(ctx, LogMsgFinished, step+1)
			out.Reply = text
			if out.Reply == "" {
				out.Reply = ReplyEmpty
			}
			done = true
			break
		}

		// 2. Act
		if call.ID == "" {
			call.ID = "call_" + uuid.NewString()
		}
		out.Actions = append(out.Actions, call.Name)
		inv := o.invoke(ctx, call)
		invocations = append(invocations, inv)

		// 3. Observe
		assistant := llmprovider.Message{Role: llmprovider.RoleAssistant}
		if text != "" {
			assistant.Parts = append(assistant.Parts, llmprovider.Part{Text: text})
		}
		assistant.Parts = append(assistant.Parts, llmprovider.Part{FunctionCall: call})
		req.Messages = append(req.Messages, assistant, llmprovider.Message{
			Role: llmprovider.RoleTool,
			Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: inv.Result,
				},
			}},
		})
	}

	if !done {
		o.l.Warnf(ctx, LogMsgCeilingReached, MaxAgentSteps)
		out.Ceiling = true
		out.Reply = lastText
		if out.Reply == "" {
			out.Reply = ReplyCeiling
		}
	}

	metrics.AgentSteps.Observe(float64(out.Steps))
	conv.Append(memory.Turn{
		Utterance:   utterance,
		Invocations: invocations,
		Reply:       out.Reply,
		Timestamp:   o.now().UTC(),
	})

	return out, nil
}

// generate runs a single round-trip bounded by the step timeout.
func (o *Orchestrator) generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.StepTimeout)
	defer cancel()
	return o.llm.GenerateContent(ctx, req)
}

func (o *Orchestrator) invoke(ctx context.Context, call *llmprovider.FunctionCall) memory.Invocation {
	o.l.Infof(ctx, LogMsgCallingTool, call.Name, call.Args)

	res := o.registry.Invoke(ctx, call.Name, call.Args)
	if !res.Success {
		o.l.Warnf(ctx, "%s: "+LogMsgToolFailed, LogPrefixInvoke, call.Name, res.Error, res.Details)
	}
	return memory.Invocation{
		Name:    call.Name,
		Args:    call.Args,
		Success: res.Success,
		Result:  res.Feedback(),
	}
}

// replay turns stored turns into user/assistant message pairs.
func replay(turns []memory.Turn) []llmprovider.Message {
	messages := make([]llmprovider.Message, 0, len(turns)*2+1)
	for _, t := range turns {
		messages = append(messages,
			userMessage(t.Utterance),
			llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: t.Reply}}},
		)
	}
	return messages
}

func userMessage(text string) llmprovider.Message {
	return llmprovider.Message{Role: llmprovider.RoleUser, Parts: []llmprovider.Part{{Text: text}}}
}
