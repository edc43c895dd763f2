package usecase

import (
	"context"
	"sync"
	"time"

	"delivery-agent/internal/agent"
	"delivery-agent/internal/agent/orchestrator"
	pkgLog "delivery-agent/pkg/log"
)

// Agent runs one reasoning turn.
type Agent interface {
	Run(ctx context.Context, in orchestrator.Input) (orchestrator.Output, error)
}

// Conversations is the memory the use case can reset.
type Conversations interface {
	Clear(id string) bool
	ClearAll() int
}

type implUseCase struct {
	l             pkgLog.Logger
	agent         Agent
	conversations Conversations
	registry      *agent.ToolRegistry
	loggerTimeout time.Duration
	now           func() time.Time

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	a Agent,
	conversations Conversations,
	registry *agent.ToolRegistry,
	loggerTimeout time.Duration,
) *implUseCase {
	if loggerTimeout <= 0 {
		loggerTimeout = DefaultLoggerTimeout
	}
	return &implUseCase{
		l:             l,
		agent:         a,
		conversations: conversations,
		registry:      registry,
		loggerTimeout: loggerTimeout,
		now:           time.Now,
	}
}
