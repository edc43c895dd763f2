package orchestrator

import (
	"time"

	"delivery-agent/internal/agent"
	"delivery-agent/internal/agent/memory"
	"delivery-agent/pkg/llmprovider"
	pkgLog "delivery-agent/pkg/log"
)

type Orchestrator struct {
	llm      *llmprovider.Manager
	registry *agent.ToolRegistry
	store    *memory.Store
	l        pkgLog.Logger
	cfg      Config
	now      func() time.Time
}

func New(llm *llmprovider.Manager, registry *agent.ToolRegistry, store *memory.Store, l pkgLog.Logger, cfg Config) *Orchestrator {
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = DefaultStepTimeout
	}
	if cfg.MaxHistoryTurns <= 0 {
		cfg.MaxHistoryTurns = DefaultMaxHistoryTurns
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		store:    store,
		l:        l,
		cfg:      cfg,
		now:      time.Now,
	}
}
