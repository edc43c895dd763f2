// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// LLMBuckets suits language-model round-trip latencies, 100ms to 60s.
var LLMBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

var (
	// ChatTurnsTotal counts completed chat turns by outcome (ok, ceiling, error).
	ChatTurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_agent_chat_turns_total",
			Help: "Chat turns by outcome",
		},
		[]string{"outcome"},
	)

	// AgentSteps records how many reasoning round-trips a turn used.
	AgentSteps = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delivery_agent_steps_per_turn",
			Help:    "Reasoning round-trips per turn",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	// ToolInvocationsTotal counts capability invocations by tool and status.
	ToolInvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_agent_tool_invocations_total",
			Help: "Capability invocations",
		},
		[]string{"tool", "status"},
	)

	// ProviderRequestsTotal counts requests sent to LLM providers.
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_agent_provider_requests_total",
			Help: "Provider requests",
		},
		[]string{"provider", "model", "status"},
	)

	// ProviderLatency records provider latency in seconds.
	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "delivery_agent_provider_latency_seconds",
			Help:    "Provider latency",
			Buckets: LLMBuckets,
		},
		[]string{"provider", "model"},
	)

	// LoggerOutcomesTotal counts best-effort chat log writes (stored, fallback, failed, skipped).
	LoggerOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_agent_chat_logger_outcomes_total",
			Help: "Chat log persistence outcomes",
		},
		[]string{"outcome"},
	)

	// ActiveConversations tracks conversations currently held in memory.
	ActiveConversations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_agent_active_conversations",
			Help: "Conversations held in memory",
		},
	)

	// RateLimitRejectedTotal counts chat requests rejected by the per-phone limiter.
	RateLimitRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_agent_ratelimit_rejected_total",
			Help: "Rate limit rejections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		ChatTurnsTotal,
		AgentSteps,
		ToolInvocationsTotal,
		ProviderRequestsTotal,
		ProviderLatency,
		LoggerOutcomesTotal,
		ActiveConversations,
		RateLimitRejectedTotal,
	)
}
