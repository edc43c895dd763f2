package usecase

import "time"

// Fixed replies
const (
	ReplyError  = "מצטער, אירעה שגיאה. אנא נסה שוב מאוחר יותר."
	ActionError = "error"
	ClearedAll  = "all"
)

// DefaultLoggerTimeout bounds one chat log write.
const DefaultLoggerTimeout = 10 * time.Second

// Turn outcomes
const (
	OutcomeOK      = "ok"
	OutcomeCeiling = "ceiling"
	OutcomeError   = "error"
)

// Chat log outcomes
const (
	LogOutcomeStored   = "stored"
	LogOutcomeFallback = "fallback"
	LogOutcomeFailed   = "failed"
	LogOutcomeSkipped  = "skipped"
)
