package orchestrator

import (
	"fmt"
	"time"
)

// Date format
const (
	DateFormatISO = "2006-01-02"
	TimeFormat    = "15:04"
)

// buildTimeContext creates the date grounding line appended to the system prompt.
func buildTimeContext(now time.Time, timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	now = now.In(loc)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		hebrewWeekdays[now.Weekday()],
		now.Format(TimeFormat),
	)
}
