package orchestrator

import "time"

// MaxAgentSteps bounds the reasoning round-trips of one turn.
const MaxAgentSteps = 5

// Defaults
const (
	DefaultStepTimeout     = 30 * time.Second
	DefaultMaxHistoryTurns = 10
	DefaultTemperature     = 0.7
	DefaultTimezone        = "Asia/Jerusalem"
)

// Log prefixes
const (
	LogPrefixRun    = "internal.agent.orchestrator.Run"
	LogPrefixInvoke = "internal.agent.orchestrator.invoke"
)

// Utterance is the user line sent to the model for every turn.
const UtteranceTemplate = "%s (טלפון: %s) אומר: %s"

// Time context template
const (
	TimeContextTemplate = `

[הקשר מערכת]
- התאריך היום: %s (יום %s)
- השעה כעת: %s`
)

// System prompt
const (
	SystemPromptAgent = `
דבר אך ורק בעברית.

אתה סוכן שירות בשם A.B Deliveries.
אתה עוסק אך ורק בנושאים הבאים:
1. בדיקת סטטוס משלוחים.
2. יצירת הזמנות חדשות או הצעות להזמנה.
3. תמיכה כללית הקשורה לשירות המשלוחים.
כל נושא אחר אינו בתחום האחריות שלך – תענה בנימוס שזה לא התחום שלך.

הנחיות לתקשורת:
- שמור על שיח מקצועי, מנומס וידידותי.
- בכל תשובה שלב עידוד להזמנה/פעולה נוספת.
- הישאר מרוכז אך ורק בנושאי השירות המותרים.

שימוש בכלים:
- אם יש צורך לבדוק סטטוס משלוח – השתמש ב deliveryStatusTool.
- אם נדרש לעדכן או לתעד מידע על לקוח – השתמש ב googleSheetsTool.
- כל הודעה מהלקוח תועד באמצעות messageTool.
- השתמש בכלים רק בעת הצורך.

אל תבצע שום פעולה מעבר למה שמוגדר לעיל.
`
)

// Fallback replies
const (
	ReplyEmpty   = "מצטער, אני לא יכול לעזור כרגע."
	ReplyCeiling = "מצטער, לא הצלחתי להשלים את הבקשה. אנא נסה שוב או נסח אותה אחרת."
)

// Log messages
const (
	LogMsgStep           = "Agent step %d/%d"
	LogMsgFinished       = "Agent finished at step %d"
	LogMsgCallingTool    = "Agent calling tool: %s with args: %+v"
	LogMsgToolFailed     = "Tool %s failed: %s (%s)"
	LogMsgCeilingReached = "Agent exceeded max steps (%d)"
	LogMsgBackendFailed  = "agent LLM error at step %d: %v"
)

// Hebrew weekday names, indexed by time.Weekday.
var hebrewWeekdays = [...]string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}
