package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// RequestIDKey is the context key under which the HTTP middleware stores the request id.
type RequestIDKey struct{}
