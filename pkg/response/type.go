package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	TooManyRequestsMessage  = "Too many requests"
	InternalServerErrorCode = 500
)

// ErrorBody is the flat error body used by routes that answer with Raw.
type ErrorBody struct {
	Error string `json:"error"`
}
