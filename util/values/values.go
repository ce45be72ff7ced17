package values

type ContextKey string

// ContextTracingKey is the context key under which the request
// tracing context is stored.
const ContextTracingKey = ContextKey("tracing-context")

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderRequestSource = "X-Request-Source"
)

// Status strings returned by helpers and mapped to HTTP
// status codes by util.StatusCode.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
)
