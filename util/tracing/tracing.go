package tracing

// Context carries the identifiers used to trace a single request
// through logs.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
