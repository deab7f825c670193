package schedule

import "fmt"

// Error codes distinguishing the failure modes of a schedule call.
const (
	CodeUnauthorized   = "unauthorized"
	CodeInvalidRequest = "invalidRequest"
	CodeUpstream       = "upstreamError"
)

// ScheduleError carries a machine-checkable code alongside the caller-facing
// message. The wrapped cause, when present, is for logs only.
type ScheduleError struct {
	Code    string
	Message string
	Cause   error
}

func (e *ScheduleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScheduleError) Unwrap() error {
	return e.Cause
}

func NewUnauthorizedError() error {
	return &ScheduleError{
		Code:    CodeUnauthorized,
		Message: "Authentication required. Server not authorized with Google.",
	}
}

func NewInvalidRequestError(msg string) error {
	return &ScheduleError{
		Code:    CodeInvalidRequest,
		Message: msg,
	}
}

func NewUpstreamError(stage string, cause error) error {
	return &ScheduleError{
		Code:    CodeUpstream,
		Message: fmt.Sprintf("%s call failed", stage),
		Cause:   cause,
	}
}
