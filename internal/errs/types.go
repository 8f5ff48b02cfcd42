package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ValidationError marks bad request input: malformed dates, unknown chart
// modes, out-of-order ranges.
type ValidationError struct {
	ErrorMessage
}

// UnavailableError marks requests that cannot be answered because the order
// snapshot is absent or its load failed.
type UnavailableError struct {
	ErrorMessage
}

// UpstreamError marks a failed fetch or decode of the upstream order feed.
type UpstreamError struct {
	ErrorMessage
	Err error
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnavailableError(message string) *UnavailableError {
	return &UnavailableError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUpstreamError(message string, err error) *UpstreamError {
	return &UpstreamError{
		ErrorMessage: ErrorMessage{Message: message},
		Err:          err,
	}
}
