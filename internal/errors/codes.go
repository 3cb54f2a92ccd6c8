package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific error type for AI operations.
type ErrorCode string

const (
	// ErrCodeUnauthorized indicates authentication failure against the upstream provider.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeRateLimitExceeded indicates the upstream rate limit has been exceeded.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeLLMUnavailable indicates the completion service is not available.
	ErrCodeLLMUnavailable ErrorCode = "LLM_UNAVAILABLE"
	// ErrCodeParseFailed indicates a structured response could not be decoded.
	ErrCodeParseFailed ErrorCode = "PARSE_FAILED"
	// ErrCodeContextCanceled indicates the operation was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// AIError represents a structured error for AI operations.
type AIError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AIError) Unwrap() error {
	return e.Cause
}

// New creates a new AIError.
func New(code ErrorCode, message string) *AIError {
	return &AIError{Code: code, Message: message}
}

// Wrap creates a new AIError wrapping a cause.
func Wrap(code ErrorCode, message string, cause error) *AIError {
	return &AIError{Code: code, Message: message, Cause: cause}
}

// Classify maps an arbitrary upstream error to an ErrorCode. Matching is
// best-effort over the error text since the openai client does not expose a
// stable taxonomy for transport failures.
func Classify(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, context.Canceled):
		return ErrCodeContextCanceled
	case stderrors.Is(err, context.DeadlineExceeded):
		return ErrCodeTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "status code: 401"), strings.Contains(msg, "unauthorized"):
		return ErrCodeUnauthorized
	case strings.Contains(msg, "status code: 429"), strings.Contains(msg, "rate limit"):
		return ErrCodeRateLimitExceeded
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return ErrCodeTimeout
	default:
		return ErrCodeLLMUnavailable
	}
}
