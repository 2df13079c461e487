package folio

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled an operation (pressed back,
	// closed the window). This is normal flow control, not a failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrFormCancelled indicates the contact form was dismissed before
	// submission.
	ErrFormCancelled = errors.New("form cancelled by user")
)

// InfrastructureError represents an app-level failure outside the domain
// logic: rendering failed, a font is missing, the content file cannot be
// decoded. These errors are typically fatal or require restart-level
// recovery rather than page-level handling.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_content", "render_icon")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("folio: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("folio: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, ErrFormCancelled)
}
