package claims

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bimadesk/bimadesk/internal/models"
)

var (
	// ErrPolicyNotFound is returned when a claim references an unknown policy
	ErrPolicyNotFound = errors.New("policy not found")

	// ErrClaimNotFound is returned when a claim id does not resolve
	ErrClaimNotFound = errors.New("claim not found")

	// ErrIDSpaceExhausted is returned when claim id generation keeps
	// colliding with existing ids.
	ErrIDSpaceExhausted = errors.New("claim id space exhausted")
)

// TransitionError reports a lifecycle event that is not allowed from the
// claim's current status.
type TransitionError struct {
	From  models.Status
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: event %q not allowed from status %q", e.Event, e.From)
}

// DocumentFormatError reports uploaded files rejected for their extension.
// Valid files from the same batch are still staged; this error only carries
// the rejected names.
type DocumentFormatError struct {
	Rejected []string
}

func (e *DocumentFormatError) Error() string {
	return fmt.Sprintf("Invalid format: %s. Only PDF, Word, Excel files allowed.",
		strings.Join(e.Rejected, ", "))
}

// ValidationError is a user-correctable submission input error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
