package lifecycle

import (
	// Go Internal Packages
	"fmt"

	// Local Packages
	models "recon-stream/models"
)

// InvalidTransitionError reports an action that is not legal from the
// payment's current status. It is terminal to the requested action only;
// the record itself is left as it was.
type InvalidTransitionError struct {
	Status models.PaymentStatus
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: action %q is not legal from status %q", e.Action, e.Status)
}

// AmountExceedsCapturableError reports a capture or refund request larger
// than the amount still available. Recoverable by resubmitting less.
type AmountExceedsCapturableError struct {
	Requested int64
	Available int64
}

func (e *AmountExceedsCapturableError) Error() string {
	return fmt.Sprintf("amount exceeds capturable: requested %d, available %d", e.Requested, e.Available)
}
