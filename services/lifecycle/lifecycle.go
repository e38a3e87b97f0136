package lifecycle

import (
	// Local Packages
	models "recon-stream/models"
)

// Action is a caller-requested step in the payment lifecycle.
type Action string

const (
	ActionSupplyPaymentMethod Action = "supply_payment_method"
	ActionConfirm             Action = "confirm"
	ActionRequireAction       Action = "require_action"
	ActionCompleteAction      Action = "complete_action"
	ActionAuthorize           Action = "authorize"
	ActionSucceed             Action = "succeed"
	ActionFail                Action = "fail"
	ActionCapture             Action = "capture"
	ActionCancel              Action = "cancel"
	ActionRefund              Action = "refund"
)

// ActionContext carries the amounts an amount-bearing action is validated
// against. All values are minor units of the payment's currency.
type ActionContext struct {
	AmountMinor     int64 // requested capture or refund amount
	CapturableMinor int64 // amount still eligible for capture
	CapturedMinor   int64 // amount captured so far
	RefundedMinor   int64 // amount already refunded
	MultipleCapture bool  // connector allows further captures after a partial one
}

type transitionKey struct {
	status models.PaymentStatus
	action Action
}

// transitions is the single source of truth for legal lifecycle steps.
// Amount-bearing actions (capture, refund) are validated and resolved in
// ValidateTransition; the sentinel targets here only mark the pair as legal.
var transitions = map[transitionKey]models.PaymentStatus{
	{models.StatusRequiresPaymentMethod, ActionSupplyPaymentMethod}: models.StatusRequiresConfirmation,
	{models.StatusRequiresPaymentMethod, ActionCancel}:              models.StatusCancelled,
	{models.StatusRequiresConfirmation, ActionConfirm}:              models.StatusProcessing,
	{models.StatusRequiresConfirmation, ActionCancel}:               models.StatusCancelled,
	{models.StatusRequiresAction, ActionCompleteAction}:             models.StatusProcessing,
	{models.StatusProcessing, ActionRequireAction}:                  models.StatusRequiresAction,
	{models.StatusProcessing, ActionAuthorize}:                      models.StatusRequiresCapture,
	{models.StatusProcessing, ActionSucceed}:                        models.StatusSucceeded,
	{models.StatusProcessing, ActionFail}:                           models.StatusFailed,
	{models.StatusProcessing, ActionCancel}:                         models.StatusCancelled,
	{models.StatusRequiresCapture, ActionCapture}:                   models.StatusSucceeded,
	{models.StatusRequiresCapture, ActionFail}:                      models.StatusFailed,
	{models.StatusPartiallyCapturedAndCapturable, ActionCapture}:    models.StatusSucceeded,
	{models.StatusSucceeded, ActionRefund}:                          models.StatusSucceeded,
	{models.StatusPartiallyCaptured, ActionRefund}:                  models.StatusPartiallyCaptured,
	{models.StatusPartiallyCapturedAndCapturable, ActionRefund}:     models.StatusPartiallyCapturedAndCapturable,
}

// ValidateTransition checks whether action is legal from current and returns
// the status the payment would move to. It never mutates anything: the caller
// owns applying the returned status. An action not present in the table fails
// with InvalidTransitionError; amount violations fail with
// AmountExceedsCapturableError. The record's status is untouched either way.
func ValidateTransition(current models.PaymentStatus, action Action, ctx ActionContext) (models.PaymentStatus, error) {
	next, ok := transitions[transitionKey{status: current, action: action}]
	if !ok {
		return "", &InvalidTransitionError{Status: current, Action: action}
	}

	switch action {
	case ActionCapture:
		return resolveCapture(ctx)
	case ActionRefund:
		available := ctx.CapturedMinor - ctx.RefundedMinor
		if ctx.AmountMinor > available {
			return "", &AmountExceedsCapturableError{Requested: ctx.AmountMinor, Available: available}
		}
		return next, nil
	}
	return next, nil
}

// resolveCapture maps a validated capture request onto the resulting status.
// Capturing the full capturable amount completes the payment; a partial
// capture leaves it partially captured, still capturable when the connector
// supports multiple captures.
func resolveCapture(ctx ActionContext) (models.PaymentStatus, error) {
	if ctx.AmountMinor > ctx.CapturableMinor {
		return "", &AmountExceedsCapturableError{Requested: ctx.AmountMinor, Available: ctx.CapturableMinor}
	}
	if ctx.AmountMinor == ctx.CapturableMinor {
		return models.StatusSucceeded, nil
	}
	if ctx.MultipleCapture {
		return models.StatusPartiallyCapturedAndCapturable, nil
	}
	return models.StatusPartiallyCaptured, nil
}

// IsFinal reports whether no further lifecycle step exists for status.
func IsFinal(status models.PaymentStatus) bool {
	m, ok := models.MetaFor(status)
	return ok && m.Terminal
}

// IsActionable reports whether a caller-visible next step exists.
func IsActionable(status models.PaymentStatus) bool {
	m, ok := models.MetaFor(status)
	return ok && m.Actionable
}

// CanCapture reports whether funds can be captured from status.
func CanCapture(status models.PaymentStatus) bool {
	switch status {
	case models.StatusRequiresCapture, models.StatusPartiallyCapturedAndCapturable:
		return true
	}
	return false
}

// CanRefund reports whether captured funds can be refunded from status.
func CanRefund(status models.PaymentStatus) bool {
	switch status {
	case models.StatusSucceeded, models.StatusPartiallyCaptured, models.StatusPartiallyCapturedAndCapturable:
		return true
	}
	return false
}

// CanCancel reports whether the payment can still be cancelled, which is only
// possible before funds move.
func CanCancel(status models.PaymentStatus) bool {
	switch status {
	case models.StatusProcessing, models.StatusRequiresPaymentMethod, models.StatusRequiresConfirmation:
		return true
	}
	return false
}
