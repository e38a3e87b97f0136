package models

// PaymentStatus is the lifecycle status of a payment. The set is closed:
// statuses are only ever assigned through a validated transition.
type PaymentStatus string

const (
	StatusRequiresPaymentMethod          PaymentStatus = "requires_payment_method"
	StatusRequiresConfirmation           PaymentStatus = "requires_confirmation"
	StatusRequiresAction                 PaymentStatus = "requires_action"
	StatusProcessing                     PaymentStatus = "processing"
	StatusRequiresCapture                PaymentStatus = "requires_capture"
	StatusPartiallyCaptured              PaymentStatus = "partially_captured"
	StatusPartiallyCapturedAndCapturable PaymentStatus = "partially_captured_and_capturable"
	StatusSucceeded                      PaymentStatus = "succeeded"
	StatusFailed                         PaymentStatus = "failed"
	StatusCancelled                      PaymentStatus = "cancelled"
)

// StatusMeta is the canonical presentation and eligibility metadata for a
// payment status. Lifecycle predicates and any rendering layer read from the
// same table so labels and eligibility can never drift apart.
type StatusMeta struct {
	Label      string `json:"label"`
	Color      string `json:"color"`
	Terminal   bool   `json:"terminal"`
	Actionable bool   `json:"actionable"`
}

var statusMeta = map[PaymentStatus]StatusMeta{
	StatusRequiresPaymentMethod:          {Label: "Requires Payment Method", Color: "orange", Actionable: true},
	StatusRequiresConfirmation:           {Label: "Requires Confirmation", Color: "orange", Actionable: true},
	StatusRequiresAction:                 {Label: "Requires Action", Color: "orange", Actionable: true},
	StatusProcessing:                     {Label: "Processing", Color: "blue"},
	StatusRequiresCapture:                {Label: "Requires Capture", Color: "purple", Actionable: true},
	StatusPartiallyCaptured:              {Label: "Partially Captured", Color: "purple"},
	StatusPartiallyCapturedAndCapturable: {Label: "Partially Captured", Color: "purple", Actionable: true},
	StatusSucceeded:                      {Label: "Succeeded", Color: "green", Terminal: true},
	StatusFailed:                         {Label: "Failed", Color: "red", Terminal: true},
	StatusCancelled:                      {Label: "Cancelled", Color: "gray", Terminal: true},
}

// MetaFor returns the metadata for a status; ok is false for unknown values.
func MetaFor(s PaymentStatus) (StatusMeta, bool) {
	m, ok := statusMeta[s]
	return m, ok
}

// Valid reports whether s is one of the ten known statuses.
func (s PaymentStatus) Valid() bool {
	_, ok := statusMeta[s]
	return ok
}

// AllStatuses returns the full status set, in declaration order.
func AllStatuses() []PaymentStatus {
	return []PaymentStatus{
		StatusRequiresPaymentMethod,
		StatusRequiresConfirmation,
		StatusRequiresAction,
		StatusProcessing,
		StatusRequiresCapture,
		StatusPartiallyCaptured,
		StatusPartiallyCapturedAndCapturable,
		StatusSucceeded,
		StatusFailed,
		StatusCancelled,
	}
}
