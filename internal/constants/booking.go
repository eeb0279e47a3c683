package constants

// Meal plans as delivered by the hotel supplier API
const (
	MealPlanNone         = "no-meal"
	MealPlanBreakfast    = "breakfast"
	MealPlanHalfBoard    = "half-board"
	MealPlanFullBoard    = "full-board"
	MealPlanAllInclusive = "all-inclusive"
)

// Reservation statuses
const (
	ReservationStatusPending         = "pending"
	ReservationStatusAwaitingPayment = "awaiting_payment"
	ReservationStatusConfirmed       = "confirmed"
	ReservationStatusCancelled       = "cancelled"
	ReservationStatusRejected        = "rejected"
)

// How a held selection was re-matched after a rate refresh
const (
	MatchKindExact    = "exact"
	MatchKindRoomName = "room_name"
)

// Invoice statuses
const (
	InvoiceStatusUnpaid = "unpaid"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoid   = "void"
)

// Payment statuses reported back by the payment gateway webhook
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
)

// ReservationStatusLabels maps each reservation status to the presentation
// label used by the dashboards. Unknown statuses fall back to LabelUnknown
// rather than being looked up dynamically.
var ReservationStatusLabels = map[string]string{
	ReservationStatusPending:         "Pending review",
	ReservationStatusAwaitingPayment: "Awaiting payment",
	ReservationStatusConfirmed:       "Confirmed",
	ReservationStatusCancelled:       "Cancelled",
	ReservationStatusRejected:        "Rejected",
}

// LabelUnknown is the presentation fallback for statuses this build does not know.
const LabelUnknown = "Unknown"

// ReservationStatusLabel resolves a status to its presentation label.
func ReservationStatusLabel(status string) string {
	if label, ok := ReservationStatusLabels[status]; ok {
		return label
	}
	return LabelUnknown
}

// IsValidReservationStatus reports whether status is one of the known
// reservation statuses.
func IsValidReservationStatus(status string) bool {
	_, ok := ReservationStatusLabels[status]
	return ok
}

// IsValidMealPlan reports whether plan is one of the supplier meal plans.
func IsValidMealPlan(plan string) bool {
	switch plan {
	case MealPlanNone, MealPlanBreakfast, MealPlanHalfBoard, MealPlanFullBoard, MealPlanAllInclusive:
		return true
	default:
		return false
	}
}
