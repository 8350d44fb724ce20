package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var validStatuses = map[Status]bool{
	StatusScheduled: true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// PaymentMethod is how an appointment was paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
)

var validPaymentMethods = map[PaymentMethod]bool{
	PaymentCash: true,
	PaymentCard: true,
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	return validPaymentMethods[m]
}

// Payment is attached to an appointment once it is collected. It is only
// replaced by a subsequent registration, never edited in place.
type Payment struct {
	Method PaymentMethod `json:"method"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
}

// Appointment links a patient and a catalog service to a time block. End is
// always derived from Start plus the service duration and is never accepted
// from callers.
type Appointment struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    Status    `json:"status"`
	Payment   *Payment  `json:"payment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Duration is the scheduled length of the appointment.
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// SlotLayout is a read-only rendering projection of an appointment: its
// vertical position and height on a day grid, measured in hours. The agenda
// view multiplies both by its row height (4rem per hour in the original UI).
type SlotLayout struct {
	HourOffset  float64 `json:"hour_offset"`
	HeightHours float64 `json:"height_hours"`
}

// Layout positions the appointment relative to dayStartHour in the given
// location. The scheduling engine knows nothing about rendering units.
func (a *Appointment) Layout(dayStartHour int, loc *time.Location) SlotLayout {
	start := a.Start.In(loc)
	return SlotLayout{
		HourOffset:  float64(start.Hour()-dayStartHour) + float64(start.Minute())/60,
		HeightHours: a.Duration().Hours(),
	}
}

// SameDay reports whether two instants fall on the same calendar day in the
// given location.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
