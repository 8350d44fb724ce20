package scheduling

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrAppointmentNotFound is returned when an appointment id does not resolve.
var ErrAppointmentNotFound = errors.New("appointment not found")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	// Delete is a silent no-op when the id is absent.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all appointments in insertion order.
	List(ctx context.Context) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)
}
