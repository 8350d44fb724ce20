package scheduling

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/raul0r/Gestor-Medico/internal/domain/catalog"
	"github.com/raul0r/Gestor-Medico/internal/domain/patient"
)

// Service is the scheduling engine: it derives appointment end times from the
// service catalog, keeps the appointment collection consistent, and produces
// the day agenda.
type Service struct {
	appointments Repository
	patients     patient.Repository
	catalog      catalog.ServiceRepository
	loc          *time.Location
}

func NewService(appointments Repository, patients patient.Repository, cat catalog.ServiceRepository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{appointments: appointments, patients: patients, catalog: cat, loc: loc}
}

// Location is the clinic time zone all calendar-day comparisons use.
func (s *Service) Location() *time.Location {
	return s.loc
}

// ComputeEnd derives the end of an appointment starting at start for the
// given catalog service.
func (s *Service) ComputeEnd(ctx context.Context, start time.Time, serviceID uuid.UUID) (time.Time, error) {
	svc, err := s.catalog.GetByID(ctx, serviceID)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(svc.EffectiveDuration()), nil
}

// ScheduleInput is a create-or-update command. A nil ID creates; a non-nil ID
// must match a stored appointment. End is always recomputed and never taken
// from the caller.
type ScheduleInput struct {
	ID        uuid.UUID
	PatientID uuid.UUID
	ServiceID uuid.UUID
	Start     time.Time
	Status    Status
}

// Schedule validates the input references, derives the end time and applies
// the command. The update path merges onto the stored record and preserves
// an existing payment; an unmatched update id is rejected, not treated as a
// create.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (*Appointment, error) {
	if in.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if in.ServiceID == uuid.Nil {
		return nil, fmt.Errorf("service_id is required")
	}
	if in.Start.IsZero() {
		return nil, fmt.Errorf("start is required")
	}
	if in.Status == "" {
		in.Status = StatusScheduled
	}
	if !validStatuses[in.Status] {
		return nil, fmt.Errorf("invalid appointment status: %s", in.Status)
	}

	if _, err := s.patients.GetByID(ctx, in.PatientID); err != nil {
		return nil, err
	}
	end, err := s.ComputeEnd(ctx, in.Start, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if in.ID != uuid.Nil {
		existing, err := s.appointments.GetByID(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		existing.PatientID = in.PatientID
		existing.ServiceID = in.ServiceID
		existing.Start = in.Start
		existing.End = end
		existing.Status = in.Status
		if err := s.appointments.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	a := &Appointment{
		ID:        uuid.New(),
		PatientID: in.PatientID,
		ServiceID: in.ServiceID,
		Start:     in.Start,
		End:       end,
		Status:    in.Status,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the appointment if present. Deleting an unknown id is not
// an error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.appointments.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// AgendaForDay returns the appointments whose start falls on the same
// calendar day as day in the clinic time zone, in collection order.
func (s *Service) AgendaForDay(ctx context.Context, day time.Time) ([]*Appointment, error) {
	all, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	agenda := make([]*Appointment, 0)
	for _, a := range all {
		if SameDay(a.Start, day, s.loc) {
			agenda = append(agenda, a)
		}
	}
	return agenda, nil
}

// AppointmentsForPatient returns a patient's history, newest first.
func (s *Service) AppointmentsForPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	appts, err := s.appointments.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].Start.After(appts[j].Start) })
	return appts, nil
}
