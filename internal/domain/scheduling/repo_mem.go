package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemRepo is an in-memory appointment Repository. Insertion order is the only
// ordering guarantee; views sort or lay out as they see fit.
type MemRepo struct {
	mu           sync.RWMutex
	appointments map[uuid.UUID]*Appointment
	order        []uuid.UUID
}

func NewMemRepo() *MemRepo {
	return &MemRepo{appointments: make(map[uuid.UUID]*Appointment)}
}

func (r *MemRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if _, exists := r.appointments[a.ID]; exists {
		return fmt.Errorf("appointment %s already exists", a.ID)
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	r.appointments[a.ID] = cloneAppointment(a)
	r.order = append(r.order, a.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
	}
	return cloneAppointment(a), nil
}

func (r *MemRepo) Update(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[a.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAppointmentNotFound, a.ID)
	}
	a.CreatedAt = stored.CreatedAt
	a.UpdatedAt = time.Now()
	r.appointments[a.ID] = cloneAppointment(a)
	return nil
}

func (r *MemRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return nil
	}
	delete(r.appointments, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemRepo) List(_ context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Appointment, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, cloneAppointment(r.appointments[id]))
	}
	return result, nil
}

func (r *MemRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Appointment
	for _, id := range r.order {
		if r.appointments[id].PatientID == patientID {
			result = append(result, cloneAppointment(r.appointments[id]))
		}
	}
	return result, nil
}

func cloneAppointment(a *Appointment) *Appointment {
	out := *a
	if a.Payment != nil {
		p := *a.Payment
		out.Payment = &p
	}
	return &out
}
