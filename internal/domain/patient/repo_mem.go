package patient

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemRepo is an in-memory patient Repository guarded by a RWMutex. Records
// are stored by value; callers always receive copies, so a failed mutation
// can never leave a half-applied patient behind.
type MemRepo struct {
	mu       sync.RWMutex
	patients map[uuid.UUID]*Patient
	order    []uuid.UUID
}

func NewMemRepo() *MemRepo {
	return &MemRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (r *MemRepo) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if _, exists := r.patients[p.ID]; exists {
		return fmt.Errorf("patient %s already exists", p.ID)
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	r.patients[p.ID] = clonePatient(p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, id)
	}
	return clonePatient(p), nil
}

func (r *MemRepo) Update(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[p.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrPatientNotFound, p.ID)
	}
	p.UpdatedAt = time.Now()
	r.patients[p.ID] = clonePatient(p)
	return nil
}

func (r *MemRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.page(r.order, limit, offset)
}

func (r *MemRepo) Search(_ context.Context, term string, limit, offset int) ([]*Patient, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term = strings.ToLower(term)
	var matched []uuid.UUID
	for _, id := range r.order {
		if strings.Contains(strings.ToLower(r.patients[id].Name), term) {
			matched = append(matched, id)
		}
	}
	return r.page(matched, limit, offset)
}

func (r *MemRepo) AddNote(_ context.Context, patientID uuid.UUID, note ConsultationNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[patientID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPatientNotFound, patientID)
	}
	p.Notes = append([]ConsultationNote{note}, p.Notes...)
	p.UpdatedAt = time.Now()
	return nil
}

func (r *MemRepo) AddFile(_ context.Context, patientID uuid.UUID, file File) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[patientID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPatientNotFound, patientID)
	}
	p.Files = append([]File{file}, p.Files...)
	p.UpdatedAt = time.Now()
	return nil
}

// page must be called with the lock held.
func (r *MemRepo) page(ids []uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	total := len(ids)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}

	result := make([]*Patient, 0, end-offset)
	for _, id := range ids[offset:end] {
		result = append(result, clonePatient(r.patients[id]))
	}
	return result, total, nil
}

func clonePatient(p *Patient) *Patient {
	out := *p
	out.Notes = append([]ConsultationNote(nil), p.Notes...)
	out.Files = append([]File(nil), p.Files...)
	return &out
}
