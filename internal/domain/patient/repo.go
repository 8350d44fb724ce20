package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrPatientNotFound is returned when a patient id does not resolve.
var ErrPatientNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	// Search matches the term case-insensitively against patient names.
	Search(ctx context.Context, term string, limit, offset int) ([]*Patient, int, error)
	// AddNote and AddFile prepend atomically; the stored record is the source
	// of newest-first ordering.
	AddNote(ctx context.Context, patientID uuid.UUID, note ConsultationNote) error
	AddFile(ctx context.Context, patientID uuid.UUID, file File) error
}
