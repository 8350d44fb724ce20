package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyContent is returned when a consultation note is blank after
// trimming. The UI guards this client-side; the core enforces it regardless.
var ErrEmptyContent = errors.New("note content is empty")

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Notes == nil {
		p.Notes = []ConsultationNote{}
	}
	if p.Files == nil {
		p.Files = []File{}
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

func (s *Service) SearchPatients(ctx context.Context, term string, limit, offset int) ([]*Patient, int, error) {
	if term == "" {
		return s.patients.List(ctx, limit, offset)
	}
	return s.patients.Search(ctx, term, limit, offset)
}

// AddNote prepends a consultation note to the patient record.
func (s *Service) AddNote(ctx context.Context, patientID uuid.UUID, content string) (*ConsultationNote, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	note := ConsultationNote{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Content:   content,
	}
	if err := s.patients.AddNote(ctx, patientID, note); err != nil {
		return nil, err
	}
	return &note, nil
}

// AddFile records the metadata of an uploaded document. The ref is whatever
// the storage collaborator handed back; the core only keeps it retrievable.
func (s *Service) AddFile(ctx context.Context, patientID uuid.UUID, name, ref string) (*File, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}
	file := File{
		ID:         uuid.New(),
		Name:       name,
		URL:        ref,
		UploadedAt: time.Now(),
	}
	if err := s.patients.AddFile(ctx, patientID, file); err != nil {
		return nil, err
	}
	return &file, nil
}
