package patient

import (
	"time"

	"github.com/google/uuid"
)

// Demographics is the minimal demographic record the front desk keeps.
type Demographics struct {
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"`
}

// ConsultationNote is a free-text clinical note. Notes are append-only and
// kept newest-first on the patient record.
type ConsultationNote struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `json:"content"`
}

// File records the metadata of an uploaded document. The URL is an opaque
// reference issued by the storage collaborator; the core never inspects the
// contents behind it.
type File struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Patient is a clinic patient record. Patients are never deleted; notes and
// files only grow.
type Patient struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Phone        string             `json:"phone,omitempty"`
	Email        string             `json:"email,omitempty"`
	Demographics Demographics       `json:"demographics"`
	Notes        []ConsultationNote `json:"notes"`
	Files        []File             `json:"files"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
