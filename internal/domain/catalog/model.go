package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default consultation lengths. Services created before DurationMinutes
// existed carry a zero value and fall back to the name-based rule below.
const (
	DefaultDurationMinutes  = 45
	FollowUpDurationMinutes = 30
)

// Service is a billable consultation type with a fixed price.
type Service struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EffectiveDuration returns the scheduling length of the service. An explicit
// DurationMinutes wins; otherwise follow-up consultations ("seguimiento" in
// the clinic's locale) get 30 minutes and everything else 45.
func (s *Service) EffectiveDuration() time.Duration {
	if s.DurationMinutes > 0 {
		return time.Duration(s.DurationMinutes) * time.Minute
	}
	name := strings.ToLower(s.Name)
	if strings.Contains(name, "seguimiento") || strings.Contains(name, "follow-up") {
		return FollowUpDurationMinutes * time.Minute
	}
	return DefaultDurationMinutes * time.Minute
}
