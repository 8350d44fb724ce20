package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrServiceNotFound is returned when a service id does not resolve to a
// catalog entry.
var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	Update(ctx context.Context, s *Service) error
	List(ctx context.Context, limit, offset int) ([]*Service, int, error)
}
