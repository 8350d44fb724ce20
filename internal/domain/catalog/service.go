package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Catalog struct {
	services ServiceRepository
}

func NewCatalog(services ServiceRepository) *Catalog {
	return &Catalog{services: services}
}

func (c *Catalog) CreateService(ctx context.Context, s *Service) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if s.DurationMinutes < 0 {
		return fmt.Errorf("duration_minutes must not be negative")
	}
	return c.services.Create(ctx, s)
}

func (c *Catalog) GetService(ctx context.Context, id uuid.UUID) (*Service, error) {
	return c.services.GetByID(ctx, id)
}

func (c *Catalog) ListServices(ctx context.Context, limit, offset int) ([]*Service, int, error) {
	return c.services.List(ctx, limit, offset)
}
