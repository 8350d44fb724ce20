package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemServiceRepo is an in-memory ServiceRepository. The catalog is volatile
// session state; insertion order is preserved for listing.
type MemServiceRepo struct {
	mu       sync.RWMutex
	services map[uuid.UUID]*Service
	order    []uuid.UUID
}

func NewMemServiceRepo() *MemServiceRepo {
	return &MemServiceRepo{services: make(map[uuid.UUID]*Service)}
}

func (r *MemServiceRepo) Create(_ context.Context, s *Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if _, exists := r.services[s.ID]; exists {
		return fmt.Errorf("service %s already exists", s.ID)
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	stored := *s
	r.services[s.ID] = &stored
	r.order = append(r.order, s.ID)
	return nil
}

func (r *MemServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
	}
	out := *s
	return &out, nil
}

func (r *MemServiceRepo) Update(_ context.Context, s *Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[s.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrServiceNotFound, s.ID)
	}
	s.UpdatedAt = time.Now()
	stored := *s
	r.services[s.ID] = &stored
	return nil
}

func (r *MemServiceRepo) List(_ context.Context, limit, offset int) ([]*Service, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.order)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}

	result := make([]*Service, 0, end-offset)
	for _, id := range r.order[offset:end] {
		out := *r.services[id]
		result = append(result, &out)
	}
	return result, total, nil
}
