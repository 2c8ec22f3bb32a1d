package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrForbidden is returned when a caller touches a view they do not own.
var ErrForbidden = errors.New("view belongs to another user")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, v *View) error {
	if v.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !validEntities[v.Entity] {
		return fmt.Errorf("invalid entity: %s", v.Entity)
	}
	if v.OwnerID == "" {
		return fmt.Errorf("owner_id is required")
	}
	return s.repo.Create(ctx, v)
}

// Get returns a view the caller may read: their own or a shared one.
func (s *Service) Get(ctx context.Context, id uuid.UUID, callerID string) (*View, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != callerID && !v.Shared {
		return nil, ErrForbidden
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, v *View, callerID string) error {
	if v.Name == "" {
		return fmt.Errorf("name is required")
	}
	current, err := s.repo.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}
	if current.OwnerID != callerID {
		return ErrForbidden
	}
	// Entity and owner are fixed at creation.
	v.Entity = current.Entity
	v.OwnerID = current.OwnerID
	return s.repo.Update(ctx, v)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, callerID string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerID != callerID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, callerID, entity string, limit, offset int) ([]*View, int, error) {
	if entity != "" && !validEntities[entity] {
		return nil, 0, fmt.Errorf("invalid entity: %s", entity)
	}
	return s.repo.ListForOwner(ctx, callerID, entity, limit, offset)
}
