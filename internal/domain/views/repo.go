package views

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no view matches the given id.
var ErrNotFound = errors.New("view not found")

type Repository interface {
	Create(ctx context.Context, v *View) error
	GetByID(ctx context.Context, id uuid.UUID) (*View, error)
	Update(ctx context.Context, v *View) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListForOwner returns the owner's views plus shared views, optionally
	// restricted to one entity, newest first.
	ListForOwner(ctx context.Context, ownerID, entity string, limit, offset int) ([]*View, int, error)
}
