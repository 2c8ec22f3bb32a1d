// Package views stores saved grid views: a named filter and sort
// configuration a user keeps for one of the queryable collections.
package views

import (
	"time"

	"github.com/google/uuid"

	"github.com/evalhub/evalhub/internal/platform/odata"
)

type View struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Entity  string    `json:"entity"`
	OwnerID string    `json:"owner_id"`
	Shared  bool      `json:"shared"`

	Filter odata.FilterModel `json:"filter"`
	Sort   []odata.SortItem  `json:"sort,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// validEntities are the collections a view may target.
var validEntities = map[string]bool{
	"tests":     true,
	"tasks":     true,
	"test-runs": true,
	"test-sets": true,
	"sources":   true,
}
