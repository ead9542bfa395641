package groups

import (
	"context"

	"hotelops/internal/domain"
)

// GroupRepository persists whole groups as one unit (last-write-wins).
type GroupRepository interface {
	Save(ctx context.Context, g *domain.Group) error
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	ListSiblings(ctx context.Context, selfID int64) ([]domain.Group, error)
}

// CatalogRepository is the read-only catalog lookup used by catalog apply.
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CatalogEntry, error)
}
