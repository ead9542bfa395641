package catalog

import (
	"context"

	"hotelops/internal/domain"
)

// The catalog module is the read-only lookup surface the booking editor
// pulls from: service templates, venues and client records. No write path
// back into this data originates from the billing engine.

type EntryRepository interface {
	List(ctx context.Context) ([]domain.CatalogEntry, error)
}

type VenueRepository interface {
	List(ctx context.Context) ([]domain.Venue, error)
}

type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
}

type Service struct {
	entries EntryRepository
	venues  VenueRepository
	clients ClientRepository
}

func NewService(entries EntryRepository, venues VenueRepository, clients ClientRepository) *Service {
	return &Service{entries: entries, venues: venues, clients: clients}
}

func (s *Service) ListEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	return s.entries.List(ctx)
}

func (s *Service) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.venues.List(ctx)
}

func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}
