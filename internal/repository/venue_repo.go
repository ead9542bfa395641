package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

type venueModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;uniqueIndex:idx_venues_name"`
	Capacity int    `gorm:"column:capacity"`
}

func (venueModel) TableName() string { return "venues" }

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	m := venueModel{ID: v.ID, Name: v.Name, Capacity: v.Capacity}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	v.ID = m.ID
	return nil
}

func (r *VenueRepository) GetByName(ctx context.Context, name string) (*domain.Venue, error) {
	var m venueModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, err
	}
	return &domain.Venue{ID: m.ID, Name: m.Name, Capacity: m.Capacity}, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	var ms []venueModel
	if err := r.db.WithContext(ctx).Order("name").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Venue, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Venue{ID: m.ID, Name: m.Name, Capacity: m.Capacity})
	}
	return out, nil
}
