package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type catalogEntryModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name"`
	Description string  `gorm:"column:description"`
	UnitPrice   float64 `gorm:"column:unit_price"`
	VATRate     float64 `gorm:"column:vat_rate"`
	Setup       string  `gorm:"column:setup"`
	Location    string  `gorm:"column:location"`
	Time        string  `gorm:"column:time"`
	EndTime     string  `gorm:"column:end_time"`
	VenueID     *int64  `gorm:"column:venue_id"`
}

func (catalogEntryModel) TableName() string { return "catalog_entries" }

func toDomainEntry(m catalogEntryModel) *domain.CatalogEntry {
	return &domain.CatalogEntry{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		VATRate:     m.VATRate,
		Setup:       m.Setup,
		Location:    m.Location,
		Time:        m.Time,
		EndTime:     m.EndTime,
		VenueID:     m.VenueID,
	}
}

func toEntryModel(e *domain.CatalogEntry) catalogEntryModel {
	return catalogEntryModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		UnitPrice:   e.UnitPrice,
		VATRate:     e.VATRate,
		Setup:       e.Setup,
		Location:    e.Location,
		Time:        e.Time,
		EndTime:     e.EndTime,
		VenueID:     e.VenueID,
	}
}

func (r *CatalogRepository) Create(ctx context.Context, e *domain.CatalogEntry) error {
	m := toEntryModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	e.ID = m.ID
	return nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id int64) (*domain.CatalogEntry, error) {
	var m catalogEntryModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainEntry(m), nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]domain.CatalogEntry, error) {
	var ms []catalogEntryModel
	if err := r.db.WithContext(ctx).Order("name").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.CatalogEntry, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainEntry(m))
	}
	return out, nil
}
