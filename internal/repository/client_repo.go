package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	CompanyName string `gorm:"column:company_name"`
	ContactName string `gorm:"column:contact_name"`
	Email       string `gorm:"column:email"`
	Phone       string `gorm:"column:phone"`
	Address     string `gorm:"column:address"`
	PostalCode  string `gorm:"column:postal_code"`
	City        string `gorm:"column:city"`
	VATNumber   string `gorm:"column:vat_number"`
}

func (clientModel) TableName() string { return "clients" }

func toDomainClient(m clientModel) *domain.Client {
	return &domain.Client{
		ID:          m.ID,
		CompanyName: m.CompanyName,
		ContactName: m.ContactName,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		PostalCode:  m.PostalCode,
		City:        m.City,
		VATNumber:   m.VATNumber,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := clientModel{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		PostalCode:  c.PostalCode,
		City:        c.City,
		VATNumber:   c.VATNumber,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var m clientModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var ms []clientModel
	if err := r.db.WithContext(ctx).Order("company_name").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Client, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainClient(m))
	}
	return out, nil
}
