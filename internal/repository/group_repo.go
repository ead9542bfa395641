package repository

import (
	"context"
	"time"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

type groupModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Reference string    `gorm:"column:reference;uniqueIndex:idx_groups_reference"`
	Name      string    `gorm:"column:name"`
	ClientID  *int64    `gorm:"column:client_id"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
	Nights    int       `gorm:"column:nights"`
	Pax       int       `gorm:"column:pax"`

	RoomsSingle int `gorm:"column:rooms_single"`
	RoomsTwin   int `gorm:"column:rooms_twin"`
	RoomsDouble int `gorm:"column:rooms_double"`
	RoomsFamily int `gorm:"column:rooms_family"`

	OptDayMeeting  bool `gorm:"column:opt_day_meeting"`
	OptHalfDay     bool `gorm:"column:opt_half_day"`
	OptLunch       bool `gorm:"column:opt_lunch"`
	OptDinner      bool `gorm:"column:opt_dinner"`
	OptCoffeeBreak bool `gorm:"column:opt_coffee_break"`
	OptRoomHire    bool `gorm:"column:opt_room_hire"`
	OptCocktail    bool `gorm:"column:opt_cocktail"`

	Status string  `gorm:"column:status"`
	Notes  *string `gorm:"column:notes"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (groupModel) TableName() string { return "groups" }

type invoiceItemModel struct {
	ID          string  `gorm:"column:id;primaryKey"`
	GroupID     int64   `gorm:"column:group_id;index"`
	Position    int     `gorm:"column:position"`
	Description string  `gorm:"column:description"`
	Date        string  `gorm:"column:date"`
	Time        string  `gorm:"column:time"`
	EndTime     string  `gorm:"column:end_time"`
	Location    string  `gorm:"column:location"`
	Quantity    float64 `gorm:"column:quantity"`
	UnitPrice   float64 `gorm:"column:unit_price"`
	VATRate     float64 `gorm:"column:vat_rate"`
	Setup       string  `gorm:"column:setup"`
	RoomTypeRef string  `gorm:"column:room_type_ref"`
}

func (invoiceItemModel) TableName() string { return "invoice_items" }

type paymentRowModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	GroupID    int64     `gorm:"column:group_id;index"`
	Position   int       `gorm:"column:position"`
	Label      string    `gorm:"column:label"`
	Percentage float64   `gorm:"column:percentage"`
	DueDate    time.Time `gorm:"column:due_date"`
	Paid       bool      `gorm:"column:paid"`
}

func (paymentRowModel) TableName() string { return "payment_rows" }

func toDomainGroup(m groupModel, items []invoiceItemModel, rows []paymentRowModel) *domain.Group {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	g := &domain.Group{
		ID:        m.ID,
		Reference: m.Reference,
		Name:      m.Name,
		ClientID:  m.ClientID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Nights:    m.Nights,
		Pax:       m.Pax,
		Rooms: domain.RoomCounts{
			Single: m.RoomsSingle,
			Twin:   m.RoomsTwin,
			Double: m.RoomsDouble,
			Family: m.RoomsFamily,
		},
		Options: domain.GroupOptions{
			DayMeeting:  m.OptDayMeeting,
			HalfDay:     m.OptHalfDay,
			Lunch:       m.OptLunch,
			Dinner:      m.OptDinner,
			CoffeeBreak: m.OptCoffeeBreak,
			RoomHire:    m.OptRoomHire,
			Cocktail:    m.OptCocktail,
		},
		Status:    domain.GroupStatus(m.Status),
		Notes:     notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	g.InvoiceItems = make([]domain.InvoiceItem, 0, len(items))
	for _, it := range items {
		g.InvoiceItems = append(g.InvoiceItems, domain.InvoiceItem{
			ID:          it.ID,
			Description: it.Description,
			Date:        it.Date,
			Time:        it.Time,
			EndTime:     it.EndTime,
			Location:    it.Location,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			VATRate:     it.VATRate,
			Setup:       it.Setup,
			RoomTypeRef: domain.RoomType(it.RoomTypeRef),
		})
	}

	g.PaymentSchedule = make([]domain.PaymentRow, 0, len(rows))
	for _, r := range rows {
		g.PaymentSchedule = append(g.PaymentSchedule, domain.PaymentRow{
			ID:         r.ID,
			Label:      r.Label,
			Percentage: r.Percentage,
			DueDate:    r.DueDate,
			Paid:       r.Paid,
		})
	}

	return g
}

func toGroupModel(g *domain.Group) groupModel {
	var notes *string
	if g.Notes != "" {
		v := g.Notes
		notes = &v
	}

	return groupModel{
		ID:             g.ID,
		Reference:      g.Reference,
		Name:           g.Name,
		ClientID:       g.ClientID,
		StartDate:      g.StartDate,
		EndDate:        g.EndDate,
		Nights:         g.Nights,
		Pax:            g.Pax,
		RoomsSingle:    g.Rooms.Single,
		RoomsTwin:      g.Rooms.Twin,
		RoomsDouble:    g.Rooms.Double,
		RoomsFamily:    g.Rooms.Family,
		OptDayMeeting:  g.Options.DayMeeting,
		OptHalfDay:     g.Options.HalfDay,
		OptLunch:       g.Options.Lunch,
		OptDinner:      g.Options.Dinner,
		OptCoffeeBreak: g.Options.CoffeeBreak,
		OptRoomHire:    g.Options.RoomHire,
		OptCocktail:    g.Options.Cocktail,
		Status:         string(g.Status),
		Notes:          notes,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func toItemModels(g *domain.Group) []invoiceItemModel {
	out := make([]invoiceItemModel, 0, len(g.InvoiceItems))
	for i, it := range g.InvoiceItems {
		out = append(out, invoiceItemModel{
			ID:          it.ID,
			GroupID:     g.ID,
			Position:    i,
			Description: it.Description,
			Date:        it.Date,
			Time:        it.Time,
			EndTime:     it.EndTime,
			Location:    it.Location,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			VATRate:     it.VATRate,
			Setup:       it.Setup,
			RoomTypeRef: string(it.RoomTypeRef),
		})
	}
	return out
}

func toRowModels(g *domain.Group) []paymentRowModel {
	out := make([]paymentRowModel, 0, len(g.PaymentSchedule))
	for i, r := range g.PaymentSchedule {
		out = append(out, paymentRowModel{
			ID:         r.ID,
			GroupID:    g.ID,
			Position:   i,
			Label:      r.Label,
			Percentage: r.Percentage,
			DueDate:    r.DueDate,
			Paid:       r.Paid,
		})
	}
	return out
}

// Save upserts the group and replaces its owned invoice items and payment
// rows in one transaction. Last write wins at group granularity; there is no
// conflict token.
func (r *GroupRepository) Save(ctx context.Context, g *domain.Group) error {
	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toGroupModel(g)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		g.ID = m.ID

		if err := tx.Where("group_id = ?", g.ID).Delete(&invoiceItemModel{}).Error; err != nil {
			return err
		}
		if items := toItemModels(g); len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("group_id = ?", g.ID).Delete(&paymentRowModel{}).Error; err != nil {
			return err
		}
		if rows := toRowModels(g); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	var m groupModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}

	items, rows, err := r.children(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomainGroup(m, items, rows), nil
}

func (r *GroupRepository) List(ctx context.Context) ([]domain.Group, error) {
	var ms []groupModel
	if err := r.db.WithContext(ctx).Order("start_date, id").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Group, 0, len(ms))
	for _, m := range ms {
		items, rows, err := r.children(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDomainGroup(m, items, rows))
	}
	return out, nil
}

// ListSiblings returns every group except selfID, with invoice items loaded.
// The result is a snapshot for read-only conflict checking.
func (r *GroupRepository) ListSiblings(ctx context.Context, selfID int64) ([]domain.Group, error) {
	var ms []groupModel
	if err := r.db.WithContext(ctx).Where("id <> ?", selfID).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Group, 0, len(ms))
	for _, m := range ms {
		items, _, err := r.children(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDomainGroup(m, items, nil))
	}
	return out, nil
}

func (r *GroupRepository) children(ctx context.Context, groupID int64) ([]invoiceItemModel, []paymentRowModel, error) {
	var items []invoiceItemModel
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Order("position").Find(&items).Error; err != nil {
		return nil, nil, err
	}
	var rows []paymentRowModel
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Order("position").Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	return items, rows, nil
}
