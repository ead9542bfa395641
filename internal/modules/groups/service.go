package groups

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelops/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Service is the booking editor: it loads one group, applies edits with
// immediate recomputation of the derived values, and persists the whole
// group as one unit.
type Service struct {
	groups  GroupRepository
	catalog CatalogRepository
}

func NewService(groups GroupRepository, catalog CatalogRepository) *Service {
	return &Service{groups: groups, catalog: catalog}
}

func (s *Service) Create(ctx context.Context, req CreateGroupRequest) (*domain.Group, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}

	g := &domain.Group{
		Reference: newReference(),
		Name:      name,
		ClientID:  req.ClientID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.GroupOption,
	}
	g.Nights = g.ComputeNights()

	if err := s.groups.Save(ctx, g); err != nil {
		return nil, mapSaveErr(err)
	}
	return g, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Group, error) {
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Group, error) {
	return s.groups.List(ctx)
}

// Save replaces the stored group with the edited copy. Missing name or
// dates fail validation and nothing is persisted; the caller keeps its
// in-memory edit and can retry. Pax, nights and room-line quantities are
// recomputed here so the stored document is always internally consistent.
func (s *Service) Save(ctx context.Context, id int64, req SaveGroupRequest) (*domain.Group, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}

	g.Name = name
	g.ClientID = req.ClientID
	g.StartDate = start
	g.EndDate = end
	g.Nights = g.ComputeNights()
	g.Options = req.Options
	g.Notes = req.Notes

	if req.Status != "" {
		status, err := domain.ParseGroupStatus(req.Status)
		if err != nil {
			return nil, ErrValidation
		}
		g.Status = status
	}

	g.Rooms = toRoomCounts(req.Rooms)
	g.InvoiceItems = toItems(req.InvoiceItems)
	g.PaymentSchedule = toRows(req.PaymentSchedule)

	// Room-derived pax is authoritative as soon as any room is allotted.
	if g.Rooms.Total() > 0 {
		g.Pax = ComputePax(g.Rooms)
	} else {
		g.Pax = clampInt(int(req.Pax))
	}
	SyncRoomLines(g.InvoiceItems, g.Rooms)

	if err := s.groups.Save(ctx, g); err != nil {
		return nil, mapSaveErr(err)
	}
	return g, nil
}

// UpdateRoomCount is the single-field allotment edit: set one room-type
// count, re-derive pax and re-sync the room-bound lines.
func (s *Service) UpdateRoomCount(ctx context.Context, id int64, roomType string, count int) (*domain.Group, error) {
	t, err := domain.ParseRoomType(roomType)
	if err != nil || count < 0 {
		return nil, ErrValidation
	}

	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch t {
	case domain.RoomSingle:
		g.Rooms.Single = count
	case domain.RoomTwin:
		g.Rooms.Twin = count
	case domain.RoomDouble:
		g.Rooms.Double = count
	case domain.RoomFamily:
		g.Rooms.Family = count
	}

	g.Pax = ComputePax(g.Rooms)
	SyncRoomLines(g.InvoiceItems, g.Rooms)

	if err := s.groups.Save(ctx, g); err != nil {
		return nil, mapSaveErr(err)
	}
	return g, nil
}

// AddItem appends a blank line with editor defaults and persists.
func (s *Service) AddItem(ctx context.Context, id int64) (*domain.Group, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	g.InvoiceItems = append(g.InvoiceItems, NewItem())

	if err := s.groups.Save(ctx, g); err != nil {
		return nil, mapSaveErr(err)
	}
	return g, nil
}

func (s *Service) RemoveItem(ctx context.Context, id int64, itemID string) (*domain.Group, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := g.InvoiceItems[:0]
	found := false
	for _, it := range g.InvoiceItems {
		if it.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return nil, ErrItemNotFound
	}
	g.InvoiceItems = kept

	if err := s.groups.Save(ctx, g); err != nil {
		return nil, mapSaveErr(err)
	}
	return g, nil
}

// ApplyCatalog overwrites a line from a catalog entry, keeping the line's id
// and quantity, then persists.
func (s *Service) ApplyCatalog(ctx context.Context, id int64, itemID string, entryID int64) (*domain.Group, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, err := s.catalog.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	found := false
	for i := range g.InvoiceItems {
		if g.InvoiceItems[i].ID == itemID {
			ApplyCatalogEntry(&g.InvoiceItems[i], *entry)
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.groups.Save(ctx, g); err != nil {
		return nil, mapSaveErr(err)
	}
	return g, nil
}

// CheckConflicts runs every checkable line against a read-only snapshot of
// the sibling groups. Advisory only: another session may save a clashing
// booking between this check and our save, so no exclusivity is claimed.
func (s *Service) CheckConflicts(ctx context.Context, id int64) ([]Conflict, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	siblings, err := s.groups.ListSiblings(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	out := make([]Conflict, 0)
	for _, it := range g.InvoiceItems {
		if c := CheckConflict(it, siblings, g.ID); c != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

// GenerateSchedule replaces the payment schedule with the default 30/50/20
// split against the group's start date.
func (s *Service) GenerateSchedule(ctx context.Context, id int64) (*domain.Group, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	g.PaymentSchedule = DefaultSchedule(time.Now(), g.StartDate)

	if err := s.groups.Save(ctx, g); err != nil {
		return nil, mapSaveErr(err)
	}
	return g, nil
}

func toRoomCounts(p RoomsPayload) domain.RoomCounts {
	return domain.RoomCounts{
		Single: clampInt(int(p.Single)),
		Twin:   clampInt(int(p.Twin)),
		Double: clampInt(int(p.Double)),
		Family: clampInt(int(p.Family)),
	}
}

func toItems(payloads []ItemPayload) []domain.InvoiceItem {
	out := make([]domain.InvoiceItem, 0, len(payloads))
	for _, p := range payloads {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		var ref domain.RoomType
		if p.RoomTypeRef != "" {
			if t, err := domain.ParseRoomType(p.RoomTypeRef); err == nil {
				ref = t
			}
		}
		out = append(out, domain.InvoiceItem{
			ID:          id,
			Description: p.Description,
			Date:        p.Date,
			Time:        p.Time,
			EndTime:     p.EndTime,
			Location:    p.Location,
			Quantity:    clampFloat(float64(p.Quantity)),
			UnitPrice:   float64(p.UnitPrice),
			VATRate:     float64(p.VATRate),
			Setup:       p.Setup,
			RoomTypeRef: ref,
		})
	}
	return out
}

func toRows(payloads []PaymentRowPayload) []domain.PaymentRow {
	out := make([]domain.PaymentRow, 0, len(payloads))
	for _, p := range payloads {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		var due time.Time
		if p.DueDate != "" {
			if d, err := time.Parse(dateLayout, p.DueDate); err == nil {
				due = d
			}
		}
		out = append(out, domain.PaymentRow{
			ID:         id,
			Label:      p.Label,
			Percentage: float64(p.Percentage),
			DueDate:    due,
			Paid:       p.Paid,
		})
	}
	return out
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func newReference() string {
	return fmt.Sprintf("GRP-%d-%s", time.Now().Year(), strings.ToUpper(uuid.NewString()[:8]))
}

func mapSaveErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_groups_reference" {
		return ErrDuplicateReference
	}
	return err
}
