package document

import (
	"context"
	"errors"
	"sort"

	"hotelops/internal/domain"
	"hotelops/internal/modules/groups"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("group not found")

type GroupReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
}

type ClientReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

type Service struct {
	groups   GroupReader
	clients  ClientReader
	business domain.BusinessProfile
}

func NewService(groupReader GroupReader, clientReader ClientReader, business domain.BusinessProfile) *Service {
	return &Service{groups: groupReader, clients: clientReader, business: business}
}

// RenderByID loads the group and its client record, then projects.
func (s *Service) RenderByID(ctx context.Context, groupID int64, kind Kind) (*Document, error) {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var client *domain.Client
	if g.ClientID != nil {
		client, err = s.clients.GetByID(ctx, *g.ClientID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return Render(kind, *g, s.business, client)
}

// Render projects a group snapshot into one of the three document kinds.
// It is a pure function of its inputs and never mutates the group: switching
// between renderings of the same snapshot is free of side effects.
func Render(kind Kind, g domain.Group, business domain.BusinessProfile, client *domain.Client) (*Document, error) {
	totals := groups.ComputeTotals(g.InvoiceItems)
	breakdown := groups.ComputeSchedule(g.PaymentSchedule, totals.Gross)

	doc := &Document{
		Kind:     kind,
		Business: businessView(business, kind),
		Client:   clientView(client),
		Group:    groupView(g),
	}

	switch kind {
	case KindQuote:
		doc.Lines = lineViews(g.InvoiceItems)
		doc.Totals = &totals
		doc.Installments = installmentViews(breakdown.Lines, false)

	case KindInvoice:
		doc.Lines = lineViews(g.InvoiceItems)
		doc.Totals = &totals
		doc.Installments = installmentViews(breakdown.Lines, true)
		doc.AmountPaid = breakdown.AmountPaid
		doc.NetDue = floorZero(breakdown.BalanceDue)

	case KindFunctionSheet:
		doc.Days = dayViews(g.InvoiceItems)
		rooms := g.Rooms
		doc.Rooms = &rooms
		doc.Notes = g.Notes

	default:
		return nil, ErrUnknownKind
	}

	return doc, nil
}

func businessView(b domain.BusinessProfile, kind Kind) BusinessView {
	v := BusinessView{
		Name:    b.Name,
		Address: b.Address,
		City:    b.City,
		Phone:   b.Phone,
		Email:   b.Email,
	}
	if kind == KindInvoice {
		v.RegistrationNumber = b.RegistrationNumber
		v.VATNumber = b.VATNumber
		v.BankName = b.BankName
		v.IBAN = b.IBAN
		v.BIC = b.BIC
	}
	return v
}

func clientView(c *domain.Client) *ClientView {
	if c == nil {
		return nil
	}
	return &ClientView{
		CompanyName: c.CompanyName,
		ContactName: c.ContactName,
		Address:     c.Address,
		PostalCode:  c.PostalCode,
		City:        c.City,
		VATNumber:   c.VATNumber,
	}
}

func groupView(g domain.Group) GroupView {
	return GroupView{
		Reference: g.Reference,
		Name:      g.Name,
		StartDate: g.StartDate.Format("2006-01-02"),
		EndDate:   g.EndDate.Format("2006-01-02"),
		Nights:    g.Nights,
		Pax:       g.Pax,
		Status:    string(g.Status),
	}
}

func lineViews(items []domain.InvoiceItem) []LineView {
	out := make([]LineView, 0, len(items))
	for _, it := range items {
		out = append(out, LineView{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			VATRate:     it.VATRate,
			Net:         groups.LineNet(it),
			Tax:         groups.LineTax(it),
		})
	}
	return out
}

func installmentViews(lines []groups.ScheduleLine, withPaid bool) []InstallmentView {
	out := make([]InstallmentView, 0, len(lines))
	for _, l := range lines {
		v := InstallmentView{
			Label:      l.Label,
			Percentage: l.Percentage,
			Amount:     l.Amount,
		}
		if !l.DueDate.IsZero() {
			v.DueDate = l.DueDate.Format("2006-01-02")
		}
		if withPaid {
			paid := l.Paid
			v.Paid = &paid
		}
		out = append(out, v)
	}
	return out
}

// dayViews groups the lines by date, days and entries both sorted ascending.
// The items slice is copied before sorting so the group snapshot stays
// untouched.
func dayViews(items []domain.InvoiceItem) []DayView {
	sorted := make([]domain.InvoiceItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Time < sorted[j].Time
	})

	out := make([]DayView, 0)
	for _, it := range sorted {
		entry := EntryView{
			Time:        it.Time,
			EndTime:     it.EndTime,
			Description: it.Description,
			Setup:       it.Setup,
			Location:    it.Location,
			Quantity:    it.Quantity,
		}
		if n := len(out); n > 0 && out[n-1].Date == it.Date {
			out[n-1].Entries = append(out[n-1].Entries, entry)
			continue
		}
		out = append(out, DayView{Date: it.Date, Entries: []EntryView{entry}})
	}
	return out
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
