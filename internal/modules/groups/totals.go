package groups

import (
	"hotelops/internal/domain"

	"github.com/google/uuid"
)

// Totals are the aggregate money figures over a group's invoice lines:
// Net (HT), Tax (VAT) and Gross (TTC).
type Totals struct {
	Net   float64 `json:"net"`
	Tax   float64 `json:"tax"`
	Gross float64 `json:"gross"`
}

func LineNet(it domain.InvoiceItem) float64 {
	return it.Quantity * it.UnitPrice
}

func LineTax(it domain.InvoiceItem) float64 {
	return LineNet(it) * it.VATRate / 100
}

// ComputeTotals folds over the current line list. Nothing is cached or
// stored; every render recomputes, so totals can never drift from the lines.
func ComputeTotals(items []domain.InvoiceItem) Totals {
	var t Totals
	for _, it := range items {
		t.Net += LineNet(it)
		t.Tax += LineTax(it)
	}
	t.Gross = t.Net + t.Tax
	return t
}

// NewItem returns a blank line with the editor defaults.
func NewItem() domain.InvoiceItem {
	return domain.InvoiceItem{
		ID:       uuid.NewString(),
		Quantity: 1,
		VATRate:  20,
	}
}

// ApplyCatalogEntry overwrites the line's billing and operational fields from
// a catalog entry. The line keeps its id and its quantity (the allotment
// calculator may already have set one).
func ApplyCatalogEntry(it *domain.InvoiceItem, e domain.CatalogEntry) {
	it.Description = e.Name
	it.UnitPrice = e.UnitPrice
	it.VATRate = e.VATRate
	it.Setup = e.Setup
	it.Location = e.Location
	it.Time = e.Time
	it.EndTime = e.EndTime
}
