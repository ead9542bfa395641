package document

import (
	"errors"

	"hotelops/internal/domain"
	"hotelops/internal/modules/groups"
)

type Kind string

const (
	KindQuote         Kind = "quote"
	KindInvoice       Kind = "invoice"
	KindFunctionSheet Kind = "function-sheet"
)

var ErrUnknownKind = errors.New("unknown document kind")

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindQuote, KindInvoice, KindFunctionSheet:
		return Kind(s), nil
	}
	return "", ErrUnknownKind
}

// BusinessView is the seller header. Registration and banking fields are
// only populated on invoices.
type BusinessView struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`

	RegistrationNumber string `json:"registration_number,omitempty"`
	VATNumber          string `json:"vat_number,omitempty"`
	BankName           string `json:"bank_name,omitempty"`
	IBAN               string `json:"iban,omitempty"`
	BIC                string `json:"bic,omitempty"`
}

type ClientView struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name,omitempty"`
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	City        string `json:"city,omitempty"`
	VATNumber   string `json:"vat_number,omitempty"`
}

type GroupView struct {
	Reference string `json:"reference"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Nights    int    `json:"nights"`
	Pax       int    `json:"pax"`
	Status    string `json:"status"`
}

type LineView struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	VATRate     float64 `json:"vat_rate"`
	Net         float64 `json:"net"`
	Tax         float64 `json:"tax"`
}

// InstallmentView is one schedule row as printed. Paid is nil on quotations,
// which only show the planned split.
type InstallmentView struct {
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
	DueDate    string  `json:"due_date,omitempty"`
	Amount     float64 `json:"amount"`
	Paid       *bool   `json:"paid,omitempty"`
}

// EntryView is one scheduled service on a function-sheet day.
type EntryView struct {
	Time        string  `json:"time,omitempty"`
	EndTime     string  `json:"end_time,omitempty"`
	Description string  `json:"description"`
	Setup       string  `json:"setup,omitempty"`
	Location    string  `json:"location,omitempty"`
	Quantity    float64 `json:"quantity"`
}

type DayView struct {
	Date    string      `json:"date"`
	Entries []EntryView `json:"entries"`
}

// Document is one rendering of a group. Which sections are populated depends
// on the kind; rendering never touches the underlying group.
type Document struct {
	Kind     Kind         `json:"kind"`
	Business BusinessView `json:"business"`
	Client   *ClientView  `json:"client,omitempty"`
	Group    GroupView    `json:"group"`

	Lines        []LineView        `json:"lines,omitempty"`
	Totals       *groups.Totals    `json:"totals,omitempty"`
	Installments []InstallmentView `json:"installments,omitempty"`
	AmountPaid   float64           `json:"amount_paid,omitempty"`
	NetDue       float64           `json:"net_due,omitempty"`

	Days  []DayView          `json:"days,omitempty"`
	Rooms *domain.RoomCounts `json:"rooms,omitempty"`
	Notes string             `json:"notes,omitempty"`
}
