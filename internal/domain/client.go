package domain

// Client holds the "billed to" details referenced by a group. Read-only from
// the billing engine's perspective.
type Client struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name" validate:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	VATNumber   string `json:"vat_number,omitempty"`
}

// BusinessProfile is the seller identity printed on documents. Registration
// and banking fields only appear on invoices.
type BusinessProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	RegistrationNumber string `json:"registration_number,omitempty"`
	VATNumber          string `json:"vat_number,omitempty"`
	BankName           string `json:"bank_name,omitempty"`
	IBAN               string `json:"iban,omitempty"`
	BIC                string `json:"bic,omitempty"`
}
