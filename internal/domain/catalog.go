package domain

// Venue is a named physical space with a capacity. Venues are shared between
// groups and never owned by one; the engine only reads them.
type Venue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity"`
}

// CatalogEntry is a predefined service template that can populate an invoice
// line: name, default price, tax rate and optional operational defaults.
type CatalogEntry struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	VATRate     float64 `json:"vat_rate"`
	Setup       string  `json:"setup,omitempty"`
	Location    string  `json:"location,omitempty"`
	Time        string  `json:"time,omitempty"`
	EndTime     string  `json:"end_time,omitempty"`
	VenueID     *int64  `json:"venue_id,omitempty"`
}
