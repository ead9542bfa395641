package groups

import (
	"strconv"
	"strings"

	"hotelops/internal/domain"
)

// FlexNumber accepts JSON numbers and numeric strings. Unparsable input
// becomes zero instead of failing the request: a stray keystroke in a form
// field must never reject the whole save.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(v)
	return nil
}

type CreateGroupRequest struct {
	Name      string `json:"name" binding:"required" validate:"required"`
	StartDate string `json:"start_date" binding:"required" validate:"required"`
	EndDate   string `json:"end_date" binding:"required" validate:"required"`
	ClientID  *int64 `json:"client_id"`
}

type RoomsPayload struct {
	Single FlexNumber `json:"single"`
	Twin   FlexNumber `json:"twin"`
	Double FlexNumber `json:"double"`
	Family FlexNumber `json:"family"`
}

type ItemPayload struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	EndTime     string     `json:"end_time"`
	Location    string     `json:"location"`
	Quantity    FlexNumber `json:"quantity"`
	UnitPrice   FlexNumber `json:"unit_price"`
	VATRate     FlexNumber `json:"vat_rate"`
	Setup       string     `json:"setup"`
	RoomTypeRef string     `json:"room_type_ref"`
}

type PaymentRowPayload struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	Percentage FlexNumber `json:"percentage"`
	DueDate    string     `json:"due_date"`
	Paid       bool       `json:"paid"`
}

// SaveGroupRequest carries the whole edited group; the server recomputes
// nights, pax and room-line quantities before persisting.
type SaveGroupRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	ClientID  *int64 `json:"client_id"`

	Pax     FlexNumber          `json:"pax"`
	Rooms   RoomsPayload        `json:"rooms"`
	Options domain.GroupOptions `json:"options"`

	Status string `json:"status"`
	Notes  string `json:"notes"`

	InvoiceItems    []ItemPayload       `json:"invoice_items"`
	PaymentSchedule []PaymentRowPayload `json:"payment_schedule"`
}

type UpdateRoomCountRequest struct {
	Count FlexNumber `json:"count"`
}

// GroupEnvelope is what read endpoints return: the group plus the derived
// figures the editor shows, recomputed on every call.
type GroupEnvelope struct {
	Group    *domain.Group     `json:"group"`
	Totals   Totals            `json:"totals"`
	Schedule ScheduleBreakdown `json:"schedule"`
}

func envelope(g *domain.Group) GroupEnvelope {
	totals := ComputeTotals(g.InvoiceItems)
	return GroupEnvelope{
		Group:    g,
		Totals:   totals,
		Schedule: ComputeSchedule(g.PaymentSchedule, totals.Gross),
	}
}
