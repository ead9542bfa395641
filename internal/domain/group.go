package domain

import (
	"errors"
	"time"
)

type GroupStatus string

const (
	GroupOption    GroupStatus = "option"
	GroupConfirmed GroupStatus = "confirmed"
)

func ParseGroupStatus(s string) (GroupStatus, error) {
	switch GroupStatus(s) {
	case GroupOption, GroupConfirmed:
		return GroupStatus(s), nil
	}
	return "", errors.New("invalid group status")
}

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomTwin   RoomType = "twin"
	RoomDouble RoomType = "double"
	RoomFamily RoomType = "family"
)

func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomSingle, RoomTwin, RoomDouble, RoomFamily:
		return RoomType(s), nil
	}
	return "", errors.New("invalid room type")
}

// RoomCounts is the allotment: reserved rooms per type for one group.
type RoomCounts struct {
	Single int `json:"single"`
	Twin   int `json:"twin"`
	Double int `json:"double"`
	Family int `json:"family"`
}

func (r RoomCounts) Total() int {
	return r.Single + r.Twin + r.Double + r.Family
}

// GroupOptions are the boolean service flags on a booking.
type GroupOptions struct {
	DayMeeting  bool `json:"day_meeting"`
	HalfDay     bool `json:"half_day"`
	Lunch       bool `json:"lunch"`
	Dinner      bool `json:"dinner"`
	CoffeeBreak bool `json:"coffee_break"`
	RoomHire    bool `json:"room_hire"`
	Cocktail    bool `json:"cocktail"`
}

// InvoiceItem is one billable or schedulable line of a group.
//
// Date ("2006-01-02"), Time and EndTime ("15:04") are plain strings entered
// by the operator; the conflict detector compares dates by string equality
// and skips lines where date, location or time is missing or unparsable.
//
// RoomTypeRef is set when the line was created by the room allotment
// calculator; it pins the line to a room type regardless of its description.
type InvoiceItem struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Date        string   `json:"date,omitempty"`
	Time        string   `json:"time,omitempty"`
	EndTime     string   `json:"end_time,omitempty"`
	Location    string   `json:"location,omitempty"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	VATRate     float64  `json:"vat_rate"`
	Setup       string   `json:"setup,omitempty"`
	RoomTypeRef RoomType `json:"room_type_ref,omitempty"`
}

// PaymentRow is one installment of a group's payment schedule. The payable
// amount is never stored; it is re-derived from the current gross total.
type PaymentRow struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Percentage float64   `json:"percentage"`
	DueDate    time.Time `json:"due_date"`
	Paid       bool      `json:"paid"`
}

// Group is a single commercial booking: a seminar, event or multi-day stay.
// It exclusively owns its invoice items and payment schedule.
type Group struct {
	ID        int64        `json:"id"`
	Reference string       `json:"reference"`
	Name      string       `json:"name" validate:"required"`
	ClientID  *int64       `json:"client_id,omitempty"`
	StartDate time.Time    `json:"start_date" validate:"required"`
	EndDate   time.Time    `json:"end_date" validate:"required"`
	Nights    int          `json:"nights"`
	Pax       int          `json:"pax"`
	Rooms     RoomCounts   `json:"rooms"`
	Options   GroupOptions `json:"options"`

	InvoiceItems    []InvoiceItem `json:"invoice_items"`
	PaymentSchedule []PaymentRow  `json:"payment_schedule"`

	Status GroupStatus `json:"status"`
	Notes  string      `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeNights returns the whole-day difference between start and end,
// never negative.
func (g *Group) ComputeNights() int {
	if g.StartDate.IsZero() || g.EndDate.IsZero() {
		return 0
	}
	n := int(g.EndDate.Sub(g.StartDate).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
