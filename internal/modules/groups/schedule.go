package groups

import (
	"time"

	"hotelops/internal/domain"

	"github.com/google/uuid"
)

// ScheduleLine is a payment row with its payable amount evaluated against
// the gross total passed in at render time.
type ScheduleLine struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Percentage float64   `json:"percentage"`
	DueDate    time.Time `json:"due_date"`
	Amount     float64   `json:"amount"`
	Paid       bool      `json:"paid"`
}

// ScheduleBreakdown is the evaluated schedule. BalanceDue is the raw
// difference and may go negative on a logical over-payment; renderers floor
// it for display.
type ScheduleBreakdown struct {
	Lines      []ScheduleLine `json:"lines"`
	AmountPaid float64        `json:"amount_paid"`
	BalanceDue float64        `json:"balance_due"`
}

// DefaultSchedule is the house standard: 30% due on booking, 50% thirty days
// before arrival, 20% fourteen days before arrival. Percentages are never
// forced to sum to 100; operators may keep partial schedules.
func DefaultSchedule(bookedAt, start time.Time) []domain.PaymentRow {
	return []domain.PaymentRow{
		{
			ID:         uuid.NewString(),
			Label:      "Deposit on booking",
			Percentage: 30,
			DueDate:    bookedAt,
		},
		{
			ID:         uuid.NewString(),
			Label:      "Interim payment",
			Percentage: 50,
			DueDate:    start.AddDate(0, 0, -30),
		},
		{
			ID:         uuid.NewString(),
			Label:      "Balance",
			Percentage: 20,
			DueDate:    start.AddDate(0, 0, -14),
		},
	}
}

// ComputeSchedule re-derives every row amount from the current gross total,
// so amounts never go stale when line items change after the schedule was
// generated.
func ComputeSchedule(rows []domain.PaymentRow, totalGross float64) ScheduleBreakdown {
	out := ScheduleBreakdown{Lines: make([]ScheduleLine, 0, len(rows))}
	for _, r := range rows {
		amount := totalGross * r.Percentage / 100
		out.Lines = append(out.Lines, ScheduleLine{
			ID:         r.ID,
			Label:      r.Label,
			Percentage: r.Percentage,
			DueDate:    r.DueDate,
			Amount:     amount,
			Paid:       r.Paid,
		})
		if r.Paid {
			out.AmountPaid += amount
		}
	}
	out.BalanceDue = totalGross - out.AmountPaid
	return out
}
