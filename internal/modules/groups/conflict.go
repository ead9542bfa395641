package groups

import (
	"fmt"
	"time"

	"hotelops/internal/domain"
)

// An item with no end time is assumed to run for an hour.
const defaultDurationMinutes = 60

// Conflict reports the first sibling line found occupying the same venue at
// an overlapping time.
type Conflict struct {
	ItemID    string `json:"item_id"`
	GroupID   int64  `json:"group_id"`
	GroupName string `json:"group_name"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// Window renders the sibling's time window, e.g. "10:30-12:00".
func (c *Conflict) Window() string {
	return c.Start + "-" + c.End
}

// CheckConflict scans the sibling snapshot for a line in the same venue on
// the same calendar day whose time window overlaps item's. Windows are
// half-open, so touching endpoints do not conflict. Dates and locations are
// compared by exact string equality: differently spelled venue names are
// different resources, and callers are expected to normalize names before
// comparison. Items missing date, location or time (or with unparsable
// times) are never flagged.
func CheckConflict(item domain.InvoiceItem, siblings []domain.Group, selfID int64) *Conflict {
	if item.Date == "" || item.Location == "" || item.Time == "" {
		return nil
	}

	start, ok := minutesOfDay(item.Time)
	if !ok {
		return nil
	}
	end := endOrDefault(item.EndTime, start)

	for _, g := range siblings {
		if g.ID == selfID {
			continue
		}
		for _, other := range g.InvoiceItems {
			if other.Date != item.Date || other.Location != item.Location || other.Time == "" {
				continue
			}
			otherStart, ok := minutesOfDay(other.Time)
			if !ok {
				continue
			}
			otherEnd := endOrDefault(other.EndTime, otherStart)

			if start < otherEnd && end > otherStart {
				return &Conflict{
					ItemID:    item.ID,
					GroupID:   g.ID,
					GroupName: g.Name,
					Location:  other.Location,
					Date:      other.Date,
					Start:     other.Time,
					End:       formatMinutes(otherEnd),
				}
			}
		}
	}
	return nil
}

func minutesOfDay(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func endOrDefault(endTime string, start int) int {
	if endTime != "" {
		if end, ok := minutesOfDay(endTime); ok {
			return end
		}
	}
	return start + defaultDurationMinutes
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", (m/60)%24, m%60)
}
