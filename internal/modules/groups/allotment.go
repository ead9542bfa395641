package groups

import (
	"strings"

	"hotelops/internal/domain"
)

// Standard occupancy per room type. Not configurable.
var occupancy = map[domain.RoomType]int{
	domain.RoomSingle: 1,
	domain.RoomTwin:   2,
	domain.RoomDouble: 2,
	domain.RoomFamily: 4,
}

// ComputePax derives the guest headcount from the room mix.
func ComputePax(rooms domain.RoomCounts) int {
	return rooms.Single*occupancy[domain.RoomSingle] +
		rooms.Twin*occupancy[domain.RoomTwin] +
		rooms.Double*occupancy[domain.RoomDouble] +
		rooms.Family*occupancy[domain.RoomFamily]
}

func countFor(rooms domain.RoomCounts, t domain.RoomType) int {
	switch t {
	case domain.RoomSingle:
		return rooms.Single
	case domain.RoomTwin:
		return rooms.Twin
	case domain.RoomDouble:
		return rooms.Double
	case domain.RoomFamily:
		return rooms.Family
	}
	return 0
}

// SyncRoomLines overwrites the quantity of every room-bound invoice line
// with the current count of its room type. Lines created by the calculator
// carry an explicit RoomTypeRef; for lines without one a description
// heuristic decides, so an operator can detach a line by renaming it.
// Returns the number of lines updated.
func SyncRoomLines(items []domain.InvoiceItem, rooms domain.RoomCounts) int {
	updated := 0
	for i := range items {
		t, ok := roomTypeForLine(items[i])
		if !ok {
			continue
		}
		items[i].Quantity = float64(countFor(rooms, t))
		updated++
	}
	return updated
}

var roomDescWords = []string{"chambre", "hébergement", "nuit"}

func roomTypeForLine(it domain.InvoiceItem) (domain.RoomType, bool) {
	if it.RoomTypeRef != "" {
		if _, ok := occupancy[it.RoomTypeRef]; ok {
			return it.RoomTypeRef, true
		}
		return "", false
	}

	desc := strings.ToLower(it.Description)

	isRoomLine := false
	for _, w := range roomDescWords {
		if strings.Contains(desc, w) {
			isRoomLine = true
			break
		}
	}
	if !isRoomLine {
		return "", false
	}

	switch {
	case strings.Contains(desc, "single"):
		return domain.RoomSingle, true
	case strings.Contains(desc, "twin"):
		return domain.RoomTwin, true
	case strings.Contains(desc, "double"):
		return domain.RoomDouble, true
	case strings.Contains(desc, "famille"), strings.Contains(desc, "family"):
		return domain.RoomFamily, true
	}
	return "", false
}
