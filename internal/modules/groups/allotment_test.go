package groups

import (
	"testing"

	"hotelops/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestComputePax(t *testing.T) {
	cases := []struct {
		name  string
		rooms domain.RoomCounts
		want  int
	}{
		{"empty", domain.RoomCounts{}, 0},
		{"singles only", domain.RoomCounts{Single: 3}, 3},
		{"mixed", domain.RoomCounts{Single: 10, Twin: 5}, 20},
		{"all types", domain.RoomCounts{Single: 1, Twin: 2, Double: 3, Family: 4}, 27},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputePax(tc.rooms))
		})
	}
}

func TestSyncRoomLines_ByDescription(t *testing.T) {
	items := []domain.InvoiceItem{
		{ID: "a", Description: "Chambre Single", Quantity: 1},
		{ID: "b", Description: "Chambre Twin", Quantity: 1},
		{ID: "c", Description: "Dîner de gala", Quantity: 20},
	}

	updated := SyncRoomLines(items, domain.RoomCounts{Single: 10, Twin: 5})

	assert.Equal(t, 2, updated)
	assert.Equal(t, 10.0, items[0].Quantity)
	assert.Equal(t, 5.0, items[1].Quantity)
	// non-room line untouched
	assert.Equal(t, 20.0, items[2].Quantity)
}

func TestSyncRoomLines_TagWinsOverDescription(t *testing.T) {
	// The tag pins the line to a type even when the description says otherwise.
	items := []domain.InvoiceItem{
		{ID: "a", Description: "Chambre Twin", RoomTypeRef: domain.RoomFamily, Quantity: 1},
	}

	SyncRoomLines(items, domain.RoomCounts{Twin: 5, Family: 2})

	assert.Equal(t, 2.0, items[0].Quantity)
}

func TestSyncRoomLines_DetachByRenaming(t *testing.T) {
	items := []domain.InvoiceItem{
		{ID: "a", Description: "Forfait séjour single", Quantity: 7},
	}

	updated := SyncRoomLines(items, domain.RoomCounts{Single: 10})

	// no room keyword left in the description, so the line is detached
	assert.Equal(t, 0, updated)
	assert.Equal(t, 7.0, items[0].Quantity)
}

func TestSyncRoomLines_HeuristicVariants(t *testing.T) {
	items := []domain.InvoiceItem{
		{ID: "a", Description: "Hébergement double", Quantity: 1},
		{ID: "b", Description: "Nuitée famille", Quantity: 1},
		{ID: "c", Description: "CHAMBRE SINGLE", Quantity: 1},
	}

	SyncRoomLines(items, domain.RoomCounts{Single: 4, Double: 6, Family: 3})

	assert.Equal(t, 6.0, items[0].Quantity)
	assert.Equal(t, 3.0, items[1].Quantity)
	assert.Equal(t, 4.0, items[2].Quantity)
}

func TestSyncRoomLines_ZeroCountClearsQuantity(t *testing.T) {
	items := []domain.InvoiceItem{
		{ID: "a", RoomTypeRef: domain.RoomTwin, Quantity: 5},
	}

	SyncRoomLines(items, domain.RoomCounts{})

	assert.Equal(t, 0.0, items[0].Quantity)
}
