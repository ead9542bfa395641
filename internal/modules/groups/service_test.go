package groups

import (
	"context"
	"testing"
	"time"

	"hotelops/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Mock repositories

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Save(ctx context.Context, g *domain.Group) error {
	args := m.Called(ctx, g)
	if g != nil && g.ID == 0 {
		g.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) List(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupRepository) ListSiblings(ctx context.Context, selfID int64) ([]domain.Group, error) {
	args := m.Called(ctx, selfID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id int64) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func storedGroup() *domain.Group {
	return &domain.Group{
		ID:        7,
		Reference: "GRP-2025-TESTREF",
		Name:      "Acme seminar",
		StartDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Status:    domain.GroupOption,
	}
}

func TestService_Create_Success(t *testing.T) {
	mockGroups := new(MockGroupRepository)
	mockGroups.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockGroups, new(MockCatalogRepository))

	g, err := service.Create(context.Background(), CreateGroupRequest{
		Name:      "Acme seminar",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(999), g.ID)
	assert.Equal(t, 2, g.Nights)
	assert.Equal(t, domain.GroupOption, g.Status)
	assert.NotEmpty(t, g.Reference)
}

func TestService_Create_InvalidDates(t *testing.T) {
	service := NewService(new(MockGroupRepository), new(MockCatalogRepository))

	_, err := service.Create(context.Background(), CreateGroupRequest{
		Name:      "Acme seminar",
		StartDate: "10/06/2025",
		EndDate:   "2025-06-12",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Save_MissingNameFailsWithoutPersisting(t *testing.T) {
	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(storedGroup(), nil)

	service := NewService(mockGroups, new(MockCatalogRepository))

	_, err := service.Save(context.Background(), 7, SaveGroupRequest{
		Name:      "   ",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockGroups.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Save_NotFound(t *testing.T) {
	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockGroups, new(MockCatalogRepository))

	_, err := service.Save(context.Background(), 42, SaveGroupRequest{
		Name:      "x",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Save_RecomputesPaxAndSyncsRoomLines(t *testing.T) {
	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(storedGroup(), nil)
	mockGroups.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockGroups, new(MockCatalogRepository))

	g, err := service.Save(context.Background(), 7, SaveGroupRequest{
		Name:      "Acme seminar",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
		Pax:       3, // ignored once rooms are allotted
		Rooms:     RoomsPayload{Single: 10, Twin: 5},
		InvoiceItems: []ItemPayload{
			{ID: "a", Description: "Chambre Single", Quantity: 1, UnitPrice: 140, VATRate: 10},
			{ID: "b", Description: "Chambre Twin", Quantity: 1, UnitPrice: 170, VATRate: 10},
			{ID: "c", Description: "Dîner de gala", Quantity: 20, UnitPrice: 75, VATRate: 10},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 20, g.Pax)
	assert.Equal(t, 10.0, g.InvoiceItems[0].Quantity)
	assert.Equal(t, 5.0, g.InvoiceItems[1].Quantity)
	assert.Equal(t, 20.0, g.InvoiceItems[2].Quantity)
}

func TestService_Save_UserPaxKeptWithoutRooms(t *testing.T) {
	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(storedGroup(), nil)
	mockGroups.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockGroups, new(MockCatalogRepository))

	g, err := service.Save(context.Background(), 7, SaveGroupRequest{
		Name:      "Acme seminar",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
		Pax:       35,
	})

	require.NoError(t, err)
	assert.Equal(t, 35, g.Pax)
}

func TestService_Save_AssignsIDsToNewItems(t *testing.T) {
	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(storedGroup(), nil)
	mockGroups.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockGroups, new(MockCatalogRepository))

	g, err := service.Save(context.Background(), 7, SaveGroupRequest{
		Name:         "Acme seminar",
		StartDate:    "2025-06-10",
		EndDate:      "2025-06-12",
		InvoiceItems: []ItemPayload{{Description: "Pause café"}},
	})

	require.NoError(t, err)
	require.Len(t, g.InvoiceItems, 1)
	assert.NotEmpty(t, g.InvoiceItems[0].ID)
}

func TestService_Save_DuplicateReferenceMapped(t *testing.T) {
	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(storedGroup(), nil)
	mockGroups.On("Save", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_groups_reference",
	})

	service := NewService(mockGroups, new(MockCatalogRepository))

	_, err := service.Save(context.Background(), 7, SaveGroupRequest{
		Name:      "Acme seminar",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
	})

	assert.ErrorIs(t, err, ErrDuplicateReference)
}

func TestService_UpdateRoomCount(t *testing.T) {
	stored := storedGroup()
	stored.Rooms = domain.RoomCounts{Single: 2}
	stored.InvoiceItems = []domain.InvoiceItem{
		{ID: "a", Description: "Chambre Single", RoomTypeRef: domain.RoomSingle, Quantity: 2},
	}

	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	mockGroups.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockGroups, new(MockCatalogRepository))

	g, err := service.UpdateRoomCount(context.Background(), 7, "single", 8)

	require.NoError(t, err)
	assert.Equal(t, 8, g.Rooms.Single)
	assert.Equal(t, 8, g.Pax)
	assert.Equal(t, 8.0, g.InvoiceItems[0].Quantity)
}

func TestService_UpdateRoomCount_InvalidType(t *testing.T) {
	service := NewService(new(MockGroupRepository), new(MockCatalogRepository))

	_, err := service.UpdateRoomCount(context.Background(), 7, "suite", 1)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ApplyCatalog_PreservesQuantity(t *testing.T) {
	stored := storedGroup()
	stored.InvoiceItems = []domain.InvoiceItem{
		{ID: "line-1", Description: "placeholder", Quantity: 10, VATRate: 20},
	}

	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	mockGroups.On("Save", mock.Anything, mock.Anything).Return(nil)

	mockCatalog := new(MockCatalogRepository)
	mockCatalog.On("GetByID", mock.Anything, int64(3)).Return(&domain.CatalogEntry{
		ID:        3,
		Name:      "Chambre Single",
		UnitPrice: 140,
		VATRate:   10,
	}, nil)

	service := NewService(mockGroups, mockCatalog)

	g, err := service.ApplyCatalog(context.Background(), 7, "line-1", 3)

	require.NoError(t, err)
	assert.Equal(t, "line-1", g.InvoiceItems[0].ID)
	assert.Equal(t, 10.0, g.InvoiceItems[0].Quantity)
	assert.Equal(t, "Chambre Single", g.InvoiceItems[0].Description)
	assert.Equal(t, 140.0, g.InvoiceItems[0].UnitPrice)
	assert.Equal(t, 10.0, g.InvoiceItems[0].VATRate)
}

func TestService_ApplyCatalog_ItemNotFound(t *testing.T) {
	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(storedGroup(), nil)

	mockCatalog := new(MockCatalogRepository)
	mockCatalog.On("GetByID", mock.Anything, int64(3)).Return(&domain.CatalogEntry{ID: 3}, nil)

	service := NewService(mockGroups, mockCatalog)

	_, err := service.ApplyCatalog(context.Background(), 7, "missing", 3)

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_RemoveItem(t *testing.T) {
	stored := storedGroup()
	stored.InvoiceItems = []domain.InvoiceItem{{ID: "a"}, {ID: "b"}}

	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	mockGroups.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockGroups, new(MockCatalogRepository))

	g, err := service.RemoveItem(context.Background(), 7, "a")

	require.NoError(t, err)
	require.Len(t, g.InvoiceItems, 1)
	assert.Equal(t, "b", g.InvoiceItems[0].ID)
}

func TestService_CheckConflicts_ReportsSiblingWindow(t *testing.T) {
	stored := storedGroup()
	stored.InvoiceItems = []domain.InvoiceItem{
		{ID: "mine", Date: "2025-06-10", Location: "Salon Vendôme", Time: "09:00", EndTime: "11:00"},
	}

	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	mockGroups.On("ListSiblings", mock.Anything, int64(7)).Return([]domain.Group{
		{
			ID:   8,
			Name: "Nordwind kickoff",
			InvoiceItems: []domain.InvoiceItem{
				{Date: "2025-06-10", Location: "Salon Vendôme", Time: "10:30", EndTime: "12:00"},
			},
		},
	}, nil)

	service := NewService(mockGroups, new(MockCatalogRepository))

	conflicts, err := service.CheckConflicts(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "Nordwind kickoff", conflicts[0].GroupName)
	assert.Equal(t, "10:30-12:00", conflicts[0].Window())
	assert.Equal(t, "mine", conflicts[0].ItemID)
}

func TestService_GenerateSchedule(t *testing.T) {
	mockGroups := new(MockGroupRepository)
	mockGroups.On("GetByID", mock.Anything, int64(7)).Return(storedGroup(), nil)
	mockGroups.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockGroups, new(MockCatalogRepository))

	g, err := service.GenerateSchedule(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, g.PaymentSchedule, 3)
	assert.Equal(t, 30.0, g.PaymentSchedule[0].Percentage)
	assert.Equal(t, 50.0, g.PaymentSchedule[1].Percentage)
	assert.Equal(t, 20.0, g.PaymentSchedule[2].Percentage)
	assert.Equal(t, g.StartDate.AddDate(0, 0, -30), g.PaymentSchedule[1].DueDate)
	assert.Equal(t, g.StartDate.AddDate(0, 0, -14), g.PaymentSchedule[2].DueDate)
}
