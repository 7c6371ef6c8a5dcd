package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"happyhouse/internal/domain"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Room, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) CountUnpaid(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) ListPaid(ctx context.Context, ownerID int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.RevenueBucket, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueBucket), args.Error(1)
}

func sampleRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, House: "House 1", Status: domain.RoomOccupied, Tenant: "Nguyen Van A"},
		{ID: 2, House: "House 1", Status: domain.RoomVacant, Tenant: domain.NoTenant},
		{ID: 3, House: "House 2", Status: domain.RoomVacant, Tenant: domain.NoTenant},
	}
}

func TestService_Stats(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockInvoices := new(MockInvoiceRepository)
	mockRevenue := new(MockRevenueRepository)

	mockRooms.On("ListByOwner", mock.Anything, int64(1)).Return(sampleRooms(), nil)
	mockInvoices.On("CountUnpaid", mock.Anything, int64(1)).Return(int64(4), nil)

	service := NewService(mockRooms, mockInvoices, mockRevenue)

	st, err := service.Stats(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, st.Houses)
	assert.Equal(t, 3, st.Rooms)
	assert.Equal(t, 1, st.OccupiedRooms)
	assert.Equal(t, int64(4), st.UnpaidCount)
}

func TestService_Stats_UnpaidProbeDegradesToZero(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockInvoices := new(MockInvoiceRepository)
	mockRevenue := new(MockRevenueRepository)

	mockRooms.On("ListByOwner", mock.Anything, int64(1)).Return(sampleRooms(), nil)
	mockInvoices.On("CountUnpaid", mock.Anything, int64(1)).Return(int64(0), errors.New("no such table: invoices"))

	service := NewService(mockRooms, mockInvoices, mockRevenue)

	st, err := service.Stats(context.Background(), 1)

	assert.NoError(t, err, "unpaid probe failure must not fail the stats call")
	assert.Equal(t, int64(0), st.UnpaidCount)
	assert.Equal(t, 3, st.Rooms)
}

func TestService_Revenue_ReplaysInvoiceLog(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockInvoices := new(MockInvoiceRepository)
	mockRevenue := new(MockRevenueRepository)

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	mockInvoices.On("ListPaid", mock.Anything, int64(1)).Return([]domain.Invoice{
		paid(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 300),
	}, nil)

	service := NewService(mockRooms, mockInvoices, mockRevenue)
	service.now = func() time.Time { return now }

	points, err := service.Revenue(context.Background(), 1, GranularityMonth)

	assert.NoError(t, err)
	assert.Equal(t, int64(300), points[5].Amount)
	mockRevenue.AssertNotCalled(t, "ListByOwner")
}

func TestService_MonthlyProjection_DegradesToEmpty(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockInvoices := new(MockInvoiceRepository)
	mockRevenue := new(MockRevenueRepository)

	mockRevenue.On("ListByOwner", mock.Anything, int64(1)).Return(nil, errors.New("no such table: revenue_buckets"))

	service := NewService(mockRooms, mockInvoices, mockRevenue)

	buckets, err := service.MonthlyProjection(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, buckets)
}
