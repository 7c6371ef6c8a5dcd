package rental

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"happyhouse/internal/domain"
)

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) CreateClaiming(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	if rental != nil {
		rental.ID = 55 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRentalRepository) ListForRoom(ctx context.Context, roomID, ownerID int64) ([]domain.Rental, error) {
	args := m.Called(ctx, roomID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id, ownerID int64) (*domain.Room, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListVacant(ctx context.Context, ownerID int64) ([]domain.Room, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func vacantRoom() *domain.Room {
	return &domain.Room{
		ID:      10,
		OwnerID: 1,
		Name:    "101",
		House:   "House 1",
		Status:  domain.RoomVacant,
		Tenant:  domain.NoTenant,
		Price:   200000,
	}
}

func intakeRequest() CreateRentalRequest {
	return CreateRentalRequest{
		FullName:  "Nguyen Van A",
		Phone:     "0901234567",
		RoomID:    10,
		StartDate: "2024-03-01T14:00",
		EndDate:   "2024-03-04T11:00",
		Deposit:   50000,
		Notes:     "pays cash",
	}
}

func TestService_CreateRental_Success(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10), int64(1)).Return(vacantRoom(), nil)
	mockRentals.On("CreateClaiming", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRentals, mockRooms)

	rental, err := service.CreateRental(context.Background(), 1, intakeRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(55), rental.ID)
	assert.Equal(t, "Nguyen Van A", rental.FullName)
	assert.Equal(t, int64(50000), rental.Deposit)
	assert.Equal(t, 14, rental.StartDate.Hour())
	mockRentals.AssertExpectations(t)
}

func TestService_CreateRental_BadDates(t *testing.T) {
	service := NewService(new(MockRentalRepository), new(MockRoomRepository))

	req := intakeRequest()
	req.StartDate = "whenever"
	_, err := service.CreateRental(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)

	req = intakeRequest()
	req.EndDate = req.StartDate // zero-length stay
	_, err = service.CreateRental(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateRental_RoomOccupied(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockRooms := new(MockRoomRepository)

	room := vacantRoom()
	room.Status = domain.RoomOccupied
	room.Tenant = "Tran Thi B"
	mockRooms.On("GetByID", mock.Anything, int64(10), int64(1)).Return(room, nil)

	service := NewService(mockRentals, mockRooms)

	_, err := service.CreateRental(context.Background(), 1, intakeRequest())
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	mockRentals.AssertNotCalled(t, "CreateClaiming")
}

func TestService_CreateRental_LosesClaimRace(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10), int64(1)).Return(vacantRoom(), nil)
	mockRentals.On("CreateClaiming", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	service := NewService(mockRentals, mockRooms)

	_, err := service.CreateRental(context.Background(), 1, intakeRequest())
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestService_CreateRental_RoomMissing(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetByID", mock.Anything, int64(10), int64(1)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRentals, mockRooms)

	_, err := service.CreateRental(context.Background(), 1, intakeRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_VacantRooms_OwnerScoped(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("ListVacant", mock.Anything, int64(1)).Return([]domain.Room{*vacantRoom()}, nil)

	service := NewService(mockRentals, mockRooms)

	list, err := service.VacantRooms(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	mockRooms.AssertCalled(t, "ListVacant", mock.Anything, int64(1))
}
