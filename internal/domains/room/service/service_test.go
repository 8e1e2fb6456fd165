package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	guestMocks "innkeep/internal/domains/guest/mocks"
	guestModel "innkeep/internal/domains/guest/model"
	roomMocks "innkeep/internal/domains/room/mocks"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	cacheMocks "innkeep/shared/cache/mocks"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

func newRoomFixture() model.Room {
	return model.Room{
		ID:     7,
		Number: "101",
		Floor:  1,
		Type:   "double",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func newStayFixture(checkIn, checkOut time.Time) guestModel.Guest {
	return guestModel.Guest{
		ID:           1,
		FirstName:    "Amelia",
		LastName:     "Hartono",
		DateOfBirth:  time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
		Address:      "12 Harbour Street",
		Nationality:  "Indonesian",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		RoomID:       7,
		RoomNumber:   "101",
	}
}

type roomServiceMocks struct {
	repo      *roomMocks.MockRoom
	guestRepo *guestMocks.MockGuest
	cache     *cacheMocks.MockRedisCache
}

func newRoomService(t *testing.T) (service.Room, roomServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := roomServiceMocks{
		repo:      roomMocks.NewMockRoom(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(m.repo, m.guestRepo, cfg, m.cache, mocks.NewOtel()), m
}

func TestRoomService_Create(t *testing.T) {
	svc, m := newRoomService(t)

	req := dto.CreateRoomRequest{
		Number: "101",
		Floor:  1,
		Type:   "double",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func() {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(7), nil)

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newRoomFixture(), nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate room number",
			setupMock: func() {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), fmt.Errorf("failed to insert data (room): %w", &pq.Error{Code: "23505"}))
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			setupMock: func() {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.Is(err, tt.wantCode))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), res.ID)
				assert.False(t, res.IsOccupied)
				assert.Equal(t, 0, res.GuestCount)
			}
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	svc, m := newRoomService(t)

	t.Run("successful get all with occupancy", func(t *testing.T) {
		today := timezone.Today()

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{newRoomFixture()}, nil)

		m.guestRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]guestModel.Guest{newStayFixture(today.AddDate(0, 0, -1), today.AddDate(0, 0, 2))}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.True(t, res.Rooms[0].IsOccupied)
		assert.Equal(t, 1, res.Rooms[0].GuestCount)
		assert.Len(t, res.Rooms[0].CurrentGuests, 1)
	})

	t.Run("past stay does not occupy the room", func(t *testing.T) {
		today := timezone.Today()

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{newRoomFixture()}, nil)

		m.guestRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]guestModel.Guest{newStayFixture(today.AddDate(0, 0, -10), today.AddDate(0, 0, -5))}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.False(t, res.Rooms[0].IsOccupied)
		assert.Equal(t, 1, res.Rooms[0].GuestCount)
		assert.Empty(t, res.Rooms[0].CurrentGuests)
	})

	t.Run("repository error", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestRoomService_GetAvailable(t *testing.T) {
	svc, m := newRoomService(t)

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("successful get available rooms", func(t *testing.T) {
		m.repo.EXPECT().
			GetAvailable(gomock.Any(), gomock.Any(), start, end).
			Return([]model.Room{newRoomFixture()}, nil)

		m.guestRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := svc.GetAvailable(context.Background(), gDto.QueryParams{}, start, end)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("end date precedes start date", func(t *testing.T) {
		_, err := svc.GetAvailable(context.Background(), gDto.QueryParams{}, end, start)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})

	t.Run("repository error", func(t *testing.T) {
		m.repo.EXPECT().
			GetAvailable(gomock.Any(), gomock.Any(), start, end).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAvailable(context.Background(), gDto.QueryParams{}, start, end)

		assert.Error(t, err)
	})
}

func TestRoomService_CheckAvailability(t *testing.T) {
	svc, m := newRoomService(t)

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("room is available", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			IsAvailable(gomock.Any(), int64(7), start, end).
			Return(true, nil)

		res, err := svc.CheckAvailability(context.Background(), 7, start, end)

		assert.NoError(t, err)
		assert.True(t, res.IsAvailable)
		assert.Equal(t, int64(7), res.RoomID)
		assert.Equal(t, "2026-09-10", res.StartDate)
		assert.Equal(t, "2026-09-15", res.EndDate)
	})

	t.Run("room is occupied in the range", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			IsAvailable(gomock.Any(), int64(7), start, end).
			Return(false, nil)

		res, err := svc.CheckAvailability(context.Background(), 7, start, end)

		assert.NoError(t, err)
		assert.False(t, res.IsAvailable)
	})

	t.Run("room not found", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.CheckAvailability(context.Background(), 99, start, end)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("end date precedes start date", func(t *testing.T) {
		_, err := svc.CheckAvailability(context.Background(), 7, end, start)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})
}

func TestRoomService_Get(t *testing.T) {
	svc, m := newRoomService(t)

	t.Run("successful get with occupancy", func(t *testing.T) {
		today := timezone.Today()

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(newRoomFixture(), nil)

		m.guestRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]guestModel.Guest{newStayFixture(today, today.AddDate(0, 0, 3))}, nil)

		res, err := svc.Get(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.ID)
		assert.True(t, res.IsOccupied)
	})

	t.Run("room not found", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), 99)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("repository error", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, errors.New("database error"))

		_, err := svc.Get(context.Background(), 7)

		assert.Error(t, err)
	})
}

func TestRoomService_Update(t *testing.T) {
	svc, m := newRoomService(t)

	req := dto.UpdateRoomRequest{
		Number: "102",
		Floor:  1,
		Type:   "suite",
	}

	t.Run("successful update", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Update(context.Background(), req, 7)

		assert.NoError(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), req, 99)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("duplicate room number", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to update data (room): %w", &pq.Error{Code: "23505"}))

		err := svc.Update(context.Background(), req, 7)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})
}

func TestRoomService_Delete(t *testing.T) {
	svc, m := newRoomService(t)

	t.Run("successful delete", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.guestRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), 7)

		assert.NoError(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), 99)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("room has associated guests", func(t *testing.T) {
		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.guestRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Delete(context.Background(), 7)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "cannot delete room 7 because it has associated guests")
	})
}
