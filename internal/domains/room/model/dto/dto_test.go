package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	guestModel "innkeep/internal/domains/guest/model"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/shared/constant"
	"innkeep/shared/timezone"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomRequest{
		Number: "101",
		Floor:  1,
		Type:   "double",
	}

	room := req.ToModel()

	assert.Equal(t, "101", room.Number)
	assert.Equal(t, 1, room.Floor)
	assert.Equal(t, "double", room.Type)
	assert.False(t, room.CreatedAt.IsZero())
}

func TestUpdateRoomRequest_ToFields(t *testing.T) {
	req := dto.UpdateRoomRequest{
		Number: "102",
		Floor:  2,
		Type:   "suite",
	}

	fields := req.ToFields()

	assert.Equal(t, "102", fields["number"])
	assert.Equal(t, 2, fields["floor"])
	assert.Equal(t, "suite", fields["type"])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, "id")
}

func TestRoomResponse_FromModel(t *testing.T) {
	today := timezone.Today()

	room := model.Room{
		ID:     7,
		Number: "101",
		Floor:  1,
		Type:   "double",
	}

	guests := []guestModel.Guest{
		{
			ID:           1,
			FirstName:    "Amelia",
			LastName:     "Hartono",
			CheckInDate:  today.AddDate(0, 0, -1),
			CheckOutDate: today.AddDate(0, 0, 2),
			RoomID:       7,
		},
		{
			ID:           2,
			FirstName:    "Budi",
			LastName:     "Santoso",
			CheckInDate:  today.AddDate(0, 0, -10),
			CheckOutDate: today.AddDate(0, 0, -5),
			RoomID:       7,
		},
	}

	var res dto.RoomResponse
	res.FromModel(room, guests)

	assert.Equal(t, int64(7), res.ID)
	assert.True(t, res.IsOccupied)
	assert.Equal(t, 2, res.GuestCount)
	assert.Len(t, res.CurrentGuests, 1)
	assert.Equal(t, "Amelia Hartono", res.CurrentGuests[0].FullName)
}

func TestRoomResponse_FromModel_BoundaryDays(t *testing.T) {
	today := timezone.Today()

	room := model.Room{ID: 7, Number: "101", Floor: 1, Type: "double"}

	t.Run("check out today still occupies", func(t *testing.T) {
		guests := []guestModel.Guest{
			{ID: 1, CheckInDate: today.AddDate(0, 0, -3), CheckOutDate: today, RoomID: 7},
		}

		var res dto.RoomResponse
		res.FromModel(room, guests)

		assert.True(t, res.IsOccupied)
	})

	t.Run("check in today still occupies", func(t *testing.T) {
		guests := []guestModel.Guest{
			{ID: 1, CheckInDate: today, CheckOutDate: today.AddDate(0, 0, 3), RoomID: 7},
		}

		var res dto.RoomResponse
		res.FromModel(room, guests)

		assert.True(t, res.IsOccupied)
	})

	t.Run("future stay does not occupy", func(t *testing.T) {
		guests := []guestModel.Guest{
			{ID: 1, CheckInDate: today.AddDate(0, 0, 1), CheckOutDate: today.AddDate(0, 0, 4), RoomID: 7},
		}

		var res dto.RoomResponse
		res.FromModel(room, guests)

		assert.False(t, res.IsOccupied)
		assert.Equal(t, 1, res.GuestCount)
	})
}

func TestRoomResponse_FromModel_NoGuests(t *testing.T) {
	room := model.Room{ID: 7, Number: "101", Floor: 1, Type: "double"}

	var res dto.RoomResponse
	res.FromModel(room, nil)

	assert.False(t, res.IsOccupied)
	assert.Equal(t, 0, res.GuestCount)
	assert.NotNil(t, res.CurrentGuests)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	rooms := []model.Room{
		{ID: 7, Number: "101", Floor: 1, Type: "double"},
		{ID: 8, Number: "201", Floor: 2, Type: "suite"},
	}

	guestsByRoom := map[int64][]guestModel.Guest{
		7: {{ID: 1, RoomID: 7}},
	}

	var res dto.GetRoomsResponse
	res.FromModels(rooms, guestsByRoom, len(rooms))

	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.Rooms[0].GuestCount)
	assert.Equal(t, 0, res.Rooms[1].GuestCount)
}
