package dto

import (
	guestModel "innkeep/internal/domains/guest/model"
	guestDto "innkeep/internal/domains/guest/model/dto"
	"innkeep/internal/domains/room/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateRoomRequest struct {
	Number string `json:"number" validate:"required,max=50"`
	Floor  int    `json:"floor"  validate:"required,min=1"`
	Type   string `json:"type"   validate:"required,max=100"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		Number: c.Number,
		Floor:  c.Floor,
		Type:   c.Type,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateRoomRequest struct {
	ID     int64  `json:"id"     validate:"omitempty,min=1"`
	Number string `json:"number" validate:"required,max=50"`
	Floor  int    `json:"floor"  validate:"required,min=1"`
	Type   string `json:"type"   validate:"required,max=100"`
}

type roomColumns struct {
	Number string `db:"number"`
	Floor  int    `db:"floor"`
	Type   string `db:"type"`
}

// ToFields converts the request into the column map written by an update.
func (u *UpdateRoomRequest) ToFields() map[string]any {
	return shared.TransformFields(roomColumns{
		Number: u.Number,
		Floor:  u.Floor,
		Type:   u.Type,
	})
}

type RoomResponse struct {
	ID            int64                    `json:"id"`
	Number        string                   `json:"number"`
	Floor         int                      `json:"floor"`
	Type          string                   `json:"type"`
	IsOccupied    bool                     `json:"is_occupied"`
	GuestCount    int                      `json:"guest_count"`
	CurrentGuests []guestDto.GuestResponse `json:"current_guests"`
	gDto.Metadata
}

// FromModel fills the response from a room and the guests assigned to it.
// Occupancy is derived at read time against today's date, never stored.
func (r *RoomResponse) FromModel(mod model.Room, guests []guestModel.Guest) {
	r.ID = mod.ID
	r.Number = mod.Number
	r.Floor = mod.Floor
	r.Type = mod.Type
	r.GuestCount = len(guests)

	today := timezone.Today()
	r.CurrentGuests = make([]guestDto.GuestResponse, 0)
	for _, guest := range guests {
		if guest.IsCurrent(today) {
			var resp guestDto.GuestResponse
			resp.FromModel(guest)
			r.CurrentGuests = append(r.CurrentGuests, resp)
		}
	}
	r.IsOccupied = len(r.CurrentGuests) > 0

	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

// FromModels fills the listing from rooms and their guests keyed by room id.
func (r *GetRoomsResponse) FromModels(models []model.Room, guestsByRoom map[int64][]guestModel.Guest, total int) {
	r.TotalData = total

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod, guestsByRoom[mod.ID])
	}
}

type AvailabilityResponse struct {
	RoomID      int64  `json:"room_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsAvailable bool   `json:"is_available"`
}
