package model

import (
	"time"

	"innkeep/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID           = "id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldDateOfBirth  = "date_of_birth"
	FieldAddress      = "address"
	FieldNationality  = "nationality"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldRoomID       = "room_id"
)

type Guest struct {
	ID           int64     `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	DateOfBirth  time.Time `db:"date_of_birth"`
	Address      string    `db:"address"`
	Nationality  string    `db:"nationality"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	RoomID       int64     `db:"room_id"`
	RoomNumber   string    `db:"room_number" table:"rooms" column:"number"`
	model.Metadata
}

// GetJoinQuery attaches the owning room so listings can display the room
// number without a second query.
func (Guest) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = guests.room_id"
}

// OverlapsStay reports whether the stay shares at least one day with the
// given range. Both interval ends are inclusive, so a stay checking out on
// the range's start day still overlaps. The availability SQL applies the
// same comparison.
func (g Guest) OverlapsStay(startDate, endDate time.Time) bool {
	return !g.CheckInDate.After(endDate) && !g.CheckOutDate.Before(startDate)
}

// IsCurrent reports whether the stay interval covers the given day.
func (g Guest) IsCurrent(day time.Time) bool {
	return g.OverlapsStay(day, day)
}
