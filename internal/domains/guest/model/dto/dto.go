package dto

import (
	"fmt"
	"time"

	"innkeep/internal/domains/guest/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateGuestRequest struct {
	FirstName    string `json:"first_name"     validate:"required,max=200"`
	LastName     string `json:"last_name"      validate:"required,max=400"`
	DateOfBirth  string `json:"date_of_birth"  validate:"required,datetime=2006-01-02"`
	Address      string `json:"address"        validate:"required,max=600"`
	Nationality  string `json:"nationality"    validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	RoomID       int64  `json:"room_id"        validate:"required,min=1"`
}

// ToModel converts the request into a persistable guest. The store assigns
// the id. A check-out before check-in is rejected here: the overlap and
// occupancy formulas assume a non-degenerate stay interval.
func (c *CreateGuestRequest) ToModel() (model.Guest, error) {
	stay, err := parseStay(c.DateOfBirth, c.CheckInDate, c.CheckOutDate)
	if err != nil {
		return model.Guest{}, err
	}

	return model.Guest{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		DateOfBirth:  stay.dateOfBirth,
		Address:      c.Address,
		Nationality:  c.Nationality,
		CheckInDate:  stay.checkIn,
		CheckOutDate: stay.checkOut,
		RoomID:       c.RoomID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type UpdateGuestRequest struct {
	ID           int64  `json:"id"             validate:"omitempty,min=1"`
	FirstName    string `json:"first_name"     validate:"required,max=200"`
	LastName     string `json:"last_name"      validate:"required,max=400"`
	DateOfBirth  string `json:"date_of_birth"  validate:"required,datetime=2006-01-02"`
	Address      string `json:"address"        validate:"required,max=600"`
	Nationality  string `json:"nationality"    validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	RoomID       int64  `json:"room_id"        validate:"required,min=1"`
}

// guestColumns mirrors the mutable guest columns so TransformFields can
// derive the update statement. Every field is overwritten wholesale.
type guestColumns struct {
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	DateOfBirth  time.Time `db:"date_of_birth"`
	Address      string    `db:"address"`
	Nationality  string    `db:"nationality"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	RoomID       int64     `db:"room_id"`
}

// ToFields converts the request into the column map written by an update.
func (u *UpdateGuestRequest) ToFields() (map[string]any, error) {
	stay, err := parseStay(u.DateOfBirth, u.CheckInDate, u.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return shared.TransformFields(guestColumns{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		DateOfBirth:  stay.dateOfBirth,
		Address:      u.Address,
		Nationality:  u.Nationality,
		CheckInDate:  stay.checkIn,
		CheckOutDate: stay.checkOut,
		RoomID:       u.RoomID,
	}), nil
}

type stayDates struct {
	dateOfBirth time.Time
	checkIn     time.Time
	checkOut    time.Time
}

func parseStay(dateOfBirth, checkInDate, checkOutDate string) (stayDates, error) {
	dob, err := timezone.Parse(constant.DateFormat, dateOfBirth)
	if err != nil {
		return stayDates{}, fmt.Errorf("invalid date_of_birth: %w", err)
	}

	checkIn, err := timezone.Parse(constant.DateFormat, checkInDate)
	if err != nil {
		return stayDates{}, fmt.Errorf("invalid check_in_date: %w", err)
	}

	checkOut, err := timezone.Parse(constant.DateFormat, checkOutDate)
	if err != nil {
		return stayDates{}, fmt.Errorf("invalid check_out_date: %w", err)
	}

	if checkOut.Before(checkIn) {
		return stayDates{}, fmt.Errorf("check_out_date %s precedes check_in_date %s", checkOutDate, checkInDate)
	}

	return stayDates{dateOfBirth: dob, checkIn: checkIn, checkOut: checkOut}, nil
}

type GuestResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	DateOfBirth  string `json:"date_of_birth"`
	Age          int    `json:"age"`
	Address      string `json:"address"`
	Nationality  string `json:"nationality"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	StayDuration int    `json:"stay_duration"`
	RoomID       int64  `json:"room_id"`
	RoomNumber   string `json:"room_number"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.FullName = model.FirstName + " " + model.LastName
	r.DateOfBirth = timezone.Format(model.DateOfBirth, constant.DateFormat)
	r.Age = calculateAge(model.DateOfBirth, timezone.Today())
	r.Address = model.Address
	r.Nationality = model.Nationality
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.DateFormat)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, constant.DateFormat)
	r.StayDuration = int(model.CheckOutDate.Sub(model.CheckInDate).Hours() / 24)
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.Metadata.FromModel(model.Metadata)
}

func calculateAge(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()
	if birthDate.AddDate(age, 0, 0).After(today) {
		age--
	}

	return age
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, total int) {
	r.TotalData = total

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
