package model

import "innkeep/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldNumber = "number"
	FieldFloor  = "floor"
	FieldType   = "type"
)

type Room struct {
	ID     int64  `db:"id"`
	Number string `db:"number"`
	Floor  int    `db:"floor"`
	Type   string `db:"type"`
	model.Metadata
}
