package model

import "roombook/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldActive   = "active"
)

type Room struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Active   bool   `db:"active"`
	model.Metadata
}
