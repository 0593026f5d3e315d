package model

import (
	"roam/shared/model"
	"roam/shared/money"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID          = "id"
	FieldHostID      = "host_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldNightlyRate = "nightly_rate"
	FieldCurrency    = "currency"
	FieldMaxGuests   = "max_guests"
	FieldStatus      = "status"
)

type Property struct {
	ID          string       `db:"id"`
	HostID      string       `db:"host_id"`
	Title       string       `db:"title"`
	Description *string      `db:"description"`
	Location    *string      `db:"location"`
	NightlyRate money.Amount `db:"nightly_rate"`
	Currency    string       `db:"currency"`
	MaxGuests   int          `db:"max_guests"`
	Status      string       `db:"status"`
	model.Metadata
}
