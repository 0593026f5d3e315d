package model

import (
	"roam/shared/model"
	"roam/shared/money"
)

const (
	TableName  = "tours"
	EntityName = "tour"

	FieldID          = "id"
	FieldHostID      = "host_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldPrice       = "price"
	FieldCurrency    = "currency"
	FieldMaxCapacity = "max_capacity"
	FieldStatus      = "status"
)

// Price is the flat fee for the whole tour, independent of the booked date
// range.
type Tour struct {
	ID          string       `db:"id"`
	HostID      string       `db:"host_id"`
	Title       string       `db:"title"`
	Description *string      `db:"description"`
	Location    *string      `db:"location"`
	Price       money.Amount `db:"price"`
	Currency    string       `db:"currency"`
	MaxCapacity int          `db:"max_capacity"`
	Status      string       `db:"status"`
	model.Metadata
}
