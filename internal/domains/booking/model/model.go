package model

import (
	"roam/shared/model"
	"roam/shared/money"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldRenterID        = "renter_id"
	FieldResourceKind    = "resource_kind"
	FieldResourceID      = "resource_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldTotalPrice      = "total_price"
	FieldCurrency        = "currency"
	FieldPaymentEvidence = "payment_evidence"
)

// Booking holds a reservation of one property or tour for a half-open
// [check_in, check_out) date range. TotalPrice is derived from the listing
// rate at creation time and never accepted from the client.
type Booking struct {
	ID              string         `db:"id"`
	RenterID        string         `db:"renter_id"`
	ResourceKind    string         `db:"resource_kind"`
	ResourceID      string         `db:"resource_id"`
	CheckIn         time.Time      `db:"check_in"`
	CheckOut        time.Time      `db:"check_out"`
	Guests          int            `db:"guests"`
	Status          Status         `db:"status"`
	PaymentStatus   PaymentStatus  `db:"payment_status"`
	TotalPrice      money.Amount   `db:"total_price"`
	Currency        string         `db:"currency"`
	PaymentEvidence pq.StringArray `db:"payment_evidence"`
	model.Metadata
}
