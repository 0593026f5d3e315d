package dto

import (
	"time"

	"roam/internal/domains/booking/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/money"
	"roam/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceKind string `json:"resource_kind" validate:"required,oneof=property tour"`
	ResourceID   string `json:"resource_id"   validate:"required,uuid"`
	CheckIn      string `json:"check_in"      validate:"required"`
	CheckOut     string `json:"check_out"     validate:"required"`
	Guests       int    `json:"guests"        validate:"required,min=1"`
}

func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(renterID string, checkIn, checkOut time.Time, total money.Amount, currency string) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		RenterID:        renterID,
		ResourceKind:    c.ResourceKind,
		ResourceID:      c.ResourceID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		TotalPrice:      total,
		Currency:        currency,
		PaymentEvidence: []string{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  renterID,
			ModifiedBy: renterID,
		},
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid failed refunded"`
}

type BookingResponse struct {
	ID              string   `json:"id"`
	RenterID        string   `json:"renter_id"`
	ResourceKind    string   `json:"resource_kind"`
	ResourceID      string   `json:"resource_id"`
	CheckIn         string   `json:"check_in"`
	CheckOut        string   `json:"check_out"`
	Guests          int      `json:"guests"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"payment_status"`
	TotalPrice      int64    `json:"total_price"`
	Currency        string   `json:"currency"`
	PaymentEvidence []string `json:"payment_evidence"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RenterID = model.RenterID
	r.ResourceKind = model.ResourceKind
	r.ResourceID = model.ResourceID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = model.Guests
	r.Status = string(model.Status)
	r.PaymentStatus = string(model.PaymentStatus)
	r.TotalPrice = int64(model.TotalPrice)
	r.Currency = model.Currency
	r.PaymentEvidence = model.PaymentEvidence
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking events topic on every
// lifecycle change.
type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	RenterID      string    `json:"renter_id"`
	ResourceKind  string    `json:"resource_kind"`
	ResourceID    string    `json:"resource_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		RenterID:      booking.RenterID,
		ResourceKind:  booking.ResourceKind,
		ResourceID:    booking.ResourceID,
		Status:        string(booking.Status),
		PaymentStatus: string(booking.PaymentStatus),
		OccurredAt:    timezone.Now(),
	}
}
