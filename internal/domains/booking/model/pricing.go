package model

import (
	"time"

	"roam/shared/constant"
	"roam/shared/money"
)

// Nights counts whole nights in the half-open range [checkIn, checkOut).
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// TotalPrice derives the booking total from the listing rate. Stays are
// priced per night; tours carry one flat fee regardless of the date range.
func TotalPrice(resourceKind string, rate money.Amount, checkIn, checkOut time.Time) money.Amount {
	if resourceKind == constant.ResourceKindTour {
		return rate
	}

	return rate.MulUnits(Nights(checkIn, checkOut))
}
