package model

import (
	"time"

	"roam/shared/failure"
)

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Ranges that only touch at a boundary do not
// overlap: one guest checking out on the day another checks in is fine.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ValidateRange rejects inverted and zero-night ranges before any overlap
// testing happens.
func ValidateRange(checkIn, checkOut time.Time) error {
	if !checkIn.Before(checkOut) {
		return failure.BadRequestFromString("check-in must be before check-out")
	}

	return nil
}

// BlocksAvailability reports whether this booking occupies its resource.
// Cancelled bookings release their dates.
func (b *Booking) BlocksAvailability() bool {
	return b.Status != StatusCancelled
}
