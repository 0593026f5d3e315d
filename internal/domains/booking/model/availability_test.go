package model_test

import (
	"testing"
	"time"

	"roam/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{name: "disjoint ranges", aStart: day(1), aEnd: day(3), bStart: day(5), bEnd: day(7), expected: false},
		{name: "identical ranges", aStart: day(1), aEnd: day(3), bStart: day(1), bEnd: day(3), expected: true},
		{name: "partial overlap", aStart: day(1), aEnd: day(4), bStart: day(3), bEnd: day(6), expected: true},
		{name: "containment", aStart: day(1), aEnd: day(10), bStart: day(4), bEnd: day(5), expected: true},
		{name: "checkout equals checkin does not overlap", aStart: day(1), aEnd: day(3), bStart: day(3), bEnd: day(5), expected: false},
		{name: "checkin equals checkout does not overlap", aStart: day(3), aEnd: day(5), bStart: day(1), bEnd: day(3), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// the law is symmetric
			assert.Equal(t, tt.expected, model.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, model.ValidateRange(day(1), day(2)))
	assert.Error(t, model.ValidateRange(day(2), day(2)), "zero-night stays are invalid")
	assert.Error(t, model.ValidateRange(day(3), day(1)), "inverted ranges are invalid")
}

func TestBlocksAvailability(t *testing.T) {
	for _, status := range []model.Status{model.StatusPending, model.StatusConfirmed, model.StatusCompleted} {
		booking := model.Booking{Status: status}
		assert.True(t, booking.BlocksAvailability(), "status %s", status)
	}

	cancelled := model.Booking{Status: model.StatusCancelled}
	assert.False(t, cancelled.BlocksAvailability())
}
