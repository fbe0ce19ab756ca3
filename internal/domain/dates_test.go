package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeDate(t *testing.T) {
	t.Run("Trims time to midnight UTC", func(t *testing.T) {
		in := time.Date(2026, 3, 10, 15, 42, 7, 123, time.UTC)
		assert.Equal(t, date(2026, 3, 10), NormalizeDate(in))
	})

	t.Run("Converts other timezones to UTC day", func(t *testing.T) {
		loc := time.FixedZone("ICT", 7*3600)
		in := time.Date(2026, 3, 10, 2, 0, 0, 0, loc) // 2026-03-09 19:00 UTC
		assert.Equal(t, date(2026, 3, 9), NormalizeDate(in))
	})
}

func TestNightsBetween(t *testing.T) {
	t.Run("Two nights", func(t *testing.T) {
		assert.Equal(t, 2, NightsBetween(date(2026, 3, 10), date(2026, 3, 12)))
	})

	t.Run("One night", func(t *testing.T) {
		assert.Equal(t, 1, NightsBetween(date(2026, 3, 10), date(2026, 3, 11)))
	})

	t.Run("Ignores time of day", func(t *testing.T) {
		in := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
		out := time.Date(2026, 3, 13, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, 3, NightsBetween(in, out))
	})
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "Identical intervals overlap",
			aStart: date(2026, 3, 10), aEnd: date(2026, 3, 12),
			bStart: date(2026, 3, 10), bEnd: date(2026, 3, 12),
			expected: true,
		},
		{
			name:   "Partial overlap",
			aStart: date(2026, 3, 10), aEnd: date(2026, 3, 14),
			bStart: date(2026, 3, 12), bEnd: date(2026, 3, 16),
			expected: true,
		},
		{
			name:   "Contained interval overlaps",
			aStart: date(2026, 3, 10), aEnd: date(2026, 3, 20),
			bStart: date(2026, 3, 12), bEnd: date(2026, 3, 14),
			expected: true,
		},
		{
			name:   "Single shared night overlaps",
			aStart: date(2026, 3, 10), aEnd: date(2026, 3, 12),
			bStart: date(2026, 3, 11), bEnd: date(2026, 3, 13),
			expected: true,
		},
		{
			name:   "Back to back does not overlap",
			aStart: date(2026, 3, 10), aEnd: date(2026, 3, 12),
			bStart: date(2026, 3, 12), bEnd: date(2026, 3, 14),
			expected: false,
		},
		{
			name:   "Back to back reversed does not overlap",
			aStart: date(2026, 3, 12), aEnd: date(2026, 3, 14),
			bStart: date(2026, 3, 10), bEnd: date(2026, 3, 12),
			expected: false,
		},
		{
			name:   "Disjoint intervals do not overlap",
			aStart: date(2026, 3, 10), aEnd: date(2026, 3, 12),
			bStart: date(2026, 3, 20), bEnd: date(2026, 3, 22),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, IntervalsOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestBookingTransitions(t *testing.T) {
	t.Run("Pending can be confirmed and cancelled", func(t *testing.T) {
		b := &Booking{Status: StatusPending}
		assert.True(t, b.CanBeConfirmed())
		assert.True(t, b.CanBeCancelled())
		assert.True(t, b.IsActive())
	})

	t.Run("Confirmed cannot be confirmed again", func(t *testing.T) {
		b := &Booking{Status: StatusConfirmed}
		assert.False(t, b.CanBeConfirmed())
		assert.True(t, b.CanBeCancelled())
	})

	t.Run("Cancelled is terminal and inactive", func(t *testing.T) {
		b := &Booking{Status: StatusCancelled}
		assert.False(t, b.CanBeConfirmed())
		assert.False(t, b.CanBeCancelled())
		assert.False(t, b.IsActive())
		assert.True(t, b.IsCancelled())
	})
}

func TestPaymentStates(t *testing.T) {
	t.Run("Completed is terminal", func(t *testing.T) {
		p := &Payment{Status: PaymentStatusCompleted}
		assert.True(t, p.IsCompleted())
		assert.True(t, p.IsTerminal())
	})

	t.Run("Cancelled is terminal but not completed", func(t *testing.T) {
		p := &Payment{Status: PaymentStatusCancelled}
		assert.False(t, p.IsCompleted())
		assert.True(t, p.IsTerminal())
	})

	t.Run("Pending and failed are not terminal", func(t *testing.T) {
		assert.False(t, (&Payment{Status: PaymentStatusPending}).IsTerminal())
		assert.False(t, (&Payment{Status: PaymentStatusFailed}).IsTerminal())
	})
}
