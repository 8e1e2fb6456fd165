package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/internal/domains/guest/model"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestGuest_OverlapsStay(t *testing.T) {
	stay := model.Guest{
		CheckInDate:  day(10),
		CheckOutDate: day(15),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "range starting on the check-out day overlaps",
			start: day(15),
			end:   day(20),
			want:  true,
		},
		{
			name:  "range starting the day after check-out is free",
			start: day(16),
			end:   day(20),
			want:  false,
		},
		{
			name:  "range ending on the check-in day overlaps",
			start: day(5),
			end:   day(10),
			want:  true,
		},
		{
			name:  "range ending the day before check-in is free",
			start: day(5),
			end:   day(9),
			want:  false,
		},
		{
			name:  "range inside the stay overlaps",
			start: day(11),
			end:   day(12),
			want:  true,
		},
		{
			name:  "range covering the whole stay overlaps",
			start: day(1),
			end:   day(31),
			want:  true,
		},
		{
			name:  "single day range equal to the whole stay boundary",
			start: day(10),
			end:   day(10),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stay.OverlapsStay(tt.start, tt.end))
		})
	}
}

func TestGuest_IsCurrent(t *testing.T) {
	stay := model.Guest{
		CheckInDate:  day(10),
		CheckOutDate: day(15),
	}

	assert.True(t, stay.IsCurrent(day(10)))
	assert.True(t, stay.IsCurrent(day(15)))
	assert.False(t, stay.IsCurrent(day(9)))
	assert.False(t, stay.IsCurrent(day(16)))
}
