package repository

import (
	"strings"
	"testing"
)

// The overlap comparison must stay inclusive on both ends, mirroring
// Guest.OverlapsStay: a stay checking out on the requested start day still
// blocks the room, and one checking in on the requested end day does too.
func TestOverlapCondition(t *testing.T) {
	if !strings.Contains(overlapCondition, "guests.check_in_date <= :end_date") {
		t.Errorf("check-in comparison must be inclusive of the range end, got %q", overlapCondition)
	}

	if !strings.Contains(overlapCondition, "guests.check_out_date >= :start_date") {
		t.Errorf("check-out comparison must be inclusive of the range start, got %q", overlapCondition)
	}

	if strings.Contains(overlapCondition, "< :") || strings.Contains(overlapCondition, "> :") {
		t.Errorf("strict comparisons would free boundary days, got %q", overlapCondition)
	}
}
