package shared_test

import (
	"testing"
	"time"

	"innkeep/shared"
	"innkeep/shared/constant"
	"innkeep/shared/dto"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestConvertStringToInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{
			name:     "valid id",
			input:    "42",
			expected: 42,
		},
		{
			name:     "negative id",
			input:    "-1",
			expected: -1,
		},
		{
			name:    "empty string fails",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non-numeric fails",
			input:   "abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToInt64(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %d", result)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Number string `db:"number"`
		Floor  int    `db:"floor"`
		Type   string `db:"type"`
		Ignore string
	}

	req := updateRequest{
		Number: "101",
		Floor:  0,
		Type:   "Standard",
		Ignore: "untagged",
	}

	fields := shared.TransformFields(req)

	if fields["number"] != "101" {
		t.Errorf("expected number to be 101, got %v", fields["number"])
	}

	// Zero values are carried: updates replace every field.
	if fields["floor"] != 0 {
		t.Errorf("expected floor to be 0, got %v", fields["floor"])
	}

	if fields["type"] != "Standard" {
		t.Errorf("expected type to be Standard, got %v", fields["type"])
	}

	if _, ok := fields["Ignore"]; ok {
		t.Error("expected untagged field to be skipped")
	}

	modifiedAt, ok := fields[constant.FieldModifiedAt].(time.Time)
	if !ok || modifiedAt.IsZero() {
		t.Error("expected modified_at to be stamped")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(7, "id", "rooms")

	where, args := group.GetWhereClause()

	if where != "(rooms.id = :id)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["id"] != int64(7) {
		t.Errorf("expected id arg to be 7, got %v", args["id"])
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("room", "get", "7")

	if key != "room:get:7" {
		t.Errorf("unexpected cache key: %q", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{SortBy: "id", SortDir: "ASC"}
	filter := shared.FilterByID(7, "id", "rooms")

	first := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, shared.FilterByID(8, "id", "rooms"))

	if first == second {
		t.Error("expected different filters to produce different cache keys")
	}
}
