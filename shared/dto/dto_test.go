package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"innkeep/shared/constant"
	"innkeep/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"sort_by":  "floor",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortBy:  "floor",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "lowercase sort direction is normalized",
			queryParams: map[string]string{
				"sort_by":  "check_in_date",
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortBy:  "check_in_date",
				SortDir: "DESC",
			},
		},
		{
			name: "invalid sort direction is ignored",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality filter with table prefix",
			filter: dto.Filter{
				Field:    "floor",
				Value:    2,
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
			wantWhere: "rooms.floor = :floor",
			wantArgs:  map[string]any{"floor": 2},
		},
		{
			name: "less or equal filter with custom arg name",
			filter: dto.Filter{
				ArgName:  "end_date",
				Field:    "check_in_date",
				Value:    "2025-01-15",
				Operator: dto.FilterOperatorLessEq,
				Table:    "guests",
			},
			wantWhere: "guests.check_in_date <= :end_date",
			wantArgs:  map[string]any{"end_date": "2025-01-15"},
		},
		{
			name: "like filter",
			filter: dto.Filter{
				Field:    "number",
				Value:    "10",
				Operator: dto.FilterOperatorLike,
				Table:    "rooms",
			},
			wantWhere: "LOWER(rooms.number) LIKE LOWER(:number) ",
			wantArgs:  map[string]any{"number": "%10%"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "floor",
				Value:    2,
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if got, ok := args[key]; !ok || got != want {
					t.Errorf("expected arg %s=%v, got %v", key, want, got)
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Value:    int64(5),
				Operator: dto.FilterOperatorEq,
				Table:    "guests",
			},
			dto.Filter{
				ArgName:  "start_date",
				Field:    "check_out_date",
				Value:    "2025-01-10",
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "guests",
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(guests.room_id = :room_id AND guests.check_out_date >= :start_date)"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}
