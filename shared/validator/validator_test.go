package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"innkeep/shared/failure"
	"innkeep/shared/validator"
)

type guestPayload struct {
	FirstName   string `json:"first_name"    validate:"required,max=200"`
	LastName    string `json:"last_name"     validate:"required,max=400"`
	CheckInDate string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		payload guestPayload
		wantErr string
	}{
		{
			name: "valid payload",
			payload: guestPayload{
				FirstName:   "John",
				LastName:    "Doe",
				CheckInDate: "2025-01-10",
			},
		},
		{
			name: "missing required field",
			payload: guestPayload{
				LastName:    "Doe",
				CheckInDate: "2025-01-10",
			},
			wantErr: "FirstName is required",
		},
		{
			name: "over max length",
			payload: guestPayload{
				FirstName:   strings.Repeat("x", 201),
				LastName:    "Doe",
				CheckInDate: "2025-01-10",
			},
			wantErr: "FirstName must be less than or equal to 200",
		},
		{
			name: "bad date format",
			payload: guestPayload{
				FirstName:   "John",
				LastName:    "Doe",
				CheckInDate: "10/01/2025",
			},
			wantErr: "CheckInDate must be a date formatted as 2006-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.payload)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error")
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected 400 failure, got %d", failure.GetCode(err))
			}

			if err.Error() != tt.wantErr {
				t.Errorf("expected message %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"first_name":"John","last_name":"Doe","check_in_date":"2025-01-10"}`)

	var payload guestPayload
	if err := validator.Validate(body, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.FirstName != "John" {
		t.Errorf("expected decoded first name, got %q", payload.FirstName)
	}
}

func TestValidate_BadJSON(t *testing.T) {
	body := strings.NewReader(`{"first_name":`)

	var payload guestPayload
	err := validator.Validate(body, &payload)

	if err == nil {
		t.Fatal("expected decode error")
	}

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected 400 failure, got %d", failure.GetCode(err))
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2025-01-10", "required,datetime=2006-01-02"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected error for empty required var")
	}
}
