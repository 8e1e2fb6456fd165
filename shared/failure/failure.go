package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidFloorParam = &Failure{Code: http.StatusBadRequest, Message: "invalid floor parameter"}
var InvalidRoomParam = &Failure{Code: http.StatusBadRequest, Message: "invalid room_id parameter"}
var MissingDateRange = &Failure{Code: http.StatusBadRequest, Message: "start and end date parameters are required"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure for domain conflicts, such as a deletion
// blocked by referencing records. Conflicts surface as bad requests; the
// message carries the detail.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether the error carries the given HTTP status code.
func Is(err error, code int) bool {
	return GetCode(err) == code
}
