package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"status"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidPageSizeParam = &Failure{Code: http.StatusBadRequest, Message: "invalid pageSize parameter"}
var InvalidSortParam = &Failure{Code: http.StatusBadRequest, Message: "invalid sortBy parameter"}
var InvalidDirectionParam = &Failure{Code: http.StatusBadRequest, Message: "direction must be one of ASC DESC"}

// Error returns the error code and message in a formatted string.
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
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
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

// GetMessage returns the client facing message. Errors that are not a Failure
// are internal and their text is not leaked to the caller.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return http.StatusText(http.StatusInternalServerError)
}
