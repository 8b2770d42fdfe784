package httperr

import "errors"

// Business rule failure codes. Each one is raised by exactly one stage of
// the write pipeline and mapped to a transport status by the handlers.
const (
	CodeValidation          = "validation_error"
	CodeInvalidDateTime     = "invalid_datetime"
	CodeServiceNotFound     = "service_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeDoubleBooking       = "double_booking"
	CodeDependentRecords    = "dependent_records"
)

type BusinessError struct {
	Code   string
	Detail string
}

func (e BusinessError) Error() string {
	if e.Detail != "" {
		return e.Code + ": " + e.Detail
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrValidation reports a field-level rule violation, naming the field.
func ErrValidation(field string) error {
	return BusinessError{Code: CodeValidation, Detail: field}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError if it carries one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
