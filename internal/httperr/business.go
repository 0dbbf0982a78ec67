package httperr

import "errors"

// BusinessError is a validation failure outside the scheduling core. It is
// rendered as 400 with its code.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// MissingError is a lookup miss in a catalog handler, rendered as 404.
type MissingError struct {
	Code string
}

func (e MissingError) Error() string {
	return e.Code
}

func ErrMissing(code string) error {
	return MissingError{Code: code}
}
