package pesel

import "errors"

var (
	// ErrWrongFormat matches every parse failure.
	ErrWrongFormat = errors.New("Wrong format") //nolint:staticcheck // message is part of the public contract

	// ErrInvalidLength is the reason when the input is not exactly 11 characters long.
	ErrInvalidLength = errors.New("invalid length")

	// ErrNotNumeric is the reason when the input is not an unsigned decimal number.
	ErrNotNumeric = errors.New("not numeric")
)

// FormatError is returned by Parse. Its message is always "Wrong format";
// Reason tells which check failed.
type FormatError struct {
	Reason error
}

func (e *FormatError) Error() string {
	return ErrWrongFormat.Error()
}

func (e *FormatError) Unwrap() []error {
	if e.Reason == nil {
		return []error{ErrWrongFormat}
	}
	return []error{ErrWrongFormat, e.Reason}
}
