// Package pesel parses and validates PESEL numbers, the 11-digit national
// identification numbers.
//
// Parse checks that the input is exactly 11 decimal digits and returns a
// Number holding them in order. It does not verify the check digit: that is
// an independent step performed with Checksum.
//
// # Usage
//
//	import "github.com/dmitrymomot/pesel/pkg/pesel"
//
//	n, err := pesel.Parse("93061412550")
//	if err != nil {
//	    // err.Error() == "Wrong format"
//	    return err
//	}
//
//	if pesel.Checksum(n.Payload()) != n.CheckDigit() {
//	    // check digit mismatch
//	}
//
// # Errors
//
// Every parse failure is a *FormatError whose message is "Wrong format".
// Use errors.Is with ErrWrongFormat to detect any failure, or with
// ErrInvalidLength and ErrNotNumeric to find out which check failed.
//
// Both operations are pure and safe for concurrent use.
package pesel
