package pesel

import "strconv"

const (
	// Length is the number of digits in a PESEL number.
	Length = 11
	// PayloadLength is the number of digits covered by the check digit.
	PayloadLength = Length - 1
)

var weights = [PayloadLength]uint32{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// Number is a parsed PESEL number, one decimal digit per element.
type Number [Length]uint8

// Parse validates s and returns its digits. s must be exactly 11 decimal
// digits; leading zeros are allowed. The check digit is not verified.
func Parse(s string) (Number, error) {
	var n Number
	if len(s) != Length {
		return n, &FormatError{Reason: ErrInvalidLength}
	}
	// Base 10 rejects signs, spaces and underscores.
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return n, &FormatError{Reason: ErrNotNumeric}
	}

	for i := range Length {
		n[i] = s[i] - '0'
	}
	return n, nil
}

// Payload returns the first 10 digits, the input to Checksum.
func (n Number) Payload() [PayloadLength]uint8 {
	var p [PayloadLength]uint8
	copy(p[:], n[:PayloadLength])
	return p
}

// CheckDigit returns the last digit.
func (n Number) CheckDigit() uint8 {
	return n[PayloadLength]
}

// Checksum computes the check digit for the given payload digits.
// Digits are expected to be in the 0-9 range and are not validated.
func Checksum(digits [PayloadLength]uint8) uint8 {
	var sum uint32
	for i, w := range weights {
		sum += w * uint32(digits[i])
	}
	return uint8((10 - sum%10) % 10)
}
