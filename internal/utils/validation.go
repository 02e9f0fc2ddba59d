package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// IATA-style airport codes: three or four letters/digits.
	validAirportPattern = regexp.MustCompile(`^[A-Z0-9]{3,4}$`)

	// Carrier codes: two characters, letters or digits ("DL", "9E").
	validCarrierPattern = regexp.MustCompile(`^[A-Z0-9]{2}$`)
)

// ValidateAirportCode validates that an airport code is well-formed
func ValidateAirportCode(code string) error {
	if code == "" {
		return errors.New("airport code cannot be empty")
	}
	if !validAirportPattern.MatchString(code) {
		return errors.New("airport code must be 3-4 letters or digits")
	}
	return nil
}

// ValidateCarrierCode validates a two-letter carrier code
func ValidateCarrierCode(code string) error {
	if code == "" {
		return errors.New("carrier code cannot be empty")
	}
	if !validCarrierPattern.MatchString(code) {
		return errors.New("carrier code must be 2 letters or digits")
	}
	return nil
}
