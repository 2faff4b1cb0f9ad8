package utils

import (
	"errors"
	"regexp"
)

// Passenger IDs are plain positive integers from the manifest.
var validIDPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidateID validates that a passenger ID is numeric and within
// reasonable limits.
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 12 {
		return errors.New("id too long (max 12 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id must be a positive integer")
	}

	return nil
}
