// Package validation holds the pre-flight input checks commands run before
// handing payloads to the session layer. The remote API revalidates
// everything; these only catch obviously broken input early.
package validation

import (
	"fmt"
	"strings"
)

const (
	minNameLength = 3
	minAge        = 10
	maxAge        = 120
)

// ValidateEmail checks for a non-empty, minimally shaped address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email is not valid")
	}
	return nil
}

// ValidatePassword checks for a non-empty password. Strength rules belong
// to the API.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateName checks the display name length.
func ValidateName(name string) error {
	if len(strings.TrimSpace(name)) < minNameLength {
		return fmt.Errorf("name must have at least %d characters", minNameLength)
	}
	return nil
}

// ValidateAge checks the accepted age range.
func ValidateAge(age int) error {
	if age < minAge || age > maxAge {
		return fmt.Errorf("age must be between %d and %d", minAge, maxAge)
	}
	return nil
}
