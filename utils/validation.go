// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// phoneRegex is deliberately loose: optional + then at least ten of
// digits, spaces, dashes or parentheses.
var phoneRegex = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)

// PickupTimeSlots are the bookable pickup windows offered on the site.
var PickupTimeSlots = []string{
	"8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM",
	"4:00 PM", "5:00 PM", "6:00 PM",
}

// ValidatePhone checks a customer phone number against the loose pattern.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// ValidPickupTime reports whether slot is one of the fixed pickup windows.
func ValidPickupTime(slot string) bool {
	for _, s := range PickupTimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}
