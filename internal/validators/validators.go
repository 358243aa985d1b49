package validators

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	nameRegex     = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex    = regexp.MustCompile(`^\+?[1-9][\d\s\-()]{7,14}$`)
	objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

const passwordSymbols = "@$!%*?&"

// Statuses a reservation may carry, in the order they are reported to clients.
var Statuses = []string{"pending", "confirmed", "in-progress", "completed", "cancelled"}

func IsValidName(s string) bool {
	return nameRegex.MatchString(s) && utf8.RuneCountInString(s) >= 2
}

func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsValidPassword requires at least 8 characters with one lowercase letter,
// one uppercase letter, one digit and one symbol from @$!%*?&.
func IsValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// IsValidStatus is case-insensitive; storage always keeps the lowercase form.
func IsValidStatus(s string) bool {
	lowered := strings.ToLower(s)
	for _, st := range Statuses {
		if lowered == st {
			return true
		}
	}
	return false
}

// IsValidObjectID reports whether s has the 24-hex-character shape the store
// uses for document identifiers.
func IsValidObjectID(s string) bool {
	return objectIDRegex.MatchString(s)
}
