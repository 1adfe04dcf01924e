// Package phone canonicalizes Argentine phone numbers into the fixed-width
// form used as a WhatsApp messaging identifier: "54" + "9" + a two-digit
// area code + an eight-digit local number, thirteen digits total.
package phone

import (
	"errors"
	"regexp"
	"strings"
)

const (
	countryCode     = "54"
	mobilePrefix    = "9"
	defaultAreaCode = "11"
	localLength     = 8
	canonicalLength = 13

	// minInputDigits is measured on the full digit string before any prefix
	// stripping, so every all-digit input of six or more digits is accepted.
	minInputDigits = 6
)

var (
	// ErrNoDigits is returned when the input carries no digits at all.
	ErrNoDigits = errors.New("phone: no digits in input")
	// ErrTooShort is returned when the input carries fewer digits than a
	// plausible local number.
	ErrTooShort = errors.New("phone: too few digits for a phone number")

	digitsRe = regexp.MustCompile(`\d+`)
)

// Normalize converts free-form phone input into canonical form. It keeps the
// digits and discards everything else, forgives a missing or truncated "54"
// country code and an optional leading mobile "9", defaults the area code to
// Buenos Aires ("11") when only a local number was supplied, and fits the
// local part to exactly eight digits (zero-padding short ones, keeping the
// last eight of long ones). The result always satisfies IsCanonical, and
// Normalize is idempotent over its own output.
func Normalize(raw string) (string, error) {
	digits := sanitize(raw)
	if digits == "" {
		return "", ErrNoDigits
	}
	if len(digits) < minInputDigits {
		return "", ErrTooShort
	}

	rest := stripCountryCode(digits)
	rest = strings.TrimPrefix(rest, mobilePrefix)

	var area, local string
	if len(rest) >= localLength+2 {
		area, local = rest[:2], rest[2:]
	} else {
		area, local = defaultAreaCode, rest
	}

	return countryCode + mobilePrefix + area + fitLocal(local), nil
}

// IsCanonical reports whether s is already in canonical form: exactly
// thirteen ASCII digits.
func IsCanonical(s string) bool {
	if len(s) != canonicalLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func sanitize(value string) string {
	if value == "" {
		return ""
	}
	digits := digitsRe.FindAllString(value, -1)
	return strings.Join(digits, "")
}

// stripCountryCode removes a leading "54". A bare leading "5" is treated as
// a truncated country code and removed on its own.
func stripCountryCode(digits string) string {
	if strings.HasPrefix(digits, countryCode) {
		return digits[len(countryCode):]
	}
	if strings.HasPrefix(digits, countryCode[:1]) {
		return digits[1:]
	}
	return digits
}

func fitLocal(local string) string {
	if len(local) > localLength {
		return local[len(local)-localLength:]
	}
	if len(local) < localLength {
		return strings.Repeat("0", localLength-len(local)) + local
	}
	return local
}
