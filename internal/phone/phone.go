// Package phone validates and normalizes phone numbers at service boundaries.
package phone

import (
	"regexp"

	"github.com/ttacon/libphonenumber"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// ITU-T E.164: plus sign, non-zero leading digit, at most 15 digits total
var e164Regex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// IsE164 reports strict E.164 compliance
func IsE164(number string) bool { return e164Regex.MatchString(number) }

// ValidateE164 returns ErrInvalidPhoneNumber unless number is strict E.164
func ValidateE164(number string) error {
	if !IsE164(number) {
		return domain.ErrInvalidPhoneNumber
	}
	return nil
}

// Normalize parses number and returns its canonical E.164 form. The input
// must carry a country prefix; there is no implicit default region.
func Normalize(number string) (string, error) {
	parsed, err := libphonenumber.Parse(number, "")
	if err != nil {
		return "", domain.ErrInvalidPhoneNumber
	}
	if !libphonenumber.IsValidNumber(parsed) {
		return "", domain.ErrInvalidPhoneNumber
	}
	formatted := libphonenumber.Format(parsed, libphonenumber.E164)
	if !IsE164(formatted) {
		return "", domain.ErrInvalidPhoneNumber
	}
	return formatted, nil
}
