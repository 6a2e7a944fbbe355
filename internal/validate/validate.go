// Package validate holds the pure input validation rules for person records.
// Every function is side-effect free and reports failures through its return
// value only; a nil error means the value is acceptable.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"salondesk/internal/domain/entity"
	domainerrors "salondesk/internal/domain/errors"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\s\-']+$`)
	emailRe = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

	// UK phone shapes, loosest first: +44 with optional space, 07 mobiles,
	// and general 0-prefixed landlines. The looser general pattern is used
	// deliberately so landlines are accepted alongside mobiles.
	ukPhoneRes = []*regexp.Regexp{
		regexp.MustCompile(`^\+44\s?\d{4}\s?\d{6}$`),
		regexp.MustCompile(`^07\d{3}\s?\d{6}$`),
		regexp.MustCompile(`^0\d{2,4}\s?\d{6}$`),
	}
)

const minPasswordLength = 8

// Name checks a person name field. The field label appears in the failure
// reason so the caller can surface which field was rejected.
func Name(value, field string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !nameRe.MatchString(trimmed) {
		return domainerrors.NewFieldError(field, field+" should contain letters only")
	}

	return nil
}

// Email checks an optional email address. Empty is valid; requiredness for
// staff records is enforced by the caller, not here.
func Email(value string) error {
	if value == "" {
		return nil
	}
	if !emailRe.MatchString(value) {
		return domainerrors.NewFieldError("email", "invalid email format")
	}

	return nil
}

// UKPhone checks an optional UK phone number. Empty is valid.
func UKPhone(value string) error {
	if value == "" {
		return nil
	}
	for _, re := range ukPhoneRes {
		if re.MatchString(value) {
			return nil
		}
	}

	return domainerrors.NewFieldError("phone_number",
		"phone must be UK format (+44 7xxx xxxxxx or 07xxx xxxxxx)")
}

// DateDDMMYYYY checks that the value is three '/'-separated integers forming
// a real calendar date with a four-digit year. Day 31 in a 30-day month,
// month 13 and Feb 29 outside a leap year all fail; format and calendar
// failures report the same reason.
func DateDDMMYYYY(value string) error {
	reason := domainerrors.NewFieldError("appointment_date",
		"date must be DD/MM/YYYY (e.g. 15/03/2024)")

	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return reason
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return reason
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 {
		return reason
	}
	// Four-digit years only; Atoi would otherwise admit "0", "24" or "-2024".
	if year < 1000 || year > 9999 {
		return reason
	}

	// time.Date normalizes overflow (31 April becomes 1 May), so a round-trip
	// through it detects calendar-invalid values.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return reason
	}

	return nil
}

// PasswordStrength checks the minimum credential policy: at least eight
// characters with one uppercase letter, one lowercase letter and one digit.
func PasswordStrength(value string) error {
	if len(value) < minPasswordLength {
		return domainerrors.NewFieldError("password", "password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	switch {
	case !hasUpper:
		return domainerrors.NewFieldError("password", "password needs an uppercase letter")
	case !hasLower:
		return domainerrors.NewFieldError("password", "password needs a lowercase letter")
	case !hasDigit:
		return domainerrors.NewFieldError("password", "password needs a number")
	}

	return nil
}

// Customer validates a full customer submission in a fixed order: first name,
// last name, email, phone, service type, appointment date. The first failure
// wins; callers always see the error for the earliest-checked bad field.
func Customer(first, last, email, phone string, service entity.ServiceType, date string) error {
	if err := Name(first, "first name"); err != nil {
		return err
	}
	if err := Name(last, "last name"); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	if err := UKPhone(phone); err != nil {
		return err
	}
	if !service.IsValid() {
		return domainerrors.NewFieldError("service_type", "please select a service type")
	}

	return DateDDMMYYYY(date)
}

// Staff validates a staff submission in the same fixed order. Staff email is
// required, so an empty value fails here rather than in Email.
func Staff(first, last, email, phone string) error {
	if err := Name(first, "first name"); err != nil {
		return err
	}
	if err := Name(last, "last name"); err != nil {
		return err
	}
	if email == "" {
		return domainerrors.NewFieldError("email", "email is required for staff")
	}
	if err := Email(email); err != nil {
		return err
	}

	return UKPhone(phone)
}
