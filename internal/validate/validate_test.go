package validate

import (
	"testing"

	"salondesk/internal/domain/entity"
	domainerrors "salondesk/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple", "Jane", true},
		{"with space", "Mary Jane", true},
		{"hyphenated", "Smith-Jones", true},
		{"apostrophe", "O'Brien", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"digits", "Jane2", false},
		{"punctuation", "Jane!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Name(tt.value, "first name")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			}
		})
	}
}

func TestName_ReportsFieldLabel(t *testing.T) {
	err := Name("", "last name")
	require.Error(t, err)

	var fieldErr *domainerrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "last name", fieldErr.Field)
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"empty is valid", "", true},
		{"simple", "jane@example.com", true},
		{"dotted local part", "jane.doe@example.co.uk", true},
		{"missing at", "jane.example.com", false},
		{"missing tld", "jane@example", false},
		{"spaces", "jane doe@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUKPhone(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"empty is valid", "", true},
		{"mobile with space", "07123 456789", true},
		{"mobile without space", "07123456789", true},
		{"international", "+44 7123 456789", true},
		{"international no spaces", "+447123456789", true},
		{"landline", "01132 456789", true},
		{"landline short area", "0113 245678", true},
		{"landline wrong grouping", "020 1234567", false},
		{"too short", "0712345", false},
		{"letters", "07abc456789", false},
		{"us format", "555-123-4567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UKPhone(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDateDDMMYYYY(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"normal date", "15/03/2024", true},
		{"leap day in leap year", "29/02/2024", true},
		{"end of december", "31/12/2024", true},
		{"leap day outside leap year", "29/02/2023", false},
		{"day 31 in april", "31/04/2024", false},
		{"month 13", "15/13/2024", false},
		{"day zero", "00/03/2024", false},
		{"iso format", "2024-03-15", false},
		{"year zero", "15/03/0", false},
		{"two digit year", "15/03/24", false},
		{"negative year", "15/03/-2024", false},
		{"five digit year", "15/03/20245", false},
		{"two parts", "15/03", false},
		{"non numeric", "aa/bb/cccc", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DateDDMMYYYY(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		reason string
	}{
		{"acceptable", "Password1", ""},
		{"symbols allowed", "Passw0rd!", ""},
		{"too short", "Pw1", "password must be at least 8 characters"},
		{"no uppercase", "password1", "password needs an uppercase letter"},
		{"no lowercase", "PASSWORD1", "password needs a lowercase letter"},
		{"no digit", "Passwordd", "password needs a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PasswordStrength(tt.value)
			if tt.reason == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.reason, err.Error())
		})
	}
}

func TestCustomer_FirstFailureWins(t *testing.T) {
	// Both the first name and the date are bad; the first name is reported.
	err := Customer("", "Doe", "jane@example.com", "", entity.ServiceHaircut, "31/04/2024")
	require.Error(t, err)

	var fieldErr *domainerrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "first name", fieldErr.Field)
}

func TestCustomer_RejectsUnknownService(t *testing.T) {
	err := Customer("Jane", "Doe", "", "", entity.ServiceType("Massage"), "15/03/2024")
	require.Error(t, err)

	var fieldErr *domainerrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "service_type", fieldErr.Field)
}

func TestCustomer_Valid(t *testing.T) {
	err := Customer("Jane", "Doe", "jane@example.com", "07123 456789", entity.ServiceColour, "15/03/2024")
	assert.NoError(t, err)
}

func TestStaff_EmailRequired(t *testing.T) {
	err := Staff("Jane", "Doe", "", "")
	require.Error(t, err)

	var fieldErr *domainerrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "email", fieldErr.Field)
}

func TestStaff_Valid(t *testing.T) {
	assert.NoError(t, Staff("Jane", "Doe", "jane@example.com", ""))
	assert.NoError(t, Staff("Jane", "Doe", "jane@example.com", "07123 456789"))
}
