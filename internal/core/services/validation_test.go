package services_test

import (
	"testing"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	"github.com/SscSPs/banking_portal/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"0", false},
		{"-100", false},
		{"150", false},
		{"99.99", false},
		{"100", true},
		{"2500", true},
		{"100000", true},
		{"100000.01", false},
		{"100100", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := services.ValidateAmount(dec(tt.amount))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
		})
	}
}

func TestValidatePinFormat(t *testing.T) {
	for _, pin := range []string{"0000", "1234", "9876"} {
		assert.NoError(t, services.ValidatePinFormat(pin), pin)
	}
	for _, pin := range []string{"", "123", "12345", "12a4", " 123", "١٢٣٤"} {
		assert.ErrorIs(t, services.ValidatePinFormat(pin), apperrors.ErrInvalidPin, pin)
	}
}

func TestValidateLoanAmount(t *testing.T) {
	assert.NoError(t, services.ValidateLoanAmount(dec("0.01")))
	assert.NoError(t, services.ValidateLoanAmount(dec("2500.50")))
	assert.ErrorIs(t, services.ValidateLoanAmount(dec("0")), apperrors.ErrInvalidAmount)
	assert.ErrorIs(t, services.ValidateLoanAmount(dec("-5")), apperrors.ErrInvalidAmount)
	assert.ErrorIs(t, services.ValidateLoanAmount(dec("1.001")), apperrors.ErrInvalidAmount)
}
