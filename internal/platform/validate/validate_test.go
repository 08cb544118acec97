// Copyright (c) 2026 TXSN. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txsn/navigator/internal/platform/apperr"
	"github.com/txsn/navigator/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "county", "Harris", false},
		{"empty_string", "county", "", true},
		{"whitespace_only", "county", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Zip checks the ZIP code format rule.
*/
func TestValidator_Zip(t *testing.T) {
	tests := []struct {
		name    string
		zip     string
		isValid bool
	}{
		{"five_digits", "77030", true},
		{"zip_plus_four", "77030-1234", true},
		{"empty_is_optional", "", true},
		{"too_short", "770", false},
		{"letters", "77O3O", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Zip("zip", tt.zip)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_OneOf checks the enumerated set rule.
*/
func TestValidator_OneOf(t *testing.T) {
	allowed := []string{"wrong_phone", "broken_link", "not_eligible", "closed", "other"}

	v := &validate.Validator{}
	v.OneOf("issue_type", "broken_link", allowed...)
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.OneOf("issue_type", "bad_value", allowed...)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("county", "Harris").
		MaxLen("county", "Harris", 80).
		Zip("zip", "77030").
		UUID("resource_id", "0190c2a4-67d1-7e9a-b7fb-1f2e3d4c5b6a").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("county", "").      // Fails
		Zip("zip", "abc").           // Fails
		UUID("resource_id", "nope"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
