// Copyright (c) 2026 TXSN. All rights reserved.

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/txsn/navigator/pkg/normalize"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Harris", "harris"},
		{"strips_accents", "región", "region"},
		{"mixed", "Atención al Paciente", "atencion al paciente"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Fold(tt.in))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, normalize.Contains("Su región de servicio", "region"))
	assert.True(t, normalize.Contains("English, Spanish", "SPANISH"))
	assert.False(t, normalize.Contains("Transportation", "meds"))
}

func TestEqual(t *testing.T) {
	assert.True(t, normalize.Equal("BEXAR", "Bexar"))
	assert.True(t, normalize.Equal("región", "REGION"))
	assert.False(t, normalize.Equal("Harris", "Travis"))
}
