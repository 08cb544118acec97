// Copyright (c) 2026 TXSN. All rights reserved.

package i18n_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/txsn/navigator/internal/platform/i18n"
)

func TestT_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Statewide", i18n.T(i18n.LangEN, i18n.KeyRankStatewide))
	assert.Equal(t, "Estatal", i18n.T(i18n.LangES, i18n.KeyRankStatewide))

	// Unknown locale falls back to English.
	assert.Equal(t, "Statewide", i18n.T(i18n.Lang("fr"), i18n.KeyRankStatewide))

	// Unknown key is returned verbatim so the gap is visible.
	assert.Equal(t, "nope", i18n.T(i18n.LangEN, "nope"))
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		accept string
		want   i18n.Lang
	}{
		{"query_param_wins", "/x?lang=es", "en-US", i18n.LangES},
		{"accept_language", "/x", "es-MX,es;q=0.9", i18n.LangES},
		{"default_english", "/x", "", i18n.LangEN},
		{"unsupported_defaults", "/x?lang=de", "", i18n.LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.query, nil)
			if tt.accept != "" {
				request.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.want, i18n.FromRequest(request))
		})
	}
}
