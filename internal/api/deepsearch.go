// Copyright (c) 2026 TXSN. All rights reserved.

package api

import (
	"net/http"

	"github.com/txsn/navigator/internal/platform/constants"
	"github.com/txsn/navigator/internal/platform/i18n"
	"github.com/txsn/navigator/internal/platform/respond"
)

// deepSearchCard is the localized 2-1-1 Texas referral card shown beneath
// every result list. It is static content, so the handler lives here rather
// than in a domain package.
type deepSearchCard struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	CallLabel string `json:"call_label"`
	CallURL   string `json:"call_url"`
	OpenLabel string `json:"open_label"`
	OpenURL   string `json:"open_url"`
}

/*
GET /api/v1/deepsearch.

Request:
  - lang: en | es (also negotiated from Accept-Language)

Response:
  - 200: the localized 2-1-1 Texas card
*/
func deepSearch(writer http.ResponseWriter, request *http.Request) {
	lang := i18n.FromRequest(request)

	respond.OK(writer, deepSearchCard{
		Title:     i18n.T(lang, i18n.KeyDeepSearchTitle),
		Body:      i18n.T(lang, i18n.KeyDeepSearchBody),
		CallLabel: i18n.T(lang, i18n.KeyDeepSearchCall),
		CallURL:   "tel:" + constants.DeepSearchPhone,
		OpenLabel: i18n.T(lang, i18n.KeyDeepSearchOpen),
		OpenURL:   constants.DeepSearchURL,
	})
}
