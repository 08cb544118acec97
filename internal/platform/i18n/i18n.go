// Copyright (c) 2026 TXSN. All rights reserved.

/*
Package i18n holds the bilingual (English/Spanish) string table for every
user-facing message the API emits.

The navigator serves Texas cancer survivors in both languages, so localized
copy is part of the API contract, not a client afterthought: rank labels,
empty-result notices, and hints travel in the response next to the data
they describe.
*/
package i18n

import (
	"net/http"
	"strings"
)

// Lang identifies one of the two supported locales.
type Lang string

const (
	// LangEN is English, the default locale.
	LangEN Lang = "en"
	// LangES is Spanish.
	LangES Lang = "es"
)

// Supported returns the locale codes the API accepts.
func Supported() []string {
	return []string{string(LangEN), string(LangES)}
}

// Message keys.
const (
	KeyRankLocalFinder = "rank_local_finder"
	KeyRankCounty      = "rank_county"
	KeyRankRegion      = "rank_region"
	KeyRankStatewide   = "rank_statewide"

	KeyNoticeNoResults    = "notice_no_results"
	KeyNoticeSearchFailed = "notice_search_failed"

	KeyHintNeedsZip = "hint_needs_zip"

	KeyFeedbackThanks = "feedback_thanks"

	KeyDeepSearchTitle = "deep_search_title"
	KeyDeepSearchBody  = "deep_search_body"
	KeyDeepSearchCall  = "deep_search_call"
	KeyDeepSearchOpen  = "deep_search_open"
)

var table = map[Lang]map[string]string{
	LangEN: {
		KeyRankLocalFinder: "Local finder",
		KeyRankCounty:      "Near you (county)",
		KeyRankRegion:      "Your region",
		KeyRankStatewide:   "Statewide",

		KeyNoticeNoResults:    "No matches found for this county/region yet. We’ll show statewide resources and local finders (directory tools).",
		KeyNoticeSearchFailed: "Search failed. Please try again later.",

		KeyHintNeedsZip: "Enter your ZIP code above to use this local finder.",

		KeyFeedbackThanks: "Thanks — your report was submitted.",

		KeyDeepSearchTitle: "Deep local search (Texas)",
		KeyDeepSearchBody:  "For county programs and local nonprofits, 2-1-1 Texas can locate services near you and tell you what documents you’ll need.",
		KeyDeepSearchCall:  "Call 2-1-1 Texas",
		KeyDeepSearchOpen:  "Open 2-1-1 Texas",
	},
	LangES: {
		KeyRankLocalFinder: "Buscador local",
		KeyRankCounty:      "Cerca (condado)",
		KeyRankRegion:      "Su región",
		KeyRankStatewide:   "Estatal",

		KeyNoticeNoResults:    "No encontramos coincidencias para este condado/región. Mostraremos recursos estatales y buscadores locales (directorios).",
		KeyNoticeSearchFailed: "La búsqueda falló. Inténtelo de nuevo más tarde.",

		KeyHintNeedsZip: "Ingrese su código postal arriba para usar este buscador local.",

		KeyFeedbackThanks: "Gracias. Su reporte fue enviado.",

		KeyDeepSearchTitle: "Búsqueda local profunda (Texas)",
		KeyDeepSearchBody:  "Para programas del condado y organizaciones locales, 2-1-1 Texas puede encontrar servicios cerca de usted e indicarle qué documentos necesita.",
		KeyDeepSearchCall:  "Llamar a 2-1-1 Texas",
		KeyDeepSearchOpen:  "Abrir 2-1-1 Texas",
	},
}

// T returns the localized string for key. Unknown locales fall back to
// English; unknown keys return the key itself so a missing entry is visible
// in the response rather than silently blank.
func T(lang Lang, key string) string {
	msgs, ok := table[lang]
	if !ok {
		msgs = table[LangEN]
	}
	if msg, ok := msgs[key]; ok {
		return msg
	}
	if msg, ok := table[LangEN][key]; ok {
		return msg
	}
	return key
}

// Parse normalizes a locale string to a supported [Lang], defaulting to English.
func Parse(s string) Lang {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(LangES):
		return LangES
	default:
		return LangEN
	}
}

// FromRequest negotiates the response language for an HTTP request.
//
// Precedence: explicit "lang" query parameter, then the first tag of the
// Accept-Language header, then English.
func FromRequest(request *http.Request) Lang {
	if q := request.URL.Query().Get("lang"); q != "" {
		return Parse(q)
	}

	accept := request.Header.Get("Accept-Language")
	if accept == "" {
		return LangEN
	}

	// Only the primary subtag matters for a two-locale app ("es-MX" → "es").
	first := strings.Split(accept, ",")[0]
	primary := strings.SplitN(strings.TrimSpace(first), "-", 2)[0]
	return Parse(primary)
}
