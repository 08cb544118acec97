// Copyright (c) 2026 TXSN. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/txsn/navigator/internal/platform/apperr"
	"github.com/txsn/navigator/internal/platform/constants"
	"github.com/txsn/navigator/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a named query-string parameter, trimmed of whitespace.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
ClientID returns the anonymous client identifier from the X-Client-ID header.

Returns:
  - string: Opaque client identifier
  - error: apperr.ValidationError if the header is absent
*/
func ClientID(request *http.Request) (string, error) {

	// Read and trim the header
	id := strings.TrimSpace(request.Header.Get(constants.HeaderXClientID))

	// The preferences surface is keyed by this value; without it there is
	// nothing to read or write.
	if id == "" {
		return "", apperr.ValidationError("Missing " + constants.HeaderXClientID + " header")
	}

	return id, nil
}
