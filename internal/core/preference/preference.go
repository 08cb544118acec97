// Package preference remembers small per-client wizard settings, keyed by an
// anonymous client identifier the browser generates and sends as a header.
//
// Today that is a single setting: the ZIP code, so ZIP-gated local finders
// stay usable across sessions without any account.
package preference

// ZipPreference is the remembered ZIP for one anonymous client.
type ZipPreference struct {
	Zip string `json:"zip"`
}
