package preference

import "context"

// Store defines the preference persistence contract.
type Store interface {
	// GetZip returns the remembered ZIP for a client, or "" when none is set.
	GetZip(context context.Context, clientID string) (string, error)

	// SetZip remembers a ZIP for a client, refreshing its expiry.
	SetZip(context context.Context, clientID, zip string) error

	// DeleteZip forgets a client's ZIP.
	DeleteZip(context context.Context, clientID string) error
}
