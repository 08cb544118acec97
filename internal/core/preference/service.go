package preference

import (
	"context"
	"log/slog"
	"strings"

	"github.com/txsn/navigator/internal/platform/apperr"
	"github.com/txsn/navigator/internal/platform/validate"
)

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetZip returns the remembered ZIP for a client.
func (service *Service) GetZip(context context.Context, clientID string) (*ZipPreference, error) {
	zip, err := service.store.GetZip(context, clientID)
	if err != nil {
		return nil, err
	}
	if zip == "" {
		return nil, apperr.NotFound("ZIP preference")
	}
	return &ZipPreference{Zip: zip}, nil
}

// SetZip validates and remembers a client's ZIP. An empty ZIP clears the
// preference instead.
func (service *Service) SetZip(context context.Context, clientID, zip string) (*ZipPreference, error) {
	zip = strings.TrimSpace(zip)

	if zip == "" {
		if err := service.store.DeleteZip(context, clientID); err != nil {
			return nil, err
		}
		return &ZipPreference{}, nil
	}

	v := &validate.Validator{}
	if err := v.Zip("zip", zip).Err(); err != nil {
		return nil, err
	}

	if err := service.store.SetZip(context, clientID, zip); err != nil {
		return nil, err
	}

	return &ZipPreference{Zip: zip}, nil
}
