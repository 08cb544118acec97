package preference_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txsn/navigator/internal/core/preference"
	"github.com/txsn/navigator/internal/platform/apperr"
)

type fakeStore struct {
	zips map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{zips: make(map[string]string)}
}

func (f *fakeStore) GetZip(_ context.Context, clientID string) (string, error) {
	return f.zips[clientID], nil
}

func (f *fakeStore) SetZip(_ context.Context, clientID, zip string) error {
	f.zips[clientID] = zip
	return nil
}

func (f *fakeStore) DeleteZip(_ context.Context, clientID string) error {
	delete(f.zips, clientID)
	return nil
}

func TestService_ZipRoundTrip(t *testing.T) {
	store := newFakeStore()
	service := preference.NewService(store, slog.Default())

	_, err := service.SetZip(context.Background(), "client-1", " 77030 ")
	require.NoError(t, err)

	pref, err := service.GetZip(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, "77030", pref.Zip)
}

func TestService_GetZip_MissingIsNotFound(t *testing.T) {
	service := preference.NewService(newFakeStore(), slog.Default())

	_, err := service.GetZip(context.Background(), "nobody")
	require.Error(t, err)

	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}

func TestService_SetZip_EmptyClears(t *testing.T) {
	store := newFakeStore()
	service := preference.NewService(store, slog.Default())

	_, err := service.SetZip(context.Background(), "client-1", "77030")
	require.NoError(t, err)

	_, err = service.SetZip(context.Background(), "client-1", "")
	require.NoError(t, err)

	_, err = service.GetZip(context.Background(), "client-1")
	assert.Error(t, err)
}

func TestService_SetZip_RejectsMalformed(t *testing.T) {
	service := preference.NewService(newFakeStore(), slog.Default())

	for _, bad := range []string{"7703", "77030-12", "abcde"} {
		_, err := service.SetZip(context.Background(), "client-1", bad)
		assert.Error(t, err, bad)
	}

	// ZIP+4 is accepted.
	_, err := service.SetZip(context.Background(), "client-1", "77030-1234")
	assert.NoError(t, err)
}
