package county

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListCounties returns all counties ordered by name, served from the cache
// when warm. Cache failures degrade to the database, never to an error.
func (service *Service) ListCounties(context context.Context) ([]County, error) {
	if service.cache != nil {
		cached, err := service.cache.GetCounties(context)
		if err != nil {
			service.logger.Warn("county_cache_read_failed", slog.Any("error", err))
		}
		if len(cached) > 0 {
			return cached, nil
		}
	}

	counties, err := service.repo.ListCounties(context)
	if err != nil {
		return nil, err
	}

	if service.cache != nil && len(counties) > 0 {
		if err := service.cache.SetCounties(context, counties); err != nil {
			service.logger.Warn("county_cache_write_failed", slog.Any("error", err))
		}
	}

	return counties, nil
}

// ListRegions returns the selectable region options derived from the county list.
func (service *Service) ListRegions(context context.Context) ([]string, error) {
	counties, err := service.ListCounties(context)
	if err != nil {
		return nil, err
	}
	return RegionOptions(counties), nil
}

// ResolveLocation derives the effective county/region from user input,
// loading the county list only when pick mode needs the region lookup.
func (service *Service) ResolveLocation(context context.Context, mode Mode, countyInput, regionInput string) (Location, error) {
	var counties []County

	if mode == ModePick {
		var err error
		counties, err = service.ListCounties(context)
		if err != nil {
			return Location{}, err
		}
	}

	return Resolve(mode, countyInput, regionInput, counties), nil
}
