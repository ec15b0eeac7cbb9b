package services

import (
	"context"

	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type SiteSettingsService struct {
	client Requester
	logger zerolog.Logger
}

func NewSiteSettingsService(client Requester) *SiteSettingsService {
	return &SiteSettingsService{
		client: client,
		logger: log.With().Str("serviceName", "siteSettingsService").Logger(),
	}
}

// Get returns the stored settings. When none exist yet the server answers
// 404 and the default record is returned instead, without error.
func (s *SiteSettingsService) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.client.Get(ctx, "/site-settings", &settings)
	if errs.IsNotFound(err) {
		s.logger.Debug().Msg("no site settings stored, using defaults")
		defaults := models.DefaultSiteSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to fetch site settings")
	}
	settings.Normalize()
	return &settings, nil
}

func (s *SiteSettingsService) Update(ctx context.Context, settings models.SiteSettings) (*models.SiteSettings, error) {
	settings.WireID = models.WireID{}

	var updated models.SiteSettings
	if err := s.client.Put(ctx, "/site-settings", settings, &updated); err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to update site settings")
	}
	updated.Normalize()
	return &updated, nil
}
