package services

import (
	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ThemeStore persists the theme preference. database.ThemeRepo satisfies it.
type ThemeStore interface {
	Find() (models.Theme, bool, error)
	Save(theme models.Theme) error
}

type ThemeService struct {
	themes ThemeStore
	logger zerolog.Logger
}

func NewThemeService(themes ThemeStore) *ThemeService {
	return &ThemeService{
		themes: themes,
		logger: log.With().Str("serviceName", "themeService").Logger(),
	}
}

// Get returns the stored theme, light when none is stored or it can't be read.
func (s *ThemeService) Get() models.Theme {
	theme, found, err := s.themes.Find()
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read theme")
	}
	if !found {
		return models.ThemeLight
	}
	return theme
}

func (s *ThemeService) Set(theme models.Theme) error {
	if !theme.Valid() {
		return errs.NewInvalidFieldError("theme", "must be dark or light")
	}
	return s.themes.Save(theme)
}

func (s *ThemeService) Toggle() (models.Theme, error) {
	current := s.Get()
	next := current.Toggle()
	if err := s.themes.Save(next); err != nil {
		return current, err
	}
	return next, nil
}
