package hooks

import "github.com/rpupo63/portfolio-sync/models"

// ThemeService reads and persists the theme preference.
// services.ThemeService satisfies it.
type ThemeService interface {
	Get() models.Theme
	Set(theme models.Theme) error
	Toggle() (models.Theme, error)
}

type Theme struct {
	service ThemeService
}

func UseTheme(service ThemeService) Theme {
	return Theme{service: service}
}

func (h Theme) Current() models.Theme {
	return h.service.Get()
}

func (h Theme) IsDark() bool {
	return h.service.Get() == models.ThemeDark
}

func (h Theme) Set(theme models.Theme) error {
	return h.service.Set(theme)
}

func (h Theme) Toggle() (models.Theme, error) {
	return h.service.Toggle()
}
