package database

import (
	"github.com/rpupo63/portfolio-sync/models"
)

type ThemeRepo struct {
	storage Storage
}

func NewThemeRepo(storage Storage) *ThemeRepo {
	return &ThemeRepo{storage}
}

// Find returns the persisted theme, or false when none was stored
// or the stored value is not a known theme.
func (r *ThemeRepo) Find() (models.Theme, bool, error) {
	var theme models.Theme
	found, err := r.storage.Get(KeyTheme, &theme)
	if err != nil || !found || !theme.Valid() {
		return "", false, err
	}
	return theme, true, nil
}

func (r *ThemeRepo) Save(theme models.Theme) error {
	return r.storage.Set(KeyTheme, theme)
}
