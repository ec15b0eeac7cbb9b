package hooks

import (
	"context"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rpupo63/portfolio-sync/store"
)

type Settings struct {
	store *store.SettingsStore
}

func UseSettings(s *store.SettingsStore) Settings {
	return Settings{store: s}
}

func (h Settings) State() store.SettingsState {
	return h.store.State()
}

func (h Settings) Subscribe(fn func(store.SettingsState)) func() {
	return h.store.Subscribe(fn)
}

func (h Settings) Ensure(ctx context.Context) store.SettingsState {
	_ = h.EnsureLoaded(ctx)
	return h.store.State()
}

func (h Settings) EnsureLoaded(ctx context.Context) error {
	return h.store.EnsureSettings(ctx)
}

func (h Settings) Refresh(ctx context.Context) store.Result[*models.SiteSettings] {
	return h.store.FetchSettings(ctx)
}

func (h Settings) Update(ctx context.Context, settings models.SiteSettings) store.Result[*models.SiteSettings] {
	return h.store.UpdateSettings(ctx, settings)
}

func (h Settings) ClearError() {
	h.store.ClearError()
}
