package cli

import (
	"io"

	"github.com/rpupo63/portfolio-sync/api"
	"github.com/rpupo63/portfolio-sync/config"
	"github.com/rpupo63/portfolio-sync/database"
	"github.com/rpupo63/portfolio-sync/hooks"
	"github.com/rpupo63/portfolio-sync/services"
	"github.com/rpupo63/portfolio-sync/store"
	"github.com/rs/zerolog/log"
)

// app wires one client session: persisted storage, the resource client,
// the services and a hook per resource.
type app struct {
	cfg      config.Client
	storage  database.Storage
	projects hooks.Projects
	skills   hooks.Skills
	settings hooks.Settings
	auth     *hooks.Auth
	theme    hooks.Theme
}

func (o *options) clientConfig() config.Client {
	cfg := config.LoadClient(o.env)
	if o.apiURL != "" {
		cfg.APIBaseURL = o.apiURL
	}
	if o.sessionPath != "" {
		cfg.SessionPath = o.sessionPath
	}
	return cfg
}

func (o *options) newApp(includeInactive bool) (*app, error) {
	cfg := o.clientConfig()

	storage, err := database.Open(cfg.SessionStore, cfg.SessionPath)
	if err != nil {
		return nil, err
	}
	db := database.New(storage)

	client := api.NewClient(cfg.APIBaseURL, db.SessionRepo(), api.WithTimeout(cfg.HTTPTimeout))
	log.Debug().Str("api", client.BaseURL()).Str("store", cfg.SessionStore).Msg("client configured")

	a := &app{
		cfg:      cfg,
		storage:  storage,
		projects: hooks.UseProjects(store.NewProjectStore(services.NewProjectService(client))),
		skills:   hooks.UseSkills(store.NewSkillStore(services.NewSkillService(client)), includeInactive),
		settings: hooks.UseSettings(store.NewSettingsStore(services.NewSiteSettingsService(client))),
		auth:     hooks.UseAuth(store.NewAuthStore(services.NewAuthService(client, db.SessionRepo()))),
		theme:    hooks.UseTheme(services.NewThemeService(db.ThemeRepo())),
	}
	return a, nil
}

func (a *app) Close() {
	if closer, ok := a.storage.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close session storage")
		}
	}
}
