package store

import (
	"context"

	"github.com/rpupo63/portfolio-sync/models"
	"golang.org/x/sync/singleflight"
)

type SiteSettingsService interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, settings models.SiteSettings) (*models.SiteSettings, error)
}

// SettingsState always holds a complete record: the defaults until the
// first successful fetch.
type SettingsState struct {
	Settings      models.SiteSettings
	LoadRequested bool
	Lifecycle
}

type SettingsStore struct {
	m       *machine[SettingsState]
	service SiteSettingsService
	group   singleflight.Group
}

func NewSettingsStore(service SiteSettingsService) *SettingsStore {
	return &SettingsStore{
		m:       newMachine(SettingsState{Settings: models.DefaultSiteSettings()}),
		service: service,
	}
}

func (s *SettingsStore) State() SettingsState {
	return s.m.snapshot()
}

func (s *SettingsStore) Subscribe(fn func(SettingsState)) func() {
	return s.m.subscribe(fn)
}

func (s *SettingsStore) FetchSettings(ctx context.Context) Result[*models.SiteSettings] {
	return dispatch(ctx, s.m, reduceFetchSettings, s.service.Get)
}

func (s *SettingsStore) UpdateSettings(ctx context.Context, settings models.SiteSettings) Result[*models.SiteSettings] {
	return dispatch(ctx, s.m, reduceUpdateSettings, func(ctx context.Context) (*models.SiteSettings, error) {
		return s.service.Update(ctx, settings)
	})
}

func (s *SettingsStore) ClearError() {
	s.m.apply(func(st SettingsState) SettingsState {
		st.Error = ""
		return st
	})
}

func (s *SettingsStore) EnsureSettings(ctx context.Context) error {
	_, err, _ := s.group.Do("settings", func() (any, error) {
		if s.State().LoadRequested {
			return nil, nil
		}
		return nil, s.FetchSettings(ctx).Error()
	})
	return err
}

func reduceFetchSettings(s SettingsState, r Result[*models.SiteSettings]) SettingsState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, false, r)
	switch r.Status {
	case Pending:
		s.LoadRequested = true
	case Fulfilled:
		if r.Value != nil {
			s.Settings = *r.Value
		}
	}
	return s
}

func reduceUpdateSettings(s SettingsState, r Result[*models.SiteSettings]) SettingsState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, true, r)
	if r.OK() && r.Value != nil {
		s.Settings = *r.Value
	}
	return s
}
