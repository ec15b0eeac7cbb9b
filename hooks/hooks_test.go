package hooks

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rpupo63/portfolio-sync/api"
	"github.com/rpupo63/portfolio-sync/config"
	"github.com/rpupo63/portfolio-sync/database"
	"github.com/rpupo63/portfolio-sync/mockapi"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rpupo63/portfolio-sync/services"
	"github.com/rpupo63/portfolio-sync/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "hunter22"
)

type stack struct {
	backend  *mockapi.Store
	db       database.Database
	projects Projects
	skills   Skills
	settings Settings
	auth     *Auth
	theme    Theme
}

func newStack(t *testing.T) *stack {
	t.Helper()

	backend := mockapi.NewStore()
	cfg := config.LoadMockServer(map[string]string{
		"ADMIN_EMAIL":    adminEmail,
		"ADMIN_PASSWORD": adminPassword,
	})
	srv := httptest.NewServer(mockapi.NewRouter(backend, mockapi.WithConfig(cfg)))
	t.Cleanup(srv.Close)

	db := database.New(database.NewMemoryStorage())
	client := api.NewClient(srv.URL, db.SessionRepo())

	return &stack{
		backend:  backend,
		db:       db,
		projects: UseProjects(store.NewProjectStore(services.NewProjectService(client))),
		skills:   UseSkills(store.NewSkillStore(services.NewSkillService(client)), false),
		settings: UseSettings(store.NewSettingsStore(services.NewSiteSettingsService(client))),
		auth:     UseAuth(store.NewAuthStore(services.NewAuthService(client, db.SessionRepo()))),
		theme:    UseTheme(services.NewThemeService(db.ThemeRepo())),
	}
}

func TestEnsureLoadsOnceUntilRefresh(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	s.backend.Projects.Add(models.Project{Title: "Portfolio"})

	st := s.projects.Ensure(ctx)
	require.Len(t, st.Projects, 1)
	assert.NotEmpty(t, st.Projects[0].ID)

	s.backend.Projects.Add(models.Project{Title: "Compiler"})
	assert.Len(t, s.projects.Ensure(ctx).Projects, 1)

	require.True(t, s.projects.Refresh(ctx).OK())
	assert.Len(t, s.projects.State().Projects, 2)
}

func TestAuthSessionDrivesMutations(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)

	assert.False(t, s.auth.Ensure(ctx).IsAuthenticated)

	denied := s.projects.Create(ctx, models.Project{Title: "Nope"})
	assert.Equal(t, store.Rejected, denied.Status)
	assert.Equal(t, "Missing access token", denied.Err)

	login := s.auth.Login(ctx, models.Credentials{Email: adminEmail, Password: adminPassword})
	require.True(t, login.OK(), login.Err)
	assert.True(t, s.auth.State().IsAuthenticated)

	created := s.projects.Create(ctx, models.Project{Title: "Portfolio"})
	require.True(t, created.OK(), created.Err)
	assert.Equal(t, "", s.projects.State().Error)

	// a fresh auth hook over the same storage restores the session
	restored := UseAuth(store.NewAuthStore(services.NewAuthService(nil, s.db.SessionRepo())))
	assert.True(t, restored.Ensure(ctx).IsAuthenticated)

	s.auth.Logout()
	assert.False(t, s.auth.State().IsAuthenticated)
}

func TestSettingsDefaultUntilSaved(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)

	st := s.settings.Ensure(ctx)
	assert.Equal(t, "", st.Error)
	assert.Equal(t, models.DefaultSiteSettings().Name, st.Settings.Name)
}

func TestSkillsCreateDirectThroughHook(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	require.True(t, s.auth.Login(ctx, models.Credentials{Email: adminEmail, Password: adminPassword}).OK())
	s.skills.Ensure(ctx)

	first := s.skills.CreateDirect(ctx, models.SkillCategory{Category: "Backend", IsActive: true})
	require.True(t, first.OK(), first.Err)
	second := s.skills.CreateDirect(ctx, models.SkillCategory{Category: "Backend", IsActive: true, Color: "blue"})
	require.True(t, second.OK(), second.Err)

	categories := s.skills.State().Categories
	require.Len(t, categories, 1)
	assert.Equal(t, "blue", categories[0].Color)
}

func TestThemeToggle(t *testing.T) {
	s := newStack(t)

	assert.False(t, s.theme.IsDark())
	next, err := s.theme.Toggle()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, next)
	assert.True(t, s.theme.IsDark())
	assert.Error(t, s.theme.Set(models.Theme("sepia")))
}

type countingLoader struct {
	calls atomic.Int32
	err   error
}

func (l *countingLoader) EnsureLoaded(context.Context) error {
	l.calls.Add(1)
	return l.err
}

func TestPreload(t *testing.T) {
	ctx := context.Background()
	ok := &countingLoader{}
	failing := &countingLoader{err: errors.New("Failed to fetch projects")}

	err := Preload(ctx, ok, failing, nil)
	assert.EqualError(t, err, "Failed to fetch projects")
	assert.EqualValues(t, 1, ok.calls.Load())
	assert.EqualValues(t, 1, failing.calls.Load())

	s := newStack(t)
	require.NoError(t, Preload(ctx, s.projects, s.skills, s.settings, s.auth))
	assert.True(t, s.projects.State().LoadRequested)
	assert.True(t, s.skills.State().LoadRequested)
	assert.True(t, s.settings.State().LoadRequested)
}
