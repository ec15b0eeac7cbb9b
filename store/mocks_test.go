package store

import (
	"context"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/stretchr/testify/mock"
)

type mockProjectService struct{ mock.Mock }

func (m *mockProjectService) List(ctx context.Context) ([]*models.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]*models.Project)
	return projects, args.Error(1)
}

func (m *mockProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	args := m.Called(ctx, id)
	project, _ := args.Get(0).(*models.Project)
	return project, args.Error(1)
}

func (m *mockProjectService) Create(ctx context.Context, project models.Project) (*models.Project, error) {
	args := m.Called(ctx, project)
	created, _ := args.Get(0).(*models.Project)
	return created, args.Error(1)
}

func (m *mockProjectService) CreateWithFiles(ctx context.Context, upload models.ProjectUpload) (*models.Project, error) {
	args := m.Called(ctx, upload)
	created, _ := args.Get(0).(*models.Project)
	return created, args.Error(1)
}

func (m *mockProjectService) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	args := m.Called(ctx, id, patch)
	updated, _ := args.Get(0).(*models.Project)
	return updated, args.Error(1)
}

func (m *mockProjectService) UpdateWithFiles(ctx context.Context, id string, upload models.ProjectUpload) (*models.Project, error) {
	args := m.Called(ctx, id, upload)
	updated, _ := args.Get(0).(*models.Project)
	return updated, args.Error(1)
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockSkillService struct{ mock.Mock }

func (m *mockSkillService) category(args mock.Arguments) (*models.SkillCategory, error) {
	category, _ := args.Get(0).(*models.SkillCategory)
	return category, args.Error(1)
}

func (m *mockSkillService) List(ctx context.Context, includeInactive bool) ([]*models.SkillCategory, error) {
	args := m.Called(ctx, includeInactive)
	categories, _ := args.Get(0).([]*models.SkillCategory)
	return categories, args.Error(1)
}

func (m *mockSkillService) GetByID(ctx context.Context, id string) (*models.SkillCategory, error) {
	return m.category(m.Called(ctx, id))
}

func (m *mockSkillService) Create(ctx context.Context, category models.SkillCategory) (*models.SkillCategory, error) {
	return m.category(m.Called(ctx, category))
}

func (m *mockSkillService) CreateDirect(ctx context.Context, category models.SkillCategory) (*models.SkillCategory, error) {
	return m.category(m.Called(ctx, category))
}

func (m *mockSkillService) Update(ctx context.Context, id string, patch models.SkillCategoryPatch) (*models.SkillCategory, error) {
	return m.category(m.Called(ctx, id, patch))
}

func (m *mockSkillService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSkillService) AddItem(ctx context.Context, categoryID string, item models.SkillItem) (*models.SkillCategory, error) {
	return m.category(m.Called(ctx, categoryID, item))
}

func (m *mockSkillService) UpdateItem(ctx context.Context, categoryID, itemID string, patch models.SkillItemPatch) (*models.SkillCategory, error) {
	return m.category(m.Called(ctx, categoryID, itemID, patch))
}

func (m *mockSkillService) DeleteItem(ctx context.Context, categoryID, itemID string) (*models.SkillCategory, error) {
	return m.category(m.Called(ctx, categoryID, itemID))
}

func (m *mockSkillService) Reorder(ctx context.Context, entries []models.ReorderEntry) ([]*models.SkillCategory, error) {
	args := m.Called(ctx, entries)
	categories, _ := args.Get(0).([]*models.SkillCategory)
	return categories, args.Error(1)
}

type mockSettingsService struct{ mock.Mock }

func (m *mockSettingsService) Get(ctx context.Context) (*models.SiteSettings, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).(*models.SiteSettings)
	return settings, args.Error(1)
}

func (m *mockSettingsService) Update(ctx context.Context, settings models.SiteSettings) (*models.SiteSettings, error) {
	args := m.Called(ctx, settings)
	updated, _ := args.Get(0).(*models.SiteSettings)
	return updated, args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error) {
	args := m.Called(ctx, credentials)
	resp, _ := args.Get(0).(*models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Register(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error) {
	args := m.Called(ctx, credentials)
	resp, _ := args.Get(0).(*models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Logout() error {
	return m.Called().Error(0)
}

func (m *mockAuthService) CurrentUser() (*models.User, error) {
	args := m.Called()
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockAuthService) Token() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func project(id, title string) *models.Project {
	return &models.Project{WireID: models.WireID{ID: id}, Title: title}
}

func category(id, label string) *models.SkillCategory {
	return &models.SkillCategory{WireID: models.WireID{ID: id}, Category: label}
}
