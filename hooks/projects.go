package hooks

import (
	"context"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rpupo63/portfolio-sync/store"
)

type Projects struct {
	store *store.ProjectStore
}

func UseProjects(s *store.ProjectStore) Projects {
	return Projects{store: s}
}

func (h Projects) State() store.ProjectState {
	return h.store.State()
}

func (h Projects) Subscribe(fn func(store.ProjectState)) func() {
	return h.store.Subscribe(fn)
}

// Ensure fetches the project list on first use and returns the current state.
func (h Projects) Ensure(ctx context.Context) store.ProjectState {
	_ = h.EnsureLoaded(ctx)
	return h.store.State()
}

func (h Projects) EnsureLoaded(ctx context.Context) error {
	return h.store.EnsureProjects(ctx)
}

// Refresh always refetches the list.
func (h Projects) Refresh(ctx context.Context) store.Result[[]*models.Project] {
	return h.store.FetchProjects(ctx)
}

func (h Projects) Fetch(ctx context.Context, id string) store.Result[*models.Project] {
	return h.store.FetchProject(ctx, id)
}

func (h Projects) Create(ctx context.Context, project models.Project) store.Result[*models.Project] {
	return h.store.CreateProject(ctx, project)
}

func (h Projects) CreateWithFiles(ctx context.Context, upload models.ProjectUpload) store.Result[*models.Project] {
	return h.store.CreateProjectWithFiles(ctx, upload)
}

func (h Projects) Update(ctx context.Context, id string, patch models.ProjectPatch) store.Result[*models.Project] {
	return h.store.UpdateProject(ctx, id, patch)
}

func (h Projects) UpdateWithFiles(ctx context.Context, id string, upload models.ProjectUpload) store.Result[*models.Project] {
	return h.store.UpdateProjectWithFiles(ctx, id, upload)
}

func (h Projects) Delete(ctx context.Context, id string) store.Result[string] {
	return h.store.DeleteProject(ctx, id)
}

func (h Projects) Select(project *models.Project) {
	h.store.Select(project)
}

func (h Projects) ClearError() {
	h.store.ClearError()
}
