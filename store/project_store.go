package store

import (
	"context"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ProjectService is what ProjectStore needs from services.ProjectService.
type ProjectService interface {
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project models.Project) (*models.Project, error)
	CreateWithFiles(ctx context.Context, upload models.ProjectUpload) (*models.Project, error)
	Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error)
	UpdateWithFiles(ctx context.Context, id string, upload models.ProjectUpload) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectState struct {
	Projects []*models.Project
	Selected *models.Project
	// LoadRequested is set once a list fetch has started; Ensure skips the
	// fetch while it is set.
	LoadRequested bool
	Lifecycle
}

type ProjectStore struct {
	m       *machine[ProjectState]
	service ProjectService
	group   singleflight.Group
	logger  zerolog.Logger
}

func NewProjectStore(service ProjectService) *ProjectStore {
	return &ProjectStore{
		m:       newMachine(ProjectState{Projects: []*models.Project{}}),
		service: service,
		logger:  log.With().Str("serviceName", "projectStore").Logger(),
	}
}

func (s *ProjectStore) State() ProjectState {
	return s.m.snapshot()
}

func (s *ProjectStore) Subscribe(fn func(ProjectState)) func() {
	return s.m.subscribe(fn)
}

func (s *ProjectStore) FetchProjects(ctx context.Context) Result[[]*models.Project] {
	return dispatch(ctx, s.m, reduceFetchProjects, s.service.List)
}

func (s *ProjectStore) FetchProject(ctx context.Context, id string) Result[*models.Project] {
	return dispatch(ctx, s.m, reduceFetchProject, func(ctx context.Context) (*models.Project, error) {
		return s.service.GetByID(ctx, id)
	})
}

func (s *ProjectStore) CreateProject(ctx context.Context, project models.Project) Result[*models.Project] {
	return dispatch(ctx, s.m, reduceCreateProject, func(ctx context.Context) (*models.Project, error) {
		return s.service.Create(ctx, project)
	})
}

func (s *ProjectStore) CreateProjectWithFiles(ctx context.Context, upload models.ProjectUpload) Result[*models.Project] {
	return dispatch(ctx, s.m, reduceCreateProject, func(ctx context.Context) (*models.Project, error) {
		return s.service.CreateWithFiles(ctx, upload)
	})
}

func (s *ProjectStore) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) Result[*models.Project] {
	result := dispatch(ctx, s.m, reduceUpdateProject, func(ctx context.Context) (*models.Project, error) {
		return s.service.Update(ctx, id, patch)
	})
	s.logUnknown(result)
	return result
}

func (s *ProjectStore) UpdateProjectWithFiles(ctx context.Context, id string, upload models.ProjectUpload) Result[*models.Project] {
	result := dispatch(ctx, s.m, reduceUpdateProject, func(ctx context.Context) (*models.Project, error) {
		return s.service.UpdateWithFiles(ctx, id, upload)
	})
	s.logUnknown(result)
	return result
}

// DeleteProject resolves to the deleted id.
func (s *ProjectStore) DeleteProject(ctx context.Context, id string) Result[string] {
	return dispatch(ctx, s.m, reduceDeleteProject, func(ctx context.Context) (string, error) {
		return id, s.service.Delete(ctx, id)
	})
}

// Select sets the current project; nil clears it.
func (s *ProjectStore) Select(project *models.Project) {
	s.m.apply(func(st ProjectState) ProjectState {
		st.Selected = project
		return st
	})
}

func (s *ProjectStore) ClearError() {
	s.m.apply(func(st ProjectState) ProjectState {
		st.Error = ""
		return st
	})
}

// EnsureProjects fetches the list unless a fetch was already requested or
// projects are already present. Concurrent callers share one fetch.
func (s *ProjectStore) EnsureProjects(ctx context.Context) error {
	_, err, _ := s.group.Do("projects", func() (any, error) {
		if st := s.State(); st.LoadRequested || len(st.Projects) > 0 {
			return nil, nil
		}
		return nil, s.FetchProjects(ctx).Error()
	})
	return err
}

func (s *ProjectStore) logUnknown(result Result[*models.Project]) {
	if result.OK() && !containsID(s.State().Projects, result.Value.ID) {
		s.logger.Debug().Str("projectID", result.Value.ID).Msg("updated project is not in the loaded collection")
	}
}

func reduceFetchProjects(s ProjectState, r Result[[]*models.Project]) ProjectState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, false, r)
	switch r.Status {
	case Pending:
		s.LoadRequested = true
	case Fulfilled:
		s.Projects = r.Value
		if s.Projects == nil {
			s.Projects = []*models.Project{}
		}
	}
	return s
}

func reduceFetchProject(s ProjectState, r Result[*models.Project]) ProjectState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, false, r)
	if r.OK() {
		s.Selected = r.Value
	}
	return s
}

func reduceCreateProject(s ProjectState, r Result[*models.Project]) ProjectState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, true, r)
	if r.OK() {
		s.Projects = appendItem(s.Projects, r.Value)
	}
	return s
}

func reduceUpdateProject(s ProjectState, r Result[*models.Project]) ProjectState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, true, r)
	if r.OK() {
		s.Projects = replaceByID(s.Projects, r.Value)
		if s.Selected != nil && s.Selected.ID == r.Value.ID {
			s.Selected = r.Value
		}
	}
	return s
}

func reduceDeleteProject(s ProjectState, r Result[string]) ProjectState {
	s.Lifecycle = reduceLifecycle(s.Lifecycle, true, r)
	if r.OK() {
		s.Projects = removeByID(s.Projects, r.Value)
		if s.Selected != nil && s.Selected.ID == r.Value {
			s.Selected = nil
		}
	}
	return s
}
