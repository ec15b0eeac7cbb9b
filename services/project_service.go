package services

import (
	"context"
	"net/url"

	"github.com/rpupo63/portfolio-sync/api"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ProjectService struct {
	client Requester
	logger zerolog.Logger
}

func NewProjectService(client Requester) *ProjectService {
	return &ProjectService{
		client: client,
		logger: log.With().Str("serviceName", "projectService").Logger(),
	}
}

func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	if err := s.client.Get(ctx, "/projects", &projects); err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to fetch projects")
	}
	return normalizeList(projects), nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := s.client.Get(ctx, projectPath(id), &project); err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to fetch project")
	}
	project.Normalize()
	return &project, nil
}

func (s *ProjectService) Create(ctx context.Context, project models.Project) (*models.Project, error) {
	var created models.Project
	if err := s.client.Post(ctx, "/projects", project, &created); err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to create project")
	}
	created.Normalize()
	return &created, nil
}

func (s *ProjectService) CreateWithFiles(ctx context.Context, upload models.ProjectUpload) (*models.Project, error) {
	var created models.Project
	if err := s.client.PostMultipart(ctx, "/projects/with-files", projectForm(upload, false), &created); err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to create project with files")
	}
	created.Normalize()
	return &created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	var updated models.Project
	if err := s.client.Put(ctx, projectPath(id), patch, &updated); err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to update project")
	}
	updated.Normalize()
	return &updated, nil
}

func (s *ProjectService) UpdateWithFiles(ctx context.Context, id string, upload models.ProjectUpload) (*models.Project, error) {
	var updated models.Project
	if err := s.client.PutMultipart(ctx, projectPath(id)+"/with-files", projectForm(upload, true), &updated); err != nil {
		return nil, wrapServiceError(s.logger, err, "Failed to update project with files")
	}
	updated.Normalize()
	return &updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, projectPath(id), nil); err != nil {
		return wrapServiceError(s.logger, err, "Failed to delete project")
	}
	return nil
}

func projectPath(id string) string {
	return "/projects/" + url.PathEscape(id)
}

// projectForm encodes an upload. Scalars go in as plain fields, the list
// fields as JSON, and media as repeated file parts. On update the lists of
// already-stored media to keep are always sent, empty meaning "keep none".
func projectForm(upload models.ProjectUpload, update bool) *api.Form {
	p := upload.Project
	form := api.NewForm().
		Field("title", p.Title).
		Field("description", p.Description).
		Field("longDescription", p.LongDescription).
		Field("category", p.Category).
		Field("completedDate", p.CompletedDate).
		JSONField("features", nonNil(p.Features)).
		JSONField("technologies", nonNil(p.Technologies))

	optional := []struct{ name, value string }{
		{"demoUrl", p.DemoURL},
		{"githubUrl", p.GithubURL},
		{"clientRemarks", p.ClientRemarks},
	}
	for _, field := range optional {
		if field.value != "" {
			form.Field(field.name, field.value)
		}
	}

	if update {
		form.JSONField("existingImages", nonNil(upload.ExistingImages)).
			JSONField("existingVideos", nonNil(upload.ExistingVideos))
	}

	if upload.MainImageFile != nil {
		form.File("mainImage", upload.MainImageFile.Name, upload.MainImageFile.Data)
	}
	for _, f := range upload.ImageFiles {
		form.File("images", f.Name, f.Data)
	}
	for _, f := range upload.VideoFiles {
		form.File("videos", f.Name, f.Data)
	}
	return form
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
