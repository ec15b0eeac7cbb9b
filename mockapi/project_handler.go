package mockapi

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxUploadMemory = 32 << 20

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *DocumentRepo[models.Project]
}

func newProjectHandler(projectRepo *DocumentRepo[models.Project]) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.projectRepo.FindAll())
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.projectRepo.FindByID(chi.URLParam(r, "projectID"))
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := decodeJSON(r, &project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validateProject(project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created := h.projectRepo.Add(withEmptyLists(project))
		caller, _ := sessionFromCtx(r.Context())
		h.logger.Info().Str("projectID", created.RawID).Str("userID", caller.UserID).Msg("project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

func (h projectHandler) createProjectWithFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		project, err := projectFromForm(r.MultipartForm)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateProject(project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		uploadID := uuid.NewString()
		media, err := storeMedia(uploadID, r.MultipartForm)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if media.mainImage != "" {
			project.MainImage = media.mainImage
		}
		project.Images = append(project.Images, media.images...)
		project.Videos = append(project.Videos, media.videos...)

		created := h.projectRepo.Add(withEmptyLists(project))
		caller, _ := sessionFromCtx(r.Context())
		h.logger.Info().Str("projectID", created.RawID).Str("userID", caller.UserID).Int("uploads", len(r.MultipartForm.File)).Msg("project created with files")
		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ProjectPatch
		if err := decodeJSON(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		updated, ok, _ := h.projectRepo.Update(chi.URLParam(r, "projectID"), func(p *models.Project) error {
			patch.Apply(p)
			return nil
		})
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h projectHandler) updateProjectWithFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		incoming, err := projectFromForm(r.MultipartForm)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateProject(incoming); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var keepImages, keepVideos []string
		if err := formJSON(r.MultipartForm, "existingImages", &keepImages); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := formJSON(r.MultipartForm, "existingVideos", &keepVideos); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projectID := chi.URLParam(r, "projectID")
		media, err := storeMedia(projectID, r.MultipartForm)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, ok, _ := h.projectRepo.Update(projectID, func(p *models.Project) error {
			mainImage := p.MainImage
			if media.mainImage != "" {
				mainImage = media.mainImage
			}
			*p = incoming
			p.MainImage = mainImage
			p.Images = append(retained(keepImages), media.images...)
			p.Videos = append(retained(keepVideos), media.videos...)
			return nil
		})
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.projectRepo.Delete(chi.URLParam(r, "projectID")) {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}
		h.responder.WriteMessage(w, "Project deleted successfully")
	}
}

func validateProject(p models.Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	return nil
}

func withEmptyLists(p models.Project) models.Project {
	p.Features = retained(p.Features)
	p.Technologies = retained(p.Technologies)
	p.Images = retained(p.Images)
	return p
}

func retained(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func projectFromForm(form *multipart.Form) (models.Project, error) {
	value := func(name string) string {
		if values := form.Value[name]; len(values) > 0 {
			return values[0]
		}
		return ""
	}

	p := models.Project{
		Title:           value("title"),
		Description:     value("description"),
		LongDescription: value("longDescription"),
		Category:        value("category"),
		CompletedDate:   value("completedDate"),
		DemoURL:         value("demoUrl"),
		GithubURL:       value("githubUrl"),
		ClientRemarks:   value("clientRemarks"),
	}
	if err := formJSON(form, "features", &p.Features); err != nil {
		return p, err
	}
	if err := formJSON(form, "technologies", &p.Technologies); err != nil {
		return p, err
	}
	return p, nil
}

// formJSON decodes a JSON-encoded text field; a missing field leaves dst alone.
func formJSON(form *multipart.Form, name string, dst any) error {
	values := form.Value[name]
	if len(values) == 0 || values[0] == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(values[0]), dst); err != nil {
		return errs.NewInvalidFieldError(name, "must be a JSON array")
	}
	return nil
}

type storedMedia struct {
	mainImage string
	images    []string
	videos    []string
}

// storeMedia turns the uploaded parts into public URLs. The bytes
// themselves are not kept.
func storeMedia(ownerID string, form *multipart.Form) (storedMedia, error) {
	var media storedMedia

	if files := form.File["mainImage"]; len(files) > 0 {
		if err := requireImage(files[0]); err != nil {
			return media, err
		}
		media.mainImage = uploadURL(ownerID, files[0].Filename)
	}
	for _, file := range form.File["images"] {
		if err := requireImage(file); err != nil {
			return media, err
		}
		media.images = append(media.images, uploadURL(ownerID, file.Filename))
	}
	for _, file := range form.File["videos"] {
		media.videos = append(media.videos, uploadURL(ownerID, file.Filename))
	}
	return media, nil
}

func requireImage(header *multipart.FileHeader) error {
	file, err := header.Open()
	if err != nil {
		return errs.NewBadRequestError("unreadable upload")
	}
	defer file.Close()

	head := make([]byte, 261)
	n, _ := file.Read(head)
	if !filetype.IsImage(head[:n]) {
		return errs.NewInvalidFieldError(header.Filename, "not an image")
	}
	return nil
}

func uploadURL(ownerID, filename string) string {
	return fmt.Sprintf("/uploads/%s/%s", ownerID, filename)
}
