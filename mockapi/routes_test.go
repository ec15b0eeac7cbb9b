package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-sync/config"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t     *testing.T
	srv   *httptest.Server
	token string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	cfg := config.LoadMockServer(map[string]string{
		"ADMIN_EMAIL":    "admin@example.com",
		"ADMIN_PASSWORD": "hunter22",
	})
	srv := httptest.NewServer(NewRouter(NewStore(), WithConfig(cfg)))
	t.Cleanup(srv.Close)
	return &testAPI{t: t, srv: srv}
}

func (a *testAPI) do(method, path string, body any, dst any) int {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, a.srv.URL+path, reader)
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	if dst != nil {
		require.NoError(a.t, json.NewDecoder(resp.Body).Decode(dst))
	}
	return resp.StatusCode
}

func (a *testAPI) login() {
	var resp models.AuthResponse
	status := a.do(http.MethodPost, "/auth/login", models.Credentials{Email: "admin@example.com", Password: "hunter22"}, &resp)
	require.Equal(a.t, http.StatusOK, status)
	a.token = resp.Token
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	var body map[string]any
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/health", nil, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestWritesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	var errBody ErrorResponse
	status := api.do(http.MethodPost, "/projects", models.Project{Title: "Site"}, &errBody)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Missing access token", errBody.Message)

	api.token = "garbage"
	status = api.do(http.MethodPost, "/projects", models.Project{Title: "Site"}, &errBody)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid access token", errBody.Message)
}

func TestExpiredTokenRejected(t *testing.T) {
	api := newTestAPI(t)
	issuer := tokenIssuer{secret: []byte(config.LoadMockServer(nil).JWTSecret), ttl: -time.Hour}
	token, err := issuer.Issue(account{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	api.token = token
	var errBody ErrorResponse
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodDelete, "/projects/x", nil, &errBody))
	assert.Equal(t, "Access token has expired", errBody.Message)
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t)

	var resp models.AuthResponse
	status := api.do(http.MethodPost, "/auth/register", models.Credentials{Email: "new@example.com", Password: "secret1"}, &resp)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.RawID)
	assert.Equal(t, "new@example.com", resp.User.Email)

	var errBody ErrorResponse
	status = api.do(http.MethodPost, "/auth/register", models.Credentials{Email: "NEW@example.com", Password: "secret1"}, &errBody)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "User already exists", errBody.Message)

	status = api.do(http.MethodPost, "/auth/login", models.Credentials{Email: "new@example.com", Password: "wrong!"}, &errBody)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", errBody.Message)

	status = api.do(http.MethodPost, "/auth/register", models.Credentials{Email: "x@example.com", Password: "123"}, &errBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "password", errBody.Field)
}

func TestProjectCRUD(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var list []models.Project
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/projects", nil, &list))
	assert.Empty(t, list)

	var created models.Project
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/projects", models.Project{Title: "Site", Category: "web"}, &created))
	assert.NotEmpty(t, created.RawID)
	assert.Empty(t, created.ID)
	assert.Equal(t, []string{}, created.Features)

	title := "Site v2"
	var updated models.Project
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/projects/"+created.RawID, models.ProjectPatch{Title: &title}, &updated))
	assert.Equal(t, "Site v2", updated.Title)
	assert.Equal(t, "web", updated.Category)

	var errBody ErrorResponse
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/projects", models.Project{}, &errBody))
	assert.Equal(t, "title", errBody.Field)

	assert.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/projects/"+created.RawID, nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/projects/"+created.RawID, nil, &errBody))
	assert.Equal(t, "Project not found", errBody.Message)
}

func TestSiteSettingsNotFoundUntilSaved(t *testing.T) {
	api := newTestAPI(t)

	var errBody ErrorResponse
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/site-settings", nil, &errBody))

	api.login()
	var saved models.SiteSettings
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/site-settings", models.SiteSettings{Name: "Ada"}, &saved))
	firstID := saved.RawID

	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/site-settings", models.SiteSettings{Name: "Ada L."}, &saved))
	assert.Equal(t, firstID, saved.RawID)

	var got models.SiteSettings
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/site-settings", nil, &got))
	assert.Equal(t, "Ada L.", got.Name)
}

func TestSkillRoutes(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var backend, frontend models.SkillCategory
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/skills", models.SkillCategory{Category: "Backend", IsActive: true, DisplayOrder: 2}, &backend))
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/skills", models.SkillCategory{Category: "Frontend", DisplayOrder: 1}, &frontend))

	var list []models.SkillCategory
	api.do(http.MethodGet, "/skills", nil, &list)
	require.Len(t, list, 1)
	api.do(http.MethodGet, "/skills?includeInactive=true", nil, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Frontend", list[0].Category)

	var replaced models.SkillCategory
	status := api.do(http.MethodPost, "/skills/direct", models.SkillCategory{Category: " Backend ", Color: "blue"}, &replaced)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, backend.RawID, replaced.RawID)
	assert.Equal(t, "blue", replaced.Color)

	var withItem models.SkillCategory
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/skills/"+backend.RawID+"/items", models.SkillItem{Name: "Go", Proficiency: models.Expert}, &withItem))
	require.Len(t, withItem.Skills, 1)
	itemID := withItem.Skills[0].RawID
	assert.NotEmpty(t, itemID)

	level := models.Advanced
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/skills/"+backend.RawID+"/items/"+itemID, models.SkillItemPatch{Proficiency: &level}, &withItem))
	assert.Equal(t, models.Advanced, withItem.Skills[0].Proficiency)

	var errBody ErrorResponse
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/skills/"+backend.RawID+"/items/nope", nil, &errBody))
	assert.Equal(t, "Skill item not found", errBody.Message)

	require.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/skills/"+backend.RawID+"/items/"+itemID, nil, &withItem))
	assert.Empty(t, withItem.Skills)

	reorder := []models.ReorderEntry{{ID: backend.RawID, DisplayOrder: 0}, {ID: frontend.RawID, DisplayOrder: 5}}
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/skills/reorder", reorder, &list))
	require.Len(t, list, 2)
	assert.Equal(t, backend.RawID, list[0].RawID)
}

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestUploadRejectsNonImage(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	for name, data := range map[string][]byte{"cover.png": pngHeader, "cover.txt": []byte("hello")} {
		body := &bytes.Buffer{}
		form := multipartBody(t, body, name, data)

		req, err := http.NewRequest(http.MethodPost, api.srv.URL+"/projects/with-files", body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", form)
		req.Header.Set("Authorization", "Bearer "+api.token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		if name == "cover.png" {
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
		} else {
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		}
	}
}

func TestAuthRateLimited(t *testing.T) {
	cfg := config.LoadMockServer(map[string]string{"AUTH_RATE_LIMIT": "2"})
	srv := httptest.NewServer(NewRouter(NewStore(), WithConfig(cfg)))
	t.Cleanup(srv.Close)
	api := &testAPI{t: t, srv: srv}

	creds := models.Credentials{Email: "nobody@example.com", Password: "secret1"}
	var errBody ErrorResponse
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, "/auth/login", creds, &errBody))
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, "/auth/login", creds, &errBody))

	assert.Equal(t, http.StatusTooManyRequests, api.do(http.MethodPost, "/auth/login", creds, &errBody))
	assert.Equal(t, "Too many requests, try again later", errBody.Message)

	// reads are not limited
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/projects", nil, nil))
}
