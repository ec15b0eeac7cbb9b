package mockapi

import "github.com/rpupo63/portfolio-sync/models"

// Store groups the in-memory repositories behind the mock API.
type Store struct {
	Projects *DocumentRepo[models.Project]
	Skills   *DocumentRepo[models.SkillCategory]
	Settings *SettingsRepo
	Users    *UserRepo
}

func NewStore() *Store {
	return &Store{
		Projects: NewProjectRepo(),
		Skills:   NewSkillRepo(),
		Settings: NewSettingsRepo(),
		Users:    NewUserRepo(),
	}
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(store *Store, tokens tokenIssuer) *routeHandlers {
	return &routeHandlers{
		projectHandler:  newProjectHandler(store.Projects),
		skillHandler:    newSkillHandler(store.Skills),
		settingsHandler: newSettingsHandler(store.Settings),
		authHandler:     newAuthHandler(store.Users, tokens),
	}
}
