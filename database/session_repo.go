package database

import (
	"github.com/rpupo63/portfolio-sync/models"
)

// SessionRepo reads and writes the persisted token and user.
type SessionRepo struct {
	storage Storage
}

func NewSessionRepo(storage Storage) *SessionRepo {
	return &SessionRepo{storage}
}

// Token returns the persisted bearer token, "" when there is none.
func (r *SessionRepo) Token() (string, error) {
	var token string
	if _, err := r.storage.Get(KeyToken, &token); err != nil {
		return "", err
	}
	return token, nil
}

// User returns the persisted user, nil when there is none.
func (r *SessionRepo) User() (*models.User, error) {
	var user models.User
	found, err := r.storage.Get(KeyUser, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// Save persists token and user together.
func (r *SessionRepo) Save(token string, user models.User) error {
	if err := r.storage.Set(KeyToken, token); err != nil {
		return err
	}
	return r.storage.Set(KeyUser, user)
}

// Clear removes both keys. The theme preference survives.
func (r *SessionRepo) Clear() error {
	if err := r.storage.Remove(KeyToken); err != nil {
		return err
	}
	return r.storage.Remove(KeyUser)
}
