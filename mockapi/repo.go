package mockapi

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-sync/models"
	"golang.org/x/crypto/bcrypt"
)

// DocumentRepo is an in-memory collection of wire documents keyed by _id,
// kept in insertion order.
type DocumentRepo[T any] struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]T
	wire  func(*T) *models.WireID
}

func NewDocumentRepo[T any](wire func(*T) *models.WireID) *DocumentRepo[T] {
	return &DocumentRepo[T]{
		docs: map[string]T{},
		wire: wire,
	}
}

func NewProjectRepo() *DocumentRepo[models.Project] {
	return NewDocumentRepo(func(p *models.Project) *models.WireID { return &p.WireID })
}

func NewSkillRepo() *DocumentRepo[models.SkillCategory] {
	return NewDocumentRepo(func(c *models.SkillCategory) *models.WireID { return &c.WireID })
}

// FindAll returns all documents in insertion order
func (r *DocumentRepo[T]) FindAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out
}

// FindByID returns a document by its _id
func (r *DocumentRepo[T]) FindByID(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	return doc, ok
}

// Add stores doc under a fresh _id and returns the stored copy
func (r *DocumentRepo[T]) Add(doc T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	*r.wire(&doc) = models.WireID{RawID: id}
	r.docs[id] = doc
	r.order = append(r.order, id)
	return doc
}

// Update applies fn to the stored document. fn must not keep the pointer.
func (r *DocumentRepo[T]) Update(id string, fn func(*T) error) (T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	if err := fn(&doc); err != nil {
		var zero T
		return zero, true, err
	}
	*r.wire(&doc) = models.WireID{RawID: id}
	r.docs[id] = doc
	return doc, true, nil
}

// Delete removes a document by _id
func (r *DocumentRepo[T]) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return false
	}
	delete(r.docs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// SettingsRepo holds the singleton; nil until first saved.
type SettingsRepo struct {
	mu       sync.RWMutex
	settings *models.SiteSettings
}

func NewSettingsRepo() *SettingsRepo {
	return &SettingsRepo{}
}

func (r *SettingsRepo) Find() (models.SiteSettings, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return models.SiteSettings{}, false
	}
	return *r.settings, true
}

func (r *SettingsRepo) Save(settings models.SiteSettings) models.SiteSettings {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	if r.settings != nil {
		id = r.settings.RawID
	}
	settings.WireID = models.WireID{RawID: id}
	r.settings = &settings
	return settings
}

type account struct {
	ID           string
	Email        string
	PasswordHash []byte
}

func (a account) wire() models.User {
	return models.User{WireID: models.WireID{RawID: a.ID}, Email: a.Email}
}

// UserRepo keys accounts by lowercased email.
type UserRepo struct {
	mu       sync.RWMutex
	accounts map[string]account
}

func NewUserRepo() *UserRepo {
	return &UserRepo{accounts: map[string]account{}}
}

// Add hashes password and stores a new account. It reports false when the
// email is taken.
func (r *UserRepo) Add(email, password string) (account, bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account{}, false, err
	}

	key := strings.ToLower(strings.TrimSpace(email))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[key]; exists {
		return account{}, false, nil
	}
	acc := account{ID: uuid.NewString(), Email: strings.TrimSpace(email), PasswordHash: hash}
	r.accounts[key] = acc
	return acc, true, nil
}

// Authenticate returns the account matching email and password.
func (r *UserRepo) Authenticate(email, password string) (account, bool) {
	r.mu.RLock()
	acc, ok := r.accounts[strings.ToLower(strings.TrimSpace(email))]
	r.mu.RUnlock()

	if !ok {
		return account{}, false
	}
	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		return account{}, false
	}
	return acc, true
}
