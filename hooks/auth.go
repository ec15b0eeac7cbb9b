package hooks

import (
	"context"
	"sync"

	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rpupo63/portfolio-sync/store"
)

// Auth binds an AuthStore. The persisted session is restored the first time
// the state is ensured.
type Auth struct {
	store *store.AuthStore
	once  sync.Once
}

func UseAuth(s *store.AuthStore) *Auth {
	return &Auth{store: s}
}

func (h *Auth) State() store.AuthState {
	return h.store.State()
}

func (h *Auth) Subscribe(fn func(store.AuthState)) func() {
	return h.store.Subscribe(fn)
}

func (h *Auth) Ensure(ctx context.Context) store.AuthState {
	_ = h.EnsureLoaded(ctx)
	return h.store.State()
}

// EnsureLoaded never fails: unreadable storage means signed out.
func (h *Auth) EnsureLoaded(context.Context) error {
	h.once.Do(func() {
		h.store.Initialize()
	})
	return nil
}

func (h *Auth) Login(ctx context.Context, credentials models.Credentials) store.Result[*models.AuthResponse] {
	return h.store.Login(ctx, credentials)
}

func (h *Auth) Register(ctx context.Context, credentials models.Credentials) store.Result[*models.AuthResponse] {
	return h.store.Register(ctx, credentials)
}

func (h *Auth) Logout() store.AuthState {
	return h.store.Logout()
}

func (h *Auth) ClearError() {
	h.store.ClearError()
}
