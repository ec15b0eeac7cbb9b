package store

import (
	"context"

	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error)
	Logout() error
	CurrentUser() (*models.User, error)
	Token() (string, error)
}

// AuthState invariant: IsAuthenticated == (User != nil && Token != "").
type AuthState struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	Lifecycle
}

func authenticated(user *models.User, token string) AuthState {
	return AuthState{User: user, Token: token, IsAuthenticated: user != nil && token != ""}
}

type AuthStore struct {
	m       *machine[AuthState]
	service AuthService
	logger  zerolog.Logger
}

func NewAuthStore(service AuthService) *AuthStore {
	return &AuthStore{
		m:       newMachine(AuthState{}),
		service: service,
		logger:  log.With().Str("serviceName", "authStore").Logger(),
	}
}

func (s *AuthStore) State() AuthState {
	return s.m.snapshot()
}

func (s *AuthStore) Subscribe(fn func(AuthState)) func() {
	return s.m.subscribe(fn)
}

// Initialize restores the session from persisted storage. It makes no
// network call; unreadable storage counts as signed out.
func (s *AuthStore) Initialize() AuthState {
	token, err := s.service.Token()
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read persisted token")
		token = ""
	}
	user, err := s.service.CurrentUser()
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read persisted user")
		user = nil
	}

	return s.m.apply(func(AuthState) AuthState {
		return authenticated(user, token)
	})
}

func (s *AuthStore) Login(ctx context.Context, credentials models.Credentials) Result[*models.AuthResponse] {
	return dispatch(ctx, s.m, reduceSignIn, func(ctx context.Context) (*models.AuthResponse, error) {
		return s.service.Login(ctx, credentials)
	})
}

func (s *AuthStore) Register(ctx context.Context, credentials models.Credentials) Result[*models.AuthResponse] {
	return dispatch(ctx, s.m, reduceSignIn, func(ctx context.Context) (*models.AuthResponse, error) {
		return s.service.Register(ctx, credentials)
	})
}

// Logout always ends in the signed-out state; a storage failure is
// reported through Error.
func (s *AuthStore) Logout() AuthState {
	err := s.service.Logout()
	return s.m.apply(func(AuthState) AuthState {
		st := AuthState{}
		st.Error = errs.Message(err)
		return st
	})
}

func (s *AuthStore) ClearError() {
	s.m.apply(func(st AuthState) AuthState {
		st.Error = ""
		return st
	})
}

func reduceSignIn(s AuthState, r Result[*models.AuthResponse]) AuthState {
	lifecycle := reduceLifecycle(s.Lifecycle, false, r)
	if r.OK() && r.Value != nil {
		user := r.Value.User
		s = authenticated(&user, r.Value.Token)
	}
	s.Lifecycle = lifecycle
	return s
}
