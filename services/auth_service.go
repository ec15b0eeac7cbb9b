package services

import (
	"context"

	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SessionStore persists the signed-in user. database.SessionRepo satisfies it.
type SessionStore interface {
	Token() (string, error)
	User() (*models.User, error)
	Save(token string, user models.User) error
	Clear() error
}

type AuthService struct {
	client   Requester
	sessions SessionStore
	logger   zerolog.Logger
}

func NewAuthService(client Requester, sessions SessionStore) *AuthService {
	return &AuthService{
		client:   client,
		sessions: sessions,
		logger:   log.With().Str("serviceName", "authService").Logger(),
	}
}

func (s *AuthService) Login(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error) {
	return s.authenticate(ctx, "/auth/login", credentials, "Login failed")
}

func (s *AuthService) Register(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error) {
	return s.authenticate(ctx, "/auth/register", credentials, "Registration failed")
}

func (s *AuthService) authenticate(ctx context.Context, path string, credentials models.Credentials, fallback string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.client.Post(ctx, path, credentials, &resp); err != nil {
		return nil, wrapServiceError(s.logger, err, fallback)
	}
	resp.User.Normalize()

	if resp.Token == "" {
		return nil, wrapServiceError(s.logger, errs.NewMissingTokenError(), fallback)
	}
	if err := s.sessions.Save(resp.Token, resp.User); err != nil {
		// a partial write must not leave a token behind
		if clearErr := s.sessions.Clear(); clearErr != nil {
			s.logger.Error().Err(clearErr).Msg("failed to roll back partial session")
		}
		return nil, wrapServiceError(s.logger, err, fallback)
	}

	s.logger.Info().Str("email", resp.User.Email).Msg("session stored")
	return &resp, nil
}

// Logout clears the persisted session. No network call is made.
func (s *AuthService) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear session")
		return err
	}
	return nil
}

// IsAuthenticated reports whether a token is persisted.
func (s *AuthService) IsAuthenticated() bool {
	token, err := s.sessions.Token()
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read session token")
		return false
	}
	return token != ""
}

func (s *AuthService) CurrentUser() (*models.User, error) {
	return s.sessions.User()
}

func (s *AuthService) Token() (string, error) {
	return s.sessions.Token()
}
