package mockapi

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const minPasswordLength = 6

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *UserRepo
	tokens    tokenIssuer
}

func newAuthHandler(userRepo *UserRepo, tokens tokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		tokens:    tokens,
	}
}

func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		if err := decodeJSON(r, &creds); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateCredentials(creds); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		acc, created, err := h.userRepo.Add(creds.Email, creds.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not create account", err))
			return
		}
		if !created {
			h.responder.WriteError(w, errs.NewConflictError("User already exists"))
			return
		}

		h.writeSession(w, http.StatusCreated, "User registered successfully", acc)
	}
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		if err := decodeJSON(r, &creds); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		acc, ok := h.userRepo.Authenticate(creds.Email, creds.Password)
		if !ok {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		h.writeSession(w, http.StatusOK, "Login successful", acc)
	}
}

func (h authHandler) writeSession(w http.ResponseWriter, status int, message string, acc account) {
	token, err := h.tokens.Issue(acc)
	if err != nil {
		h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not issue token", err))
		return
	}

	h.logger.Info().Str("userID", acc.ID).Msg(message)
	h.responder.WriteJSONStatus(w, status, models.AuthResponse{
		Message: message,
		Token:   token,
		User:    acc.wire(),
	})
}

func validateCredentials(creds models.Credentials) error {
	if strings.TrimSpace(creds.Email) == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if _, err := mail.ParseAddress(creds.Email); err != nil {
		return errs.NewInvalidFieldError("email", "not a valid address")
	}
	if len(creds.Password) < minPasswordLength {
		return errs.NewInvalidFieldError("password", "must be at least 6 characters")
	}
	return nil
}
