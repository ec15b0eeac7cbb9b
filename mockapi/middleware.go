package mockapi

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/cors"
	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authMiddleware struct {
	responder Responder
	tokens    tokenIssuer
}

func newAuthMiddleware(tokens tokenIssuer) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		tokens:    tokens,
	}
}

func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if raw == "" {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		claims, err := m.tokens.Validate(raw)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}

		updatedReq := r.WithContext(ctxWithSession(r.Context(), claims))
		next.ServeHTTP(w, updatedReq)
	})
}

// statusRecorder remembers the status and body size a handler answered with.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// recoverPanics answers a panicking handler with the JSON error body and
// logs every 500 the API returns.
func recoverPanics(next http.Handler) http.Handler {
	responder := NewResponder(log.With().Str("handlerName", "recoverPanics").Logger())

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)

		defer func() {
			if p := recover(); p != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", p).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				if !rec.wroteHeader {
					responder.WriteError(rec, errs.NewInternalErrorWithCause("handler panicked", fmt.Errorf("%v", p)))
				}
			}

			if rec.status == http.StatusInternalServerError {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("requestID", r.Header.Get("X-Request-ID")).
					Msg("500 error response")
			}
		}()

		next.ServeHTTP(rec, r)
	})
}

// corsMiddleware allows the configured front-end origins to call the API
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// requestLogger writes one colored console line per request. The level
// follows the status class.
func requestLogger(out io.Writer) func(http.Handler) http.Handler {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(log.Logger.GetLevel())

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			var event *zerolog.Event
			switch {
			case rec.status >= 500:
				event = logger.Error()
			case rec.status >= 400:
				event = logger.Warn()
			default:
				event = logger.Info()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("requestID", r.Header.Get("X-Request-ID")).
				Bool("bearer", strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")).
				Int("status", rec.status).
				Int("bytes", rec.bytes).
				Dur("duration", time.Since(start)).
				Msg(r.Method + " " + r.URL.Path)
		})
	}
}
