package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// rateLimiter caps requests per client IP. The auth endpoints use it to slow
// down password guessing.
type rateLimiter struct {
	instance  *limiter.Limiter
	responder Responder
}

func newRateLimiter(limit int, period time.Duration) rateLimiter {
	if limit <= 0 {
		limit = 20
	}
	if period <= 0 {
		period = time.Minute
	}

	rate := limiter.Rate{Period: period, Limit: int64(limit)}
	logger := log.With().Str("handlerName", "rateLimiter").Logger()
	return rateLimiter{
		instance:  limiter.New(memory.NewStore(), rate),
		responder: NewResponder(logger),
	}
}

func (l rateLimiter) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		context, err := l.instance.Get(r.Context(), l.instance.GetIPKey(r))
		if err != nil {
			l.responder.WriteError(w, errs.NewInternalErrorWithCause("rate limiter unavailable", err))
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(context.Limit, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(context.Remaining, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(context.Reset, 10))

		if context.Reached {
			l.responder.WriteError(w, errs.NewRateLimitError())
			return
		}
		next.ServeHTTP(w, r)
	})
}
