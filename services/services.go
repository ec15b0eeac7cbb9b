package services

import (
	"context"

	"github.com/rpupo63/portfolio-sync/api"
	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
)

// Requester is the part of api.Client the services depend on.
type Requester interface {
	Get(ctx context.Context, path string, dst any) error
	Post(ctx context.Context, path string, body any, dst any) error
	Put(ctx context.Context, path string, body any, dst any) error
	Delete(ctx context.Context, path string, dst any) error
	PostMultipart(ctx context.Context, path string, form *api.Form, dst any) error
	PutMultipart(ctx context.Context, path string, form *api.Form, dst any) error
}

// wrapServiceError logs a failed call and rewraps it with the operation's
// fallback message. A server-supplied message still wins.
func wrapServiceError(logger zerolog.Logger, err error, fallback string) error {
	wrapped := errs.WithFallback(err, fallback)
	logger.Error().Err(err).Str("userMessage", wrapped.Error()).Msg(fallback)
	return wrapped
}

// normalizeList normalizes every document and drops null entries.
// The result is never nil.
func normalizeList[T any, PT interface {
	*T
	models.Normalizer
}](items []PT) []PT {
	out := make([]PT, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		item.Normalize()
		out = append(out, item)
	}
	return out
}
