package mockapi

import "context"

type keyType string

const sessionKey keyType = "session"

// session identifies the caller of an authenticated route.
type session struct {
	UserID string
	Email  string
}

func ctxWithSession(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, sessionKey, session{UserID: claims.Subject, Email: claims.Email})
}

// sessionFromCtx reports false on public routes.
func sessionFromCtx(ctx context.Context) (session, bool) {
	s, ok := ctx.Value(sessionKey).(session)
	return s, ok
}
