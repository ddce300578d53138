package domain

import (
	"context"
	"time"
)

// Session identifies the authenticated operator for the lifetime of one request.
type Session struct {
	OperatorID ID
	Username   string
	ExpiresAt  time.Time
}

func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type sessionContextKey struct{}

func ContextWithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(Session)
	return session, ok
}
