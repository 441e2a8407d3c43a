// model/session.go
package model

import "context"

// UserSession identifies the caller of an audit operation.
type UserSession struct {
	UserID    string   `json:"user_id"`
	LoginID   string   `json:"login_id"`
	Groups    []string `json:"groups,omitempty"`
	UserAdmin bool     `json:"user_admin"`
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying the caller's session.
func WithSession(ctx context.Context, session *UserSession) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the caller's session, or nil if none was attached.
func SessionFromContext(ctx context.Context) *UserSession {
	session, _ := ctx.Value(sessionKey{}).(*UserSession)
	return session
}
