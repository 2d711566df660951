package auth

import "time"

// Session identifies an authenticated account for the lifetime of a token.
// Role travels inside the token so request handling can gate by role without
// a store lookup.
type Session struct {
	Subject string
	Role    string
}

type Strategy interface {
	IssueToken(session Session) (string, error)
	ParseToken(token string) (Session, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
