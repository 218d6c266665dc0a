// Package auth implements the dashboard login gate. The credential pair is
// fixed and compared verbatim: there is no hashing, lockout or rate limiting,
// so the gate only keeps casual visitors out of the panel.
package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

const (
	// FixedUsername and FixedPassword are the only accepted credentials.
	FixedUsername = "admin"
	FixedPassword = "123456"

	// InvalidCredentialsMessage is the text shown on a failed login.
	InvalidCredentialsMessage = "Usuário ou senha incorretos"
)

var (
	// ErrInvalidCredentials is returned for any pair other than the fixed one.
	ErrInvalidCredentials = errors.New(InvalidCredentialsMessage)
	// ErrUnknownSession is returned when a token does not resolve.
	ErrUnknownSession = errors.New("auth: session not found")
)

// Credentials is a submitted login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Gate checks submitted credentials.
type Gate struct {
	username string
	password string
}

// NewGate returns the gate guarding the fixed pair.
func NewGate() *Gate {
	return &Gate{username: FixedUsername, password: FixedPassword}
}

// Authenticate returns the user identity when both strings match exactly.
func (g *Gate) Authenticate(creds Credentials) (string, error) {
	if creds.Username != g.username || creds.Password != g.password {
		return "", ErrInvalidCredentials
	}
	return creds.Username, nil
}

// Session binds an opaque token to an authenticated user.
type Session struct {
	Token string `json:"token"`
	User  string `json:"user"`
}

// SessionStore keeps sessions in memory for the lifetime of the process.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	newToken func() string
}

// NewSessionStore builds an empty store issuing random UUID tokens.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		newToken: func() string { return uuid.NewString() },
	}
}

// Open issues a session for user.
func (s *SessionStore) Open(user string) Session {
	session := Session{Token: s.newToken(), User: user}
	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()
	return session
}

// Bind records a session under a token minted by the caller, replacing any
// session already held by that token.
func (s *SessionStore) Bind(token, user string) Session {
	session := Session{Token: token, User: user}
	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()
	return session
}

// Resolve looks up the session for token.
func (s *SessionStore) Resolve(token string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok || token == "" {
		return Session{}, ErrUnknownSession
	}
	return session, nil
}

// Revoke ends the session. Unknown tokens are ignored.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of open sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
