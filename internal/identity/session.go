package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/identity/domain"
)

// ErrTokenWithoutSubject is returned when an ID token carries no subject
// claim and therefore cannot identify a user.
var ErrTokenWithoutSubject = errors.New("id token has no subject claim")

// Listener observes auth state changes. It receives the new user, nil on
// sign-out. Listeners run synchronously on the goroutine that changed the
// state.
type Listener func(user *domain.AuthUser)

// Session holds the current identity state: the raw ID token forwarded to the
// API and the decoded user behind it. It implements backend.TokenSource, and
// every read takes a snapshot, so a token rotation never tears a request.
//
// Resolution is a one-shot signal. The session starts unresolved; the first
// SetIDToken or Clear resolves it, which is what route guards wait on before
// deciding between the signed-in and signed-out paths.
type Session struct {
	mu        sync.RWMutex
	idToken   string
	user      *domain.AuthUser
	listeners []Listener

	resolveOnce sync.Once
	resolved    chan struct{}

	parser *jwt.Parser
	log    *zap.Logger
}

func NewSession(log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		resolved: make(chan struct{}),
		parser:   jwt.NewParser(),
		log:      log.Named("identity.session"),
	}
}

// Token returns the current ID token, "" when signed out. It never fails;
// the error is part of the backend.TokenSource contract.
func (s *Session) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idToken, nil
}

// User returns the decoded user, nil when signed out.
func (s *Session) User() *domain.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Resolved returns a channel that closes once the initial auth state is
// known, whether that state is signed in or signed out.
func (s *Session) Resolved() <-chan struct{} {
	return s.resolved
}

// Subscribe registers a listener for subsequent auth state changes.
func (s *Session) Subscribe(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// SetIDToken installs a fresh ID token and decodes the user from its claims.
// The token's signature is the API's job to verify; the client only reads the
// profile claims out of it.
func (s *Session) SetIDToken(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("cannot parse id token: %w", err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return ErrTokenWithoutSubject
	}

	user := &domain.AuthUser{
		UID:         subject,
		Email:       stringClaim(claims, "email"),
		DisplayName: stringClaim(claims, "name"),
		PhotoURL:    stringClaim(claims, "picture"),
	}

	s.mu.Lock()
	s.idToken = token
	s.user = user
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	s.resolveOnce.Do(func() { close(s.resolved) })
	s.log.Debug("auth state changed", zap.String("uid", user.UID))

	for _, listener := range listeners {
		listener(user)
	}
	return nil
}

// Clear signs the session out. It also resolves the session, since knowing
// there is no user is itself a resolved state.
func (s *Session) Clear() {
	s.mu.Lock()
	s.idToken = ""
	s.user = nil
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	s.resolveOnce.Do(func() { close(s.resolved) })
	s.log.Debug("auth state cleared")

	for _, listener := range listeners {
		listener(nil)
	}
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if value, ok := claims[name].(string); ok {
		return value
	}
	return ""
}
