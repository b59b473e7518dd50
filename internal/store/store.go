package store

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/backend"
	identitydomain "github.com/superbutton/superbutton-go/internal/identity/domain"
	"github.com/superbutton/superbutton-go/internal/store/domain"
)

// DefaultProjectID is the active project sentinel used while the user has no
// projects.
const DefaultProjectID = "0"

// Store is the dashboard's single source of truth: the signed-in identity,
// the backend user profile, the project collection and its active selection,
// the latest validation errors and the notification slot. Collections are
// snapshots; every mutation re-fetches rather than patching locally.
type Store struct {
	client        *backend.Client
	notifications *NotificationController
	log           *zap.Logger
	app           domain.App

	mu              sync.RWMutex
	authUser        *identitydomain.AuthUser
	authResolved    bool
	user            *backend.User
	projects        []backend.Project
	activeProjectID string
	errorMessages   backend.FieldErrors
	creatingProject bool
	nextRoute       string
}

func New(client *backend.Client, notifications *NotificationController, app domain.App, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	app.URL = strings.TrimSuffix(app.URL, "/")
	return &Store{
		client:        client,
		notifications: notifications,
		log:           log.Named("store"),
		app:           app,
		errorMessages: backend.FieldErrors{},
	}
}

// App returns the static application metadata.
func (s *Store) App() domain.App {
	return s.app
}

// AuthUser returns the identity provider's user, nil when signed out.
func (s *Store) AuthUser() *identitydomain.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authUser
}

// AuthStateResolved reports whether the identity layer has delivered its
// first auth state, signed in or out.
func (s *Store) AuthStateResolved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authResolved
}

// OnAuthStateChanged commits an auth state change reported by the identity
// layer. A nil user is a sign-out and also drops the backend profile.
func (s *Store) OnAuthStateChanged(user *identitydomain.AuthUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authUser = user
	s.authResolved = true
	if user == nil {
		s.user = nil
	}
}

// User returns the backend profile, nil until LoadUser succeeds.
func (s *Store) User() *backend.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Projects returns the last fetched project snapshot.
func (s *Store) Projects() []backend.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]backend.Project(nil), s.projects...)
}

// ActiveProjectID returns the active selection, corrected at read time: a
// stale id falls back to the first project, an empty collection yields
// DefaultProjectID.
func (s *Store) ActiveProjectID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.correctedActiveProjectID()
}

// ActiveProject returns the project behind ActiveProjectID, nil when the
// collection is empty.
func (s *Store) ActiveProject() *backend.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id := s.correctedActiveProjectID()
	for i := range s.projects {
		if s.projects[i].ID.String() == id {
			project := s.projects[i]
			return &project
		}
	}
	return nil
}

// SetActiveProjectID selects a project. The value is taken as-is; staleness
// is handled when reading.
func (s *Store) SetActiveProjectID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeProjectID = id
}

func (s *Store) correctedActiveProjectID() string {
	for i := range s.projects {
		if s.projects[i].ID.String() == s.activeProjectID {
			return s.activeProjectID
		}
	}
	if len(s.projects) > 0 {
		return s.projects[0].ID.String()
	}
	return DefaultProjectID
}

// ErrorMessages returns the validation errors from the last failed mutation.
func (s *Store) ErrorMessages() backend.FieldErrors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errorMessages
}

// CreatingProject reports whether a project creation is in flight.
func (s *Store) CreatingProject() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creatingProject
}

// NextRoute holds the route to land on after sign-in completes.
func (s *Store) NextRoute() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextRoute
}

func (s *Store) SetNextRoute(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRoute = route
}

// Notification returns the current notification slot.
func (s *Store) Notification() *domain.Notification {
	return s.notifications.Current()
}

// Notify shows a banner directly, for view-layer messages that do not come
// out of a mutation.
func (s *Store) Notify(request domain.NotificationRequest) {
	s.notifications.Notify(request)
}

// DisableNotification dismisses the banner, keeping its message for the exit
// transition.
func (s *Store) DisableNotification() {
	s.notifications.Disable()
}
