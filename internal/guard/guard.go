// Package guard holds the navigation predicates the dashboard evaluates
// before rendering a route.
package guard

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/superbutton/superbutton-go/internal/identity"
)

const (
	LoginRoute = "/login"
	RootRoute  = "/"

	markerCookieName   = "auth"
	markerCookieMaxAge = 30 * 24 * time.Hour
)

// Auth gates authenticated-only routes. When no identity is present it
// reports the login route as the redirect target.
func Auth(session *identity.Session) (redirect string, ok bool) {
	if session.User() == nil {
		return LoginRoute, false
	}
	return "", true
}

// Guest gates signed-out-only routes such as the login page. When an
// identity is present it reports the root route as the redirect target.
func Guest(session *identity.Session) (redirect string, ok bool) {
	if session.User() != nil {
		return RootRoute, false
	}
	return "", true
}

// AwaitResolution blocks until the session has reported its initial auth
// state. Evaluating a guard before resolution would act on a transient nil
// identity and flash the wrong route.
func AwaitResolution(ctx context.Context, session *identity.Session) error {
	select {
	case <-session.Resolved():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MarkerCookie builds the same-site cookie that records whether a user was
// authenticated last time. It only short-circuits guard flicker on the next
// visit; it carries no authority.
func MarkerCookie(authenticated bool) *http.Cookie {
	return &http.Cookie{
		Name:     markerCookieName,
		Value:    strconv.FormatBool(authenticated),
		Path:     "/",
		MaxAge:   int(markerCookieMaxAge.Seconds()),
		SameSite: http.SameSiteStrictMode,
	}
}
