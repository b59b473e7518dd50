package domain

// AuthUser is the identity provider's view of the signed-in user. The field
// names mirror what the provider emits in its ID token claims.
type AuthUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
	DisplayName string `json:"displayName"`
}
