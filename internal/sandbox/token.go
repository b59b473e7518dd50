package sandbox

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid bearer token")

// TokenIssuer mints and verifies the HS256 ID tokens the sandbox stands in
// for the real identity provider with.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Claims is the sandbox's view of an ID token payload.
type Claims struct {
	UID   string
	Email string
	Name  string
}

func (i *TokenIssuer) Mint(claims Claims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":   "superbutton-sandbox",
		"sub":   claims.UID,
		"email": claims.Email,
		"name":  claims.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("cannot sign id token: %w", err)
	}
	return signed, nil
}

func (i *TokenIssuer) Verify(token string) (Claims, error) {
	parsed, err := jwt.Parse(token,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		UID:   subject,
		Email: stringClaim(mapClaims, "email"),
		Name:  stringClaim(mapClaims, "name"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if value, ok := claims[name].(string); ok {
		return value
	}
	return ""
}
