package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims bind an anonymous client to its quiz session. There are
// no user accounts; the token only stops one client from driving
// another client's session.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}
