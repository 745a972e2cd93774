package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the payload of the access tokens issued by the auth
// service. The meeting service only verifies them.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
