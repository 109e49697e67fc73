package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents API token claims
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}
