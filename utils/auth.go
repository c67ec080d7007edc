package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtKey signs and verifies access tokens. Loaded from ACCESS_TOKEN_SECRET
// at startup.
var JwtKey []byte

// Claims represents the JWT claims. Login tokens carry only the subject
// email; role is resolved from the users collection on demand.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// tokenTTL is the lifetime of an access token issued at login.
const tokenTTL = 24 * time.Hour

// GenerateJWT issues a signed access token for the given email.
func GenerateJWT(email string) (string, error) {
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}

// ParseJWT verifies a token string and returns its claims.
func ParseJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("token is not valid", jwt.ValidationErrorClaimsInvalid)
	}
	return claims, nil
}
