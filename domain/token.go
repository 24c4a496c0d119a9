package domain

import (
	"github.com/cristalhq/jwt/v4"
)

// AccessClaims is the bearer token payload: the account id and its role.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}
