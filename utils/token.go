package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// GenerateToken signs a JWT for the given user
func GenerateToken(secret, userID string, userType string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT secret is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   userID,
		"user_type": userType,
		"exp":       time.Now().Add(72 * time.Hour).Unix(),
	})

	return token.SignedString([]byte(secret))
}
