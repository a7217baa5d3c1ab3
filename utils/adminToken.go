package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSessionCookie carries the signed admin session token. The cookie
// is the only session state the server hands out; nothing is kept
// in-process between requests.
const AdminSessionCookie = "admin_session"

const adminSessionTTL = 12 * time.Hour

func GenerateAdminToken(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     "admin",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(adminSessionTTL).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// ParseAdminToken verifies the session token and returns its claims.
func ParseAdminToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return nil, fmt.Errorf("missing admin role")
	}
	return claims, nil
}
