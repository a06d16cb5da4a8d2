package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"housemate/config"
	"housemate/models"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "housemate-dev-secret"
	}
	return []byte(secret)
}

// TokenClaims is what the auth middleware extracts from a valid token.
type TokenClaims struct {
	UserID string
	Role   models.UserRole
	Phone  string
}

// GenerateToken creates a signed JWT for the given user and the role
// they signed in as. The token expires after the specified duration.
func GenerateToken(userID string, role models.UserRole, phone string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"role":  string(role),
		"phone": phone,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaims validates a token string and returns its identity claims.
func ExtractClaims(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := claims["role"].(string)
	phone, _ := claims["phone"].(string)

	return &TokenClaims{
		UserID: sub,
		Role:   models.UserRole(role),
		Phone:  phone,
	}, nil
}
