package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/star-hub/starid/internal/serviceerrs"
)

const TokenExpire = 7 * 24 * time.Hour

const hashCost = 10

type Claims struct {
	jwt.RegisteredClaims
	StarID string `json:"starid"`
	Email  string `json:"email"`
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(plain, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return serviceerrs.ErrInvalidPassword
	}
	return nil
}

func BuildJWTString(starID, email string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpire)),
			},
			StarID: starID,
			Email:  email,
		},
	)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("JWT signing: %w", err)
	}
	return tokenString, nil
}

func CheckToken(tokenString string, secret []byte) (Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		})
	if err != nil {
		return Claims{}, fmt.Errorf("failed to parse token %w", err)
	}
	// a token without an exp claim is never considered valid
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return Claims{}, serviceerrs.ErrTokenExpired
	}

	return *claims, nil
}
