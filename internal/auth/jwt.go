package auth

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
)

// MaxUsernameLength matches the width of the username columns
const MaxUsernameLength = 64

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims carries the username on top of the registered claims
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenManager signs and verifies HS256 bearer tokens for one issuer
type TokenManager struct {
	secret []byte
	issuer string
}

func NewTokenManager(secret, issuer string) *TokenManager {
	return &TokenManager{secret: []byte(secret), issuer: issuer}
}

// GenerateToken returns a signed token for username valid for ttl
func (m *TokenManager) GenerateToken(username string, ttl time.Duration) (string, error) {
	if username == "" {
		return "", errors.New("generate token: empty username")
	}
	if !validUsername(username) {
		return "", fmt.Errorf("generate token: username longer than %d characters", MaxUsernameLength)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies tokenString and returns the username it carries
func (m *TokenManager) ParseToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Username == "" || !validUsername(claims.Username) {
		return "", ErrInvalidToken
	}

	return claims.Username, nil
}

func validUsername(username string) bool {
	return utf8.RuneCountInString(username) <= MaxUsernameLength
}
