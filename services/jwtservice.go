package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mydaytasks/model"
)

const (
	OwnerID         = "owner"
	tokenIssuer     = "mydaytasks"
	accessTokenTTL  = 60 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrTokenRevoked       = errors.New("refresh token has been revoked")
	ErrWrongTokenType     = errors.New("wrong token type")
)

// TokenService signs and checks the owner's access and refresh tokens.
// Only the most recently issued refresh token of a user is accepted.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time

	mu      sync.Mutex
	current map[string]string // userID -> token id
}

func NewTokenService(accessSecret, refreshSecret string) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
		current:       map[string]string{},
	}
}

func (s *TokenService) CreateAccessToken(userID, tokenID string) (string, error) {
	now := s.now()
	claims := &model.AccessClaims{
		UserID:    userID,
		TokenID:   tokenID,
		TokenType: model.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.accessSecret)
}

func (s *TokenService) CreateRefreshToken(userID, tokenID string) (string, error) {
	now := s.now()
	claims := &model.RefreshClaims{
		UserID:    userID,
		TokenID:   tokenID,
		TokenType: model.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(refreshTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.refreshSecret)
}

// IssuePair creates a fresh access/refresh pair sharing one token id.
func (s *TokenService) IssuePair(userID string) (model.TokenPair, error) {
	tokenID := uuid.New().String()
	access, err := s.CreateAccessToken(userID, tokenID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refresh, err := s.CreateRefreshToken(userID, tokenID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	s.mu.Lock()
	s.current[userID] = tokenID
	s.mu.Unlock()

	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
	}, nil
}

func hmacKey(secret []byte) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}
}

func (s *TokenService) ParseAccessToken(tokenString string) (*model.AccessClaims, error) {
	claims := &model.AccessClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, hmacKey(s.accessSecret)); err != nil {
		return nil, err
	}
	if claims.TokenType != model.TokenTypeAccess {
		return nil, ErrWrongTokenType
	}
	if claims.UserID == "" {
		return nil, errors.New("invalid userId in token claims")
	}
	return claims, nil
}

func (s *TokenService) ParseRefreshToken(tokenString string) (*model.RefreshClaims, error) {
	claims := &model.RefreshClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, hmacKey(s.refreshSecret)); err != nil {
		return nil, err
	}
	if claims.TokenType != model.TokenTypeRefresh {
		return nil, ErrWrongTokenType
	}
	if claims.UserID == "" {
		return nil, errors.New("invalid token claims: UserID not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current[claims.UserID] != claims.TokenID {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Revoke invalidates the user's outstanding refresh token.
func (s *TokenService) Revoke(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.current, userID)
}

// CheckPassword compares password with the bcrypt hash of the owner password.
func CheckPassword(hash, password string) error {
	if hash == "" {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces the value expected in OWNER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
