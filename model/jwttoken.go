package model

import "github.com/golang-jwt/jwt/v5"

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"` // access token lifetime in seconds
}

type AccessClaims struct {
	UserID    string `json:"userId"`
	TokenID   string `json:"tokenId,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID    string `json:"userId"`
	TokenID   string `json:"tokenId,omitempty"` // id of the access token it was issued with
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}
