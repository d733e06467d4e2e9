package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

// Jwt signs access and refresh tokens with separate HMAC keys.
// Refresh tokens never expire on their own, they are revoked by removing them from storage.
type Jwt struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
}

func New(accessKey, refreshKey string, accessTTL time.Duration) *Jwt {
	return &Jwt{accessKey: []byte(accessKey), refreshKey: []byte(refreshKey), accessTTL: accessTTL}
}

func (j *Jwt) CreateAccessToken(claims domain.TokenClaims) (string, error) {
	now := time.Now()
	return j.sign(j.accessKey, jwt.MapClaims{
		"id":         claims.Id,
		"username":   claims.Username,
		"token_type": accessTokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(j.accessTTL).Unix(),
	})
}

func (j *Jwt) CreateRefreshToken(claims domain.TokenClaims) (string, error) {
	return j.sign(j.refreshKey, jwt.MapClaims{
		"id":         claims.Id,
		"username":   claims.Username,
		"token_type": refreshTokenType,
		"iat":        time.Now().Unix(),
		"jti":        uuid.NewString(), // two logins in the same second must not collide in storage
	})
}

func (j *Jwt) sign(key []byte, claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", fmt.Errorf("can't create token: %w", err)
	}
	return tokenString, nil
}

func (j *Jwt) VerifyAccessToken(tokenStr string) (domain.TokenClaims, error) {
	claims, err := j.verify(tokenStr, j.accessKey, accessTokenType)
	if err != nil {
		logger.Log.Debug("access token rejected", "error", err)
		return domain.TokenClaims{}, &internal_errors.AuthenticationError{Message: "Invalid access token"}
	}
	tc, err := claimsFromMap(claims)
	if err != nil {
		return domain.TokenClaims{}, &internal_errors.AuthenticationError{Message: "Invalid access token"}
	}
	return tc, nil
}

func (j *Jwt) VerifyRefreshToken(tokenStr string) error {
	if _, err := j.verify(tokenStr, j.refreshKey, refreshTokenType); err != nil {
		logger.Log.Debug("refresh token rejected", "error", err)
		return &internal_errors.InvariantError{Message: "refresh token tidak valid"}
	}
	return nil
}

// DecodePayload reads the identity claims without checking the signature.
// Callers verify the token first.
func (j *Jwt) DecodePayload(tokenStr string) (domain.TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return domain.TokenClaims{}, &internal_errors.InvariantError{Message: "refresh token tidak valid"}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.TokenClaims{}, &internal_errors.InvariantError{Message: "refresh token tidak valid"}
	}
	tc, err := claimsFromMap(claims)
	if err != nil {
		return domain.TokenClaims{}, &internal_errors.InvariantError{Message: "refresh token tidak valid"}
	}
	return tc, nil
}

func (j *Jwt) verify(tokenStr string, key []byte, tokenType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", token.Claims)
	}
	if claims["token_type"] != tokenType {
		return nil, fmt.Errorf("expected %s token, got %v", tokenType, claims["token_type"])
	}
	return claims, nil
}

func claimsFromMap(claims jwt.MapClaims) (domain.TokenClaims, error) {
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return domain.TokenClaims{}, fmt.Errorf("missing id claim")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return domain.TokenClaims{}, fmt.Errorf("missing username claim")
	}
	return domain.TokenClaims{Id: id, Username: username}, nil
}
