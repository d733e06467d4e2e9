package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type AuthService interface {
	Login(ctx context.Context, payload domain.Payload) (domain.NewAuthentication, error)
	Refresh(ctx context.Context, payload domain.Payload) (string, error)
	Logout(ctx context.Context, payload domain.Payload) error
}

type Auth struct {
	storage AuthStorage
	users   UserStorage
	tokens  TokenManager
	hasher  PasswordHasher
}

// AuthStorage keeps the set of live refresh tokens.
type AuthStorage interface {
	AddToken(ctx context.Context, token string) error
	// CheckAvailabilityToken fails with InvariantError when the token is not stored.
	CheckAvailabilityToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

type TokenManager interface {
	CreateAccessToken(claims domain.TokenClaims) (string, error)
	CreateRefreshToken(claims domain.TokenClaims) (string, error)
	VerifyRefreshToken(token string) error
	DecodePayload(token string) (domain.TokenClaims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	ComparePassword(password, hash string) error
}

func NewAuth(storage AuthStorage, users UserStorage, tokens TokenManager, hasher PasswordHasher) AuthService {
	return &Auth{
		storage: storage,
		users:   users,
		tokens:  tokens,
		hasher:  hasher,
	}
}

// Login checks credentials and issues an access/refresh token pair.
// The refresh token is persisted so it can later be refreshed or revoked.
func (a *Auth) Login(ctx context.Context, payload domain.Payload) (domain.NewAuthentication, error) {
	creds, err := domain.UserLoginFromPayload(payload)
	if err != nil {
		return domain.NewAuthentication{}, err
	}

	hash, err := a.users.GetPasswordByUsername(ctx, creds.Username)
	if err != nil {
		return domain.NewAuthentication{}, err
	}
	if err := a.hasher.ComparePassword(creds.Password, hash); err != nil {
		return domain.NewAuthentication{}, err
	}

	id, err := a.users.GetIdByUsername(ctx, creds.Username)
	if err != nil {
		return domain.NewAuthentication{}, err
	}

	claims := domain.TokenClaims{Id: id, Username: creds.Username}
	accessToken, err := a.tokens.CreateAccessToken(claims)
	if err != nil {
		logger.Log.Error("failed to create access token", "user_id", id, "error", err)
		return domain.NewAuthentication{}, err
	}
	refreshToken, err := a.tokens.CreateRefreshToken(claims)
	if err != nil {
		logger.Log.Error("failed to create refresh token", "user_id", id, "error", err)
		return domain.NewAuthentication{}, err
	}

	if err := a.storage.AddToken(ctx, refreshToken); err != nil {
		return domain.NewAuthentication{}, err
	}

	return domain.NewAuthenticationFromPayload(domain.Payload{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Refresh issues a new access token for a live refresh token.
func (a *Auth) Refresh(ctx context.Context, payload domain.Payload) (string, error) {
	refreshToken, err := domain.RefreshTokenFromPayload(domain.RefreshAuthenticationUseCase, payload)
	if err != nil {
		return "", err
	}
	if err := a.tokens.VerifyRefreshToken(refreshToken); err != nil {
		return "", err
	}
	if err := a.storage.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return "", err
	}

	claims, err := a.tokens.DecodePayload(refreshToken)
	if err != nil {
		return "", err
	}
	accessToken, err := a.tokens.CreateAccessToken(claims)
	if err != nil {
		logger.Log.Error("failed to create access token", "user_id", claims.Id, "error", err)
		return "", err
	}
	return accessToken, nil
}

// Logout revokes a refresh token.
func (a *Auth) Logout(ctx context.Context, payload domain.Payload) error {
	refreshToken, err := domain.RefreshTokenFromPayload(domain.DeleteAuthenticationUseCase, payload)
	if err != nil {
		return err
	}
	if err := a.storage.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return err
	}
	return a.storage.DeleteToken(ctx, refreshToken)
}
