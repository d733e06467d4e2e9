package domain

import (
	"github.com/itchan-dev/forum/shared/errors"
)

var (
	newAuthEntity   = entity{"NEW_AUTH", "create new authentication"}
	userLoginEntity = entity{"USER_LOGIN", "log in"}
)

// Use cases that accept a bare refresh token payload.
const (
	RefreshAuthenticationUseCase = "REFRESH_AUTHENTICATION_USE_CASE"
	DeleteAuthenticationUseCase  = "DELETE_AUTHENTICATION_USE_CASE"
)

// Refresh token payload reasons.
const (
	NotContainRefreshToken              = "NOT_CONTAIN_REFRESH_TOKEN"
	PayloadNotMeetDataTypeSpecification = "PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"
)

type NewAuthentication struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func NewAuthenticationFromPayload(p Payload) (NewAuthentication, error) {
	v, err := newAuthEntity.strings(p, "accessToken", "refreshToken")
	if err != nil {
		return NewAuthentication{}, err
	}
	return NewAuthentication{AccessToken: v[0], RefreshToken: v[1]}, nil
}

type UserLogin struct {
	Username Username
	Password string
}

func UserLoginFromPayload(p Payload) (UserLogin, error) {
	v, err := userLoginEntity.strings(p, "username", "password")
	if err != nil {
		return UserLogin{}, err
	}
	return UserLogin{Username: v[0], Password: v[1]}, nil
}

// RefreshTokenFromPayload extracts the refreshToken field for the given use case.
func RefreshTokenFromPayload(useCase string, p Payload) (string, error) {
	v, ok := p["refreshToken"]
	if !ok || v == nil || v == "" {
		return "", &errors.ValidationError{
			Code:    useCase + "." + NotContainRefreshToken,
			Message: "refresh token is required",
		}
	}
	token, ok := v.(string)
	if !ok {
		return "", &errors.ValidationError{
			Code:    useCase + "." + PayloadNotMeetDataTypeSpecification,
			Message: "refresh token must be a string",
		}
	}
	return token, nil
}

// TokenClaims is the identity carried by access and refresh tokens.
type TokenClaims struct {
	Id       UserId
	Username Username
}
