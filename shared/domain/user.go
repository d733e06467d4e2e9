package domain

import (
	"regexp"
	"unicode/utf8"
)

const maxUsernameLen = 50

const (
	UsernameLimitChar                  = "USERNAME_LIMIT_CHAR"
	UsernameContainRestrictedCharacter = "USERNAME_CONTAIN_RESTRICTED_CHARACTER"
)

var (
	registerUserEntity   = entity{"REGISTER_USER", "create new user"}
	registeredUserEntity = entity{"REGISTERED_USER", "create registered user"}

	usernamePattern = regexp.MustCompile(`^\w+$`)
)

type RegisterUser struct {
	Username Username
	Password string
	Fullname string
}

func RegisterUserFromPayload(p Payload) (RegisterUser, error) {
	v, err := registerUserEntity.strings(p, "username", "password", "fullname")
	if err != nil {
		return RegisterUser{}, err
	}
	username := v[0]
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return RegisterUser{}, registerUserEntity.invalid(UsernameLimitChar)
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, registerUserEntity.invalid(UsernameContainRestrictedCharacter)
	}
	return RegisterUser{Username: username, Password: v[1], Fullname: v[2]}, nil
}

type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

func NewRegisteredUser(p Payload) (RegisteredUser, error) {
	v, err := registeredUserEntity.strings(p, "id", "username", "fullname")
	if err != nil {
		return RegisteredUser{}, err
	}
	return RegisteredUser{Id: v[0], Username: v[1], Fullname: v[2]}, nil
}
