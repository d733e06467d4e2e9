package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type UserService interface {
	Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
}

type User struct {
	storage UserStorage
	hasher  PasswordHasher
}

type UserStorage interface {
	// VerifyAvailableUsername fails with InvariantError when the username is taken.
	VerifyAvailableUsername(ctx context.Context, username domain.Username) error
	// AddUser stores user as is, Password must already be hashed.
	AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
	GetPasswordByUsername(ctx context.Context, username domain.Username) (string, error)
	GetIdByUsername(ctx context.Context, username domain.Username) (domain.UserId, error)
}

func NewUser(storage UserStorage, hasher PasswordHasher) UserService {
	return &User{storage: storage, hasher: hasher}
}

func (u *User) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	user, err := domain.RegisterUserFromPayload(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := u.storage.VerifyAvailableUsername(ctx, user.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	hash, err := u.hasher.Hash(user.Password)
	if err != nil {
		logger.Log.Error("failed to hash password", "username", user.Username, "error", err)
		return domain.RegisteredUser{}, err
	}
	user.Password = hash

	return u.storage.AddUser(ctx, user)
}
