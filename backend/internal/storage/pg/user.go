package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

const (
	usernameTaken   = "username tidak tersedia"
	usernameUnknown = "username tidak ditemukan"
)

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM users WHERE username = $1", username).Scan(&one)
	if err == nil {
		return &internal_errors.InvariantError{Message: usernameTaken}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to query username: %w", err)
	}
	return nil
}

func (s *Storage) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id, username, fullname string
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4) RETURNING id, username, fullname",
		s.ids("user"), user.Username, user.Password, user.Fullname,
	).Scan(&id, &username, &fullname)
	if err != nil {
		// lost a race with another registration of the same name
		if sharedpg.IsUniqueViolation(err) {
			return domain.RegisteredUser{}, &internal_errors.InvariantError{Message: usernameTaken}
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return domain.NewRegisteredUser(domain.Payload{"id": id, "username": username, "fullname": fullname})
}

func (s *Storage) GetPasswordByUsername(ctx context.Context, username domain.Username) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var password string
	err := s.db.QueryRowContext(ctx, "SELECT password FROM users WHERE username = $1", username).Scan(&password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &internal_errors.InvariantError{Message: usernameUnknown}
		}
		return "", fmt.Errorf("failed to query password: %w", err)
	}
	return password, nil
}

func (s *Storage) GetIdByUsername(ctx context.Context, username domain.Username) (domain.UserId, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &internal_errors.InvariantError{Message: usernameUnknown}
		}
		return "", fmt.Errorf("failed to query user id: %w", err)
	}
	return id, nil
}
