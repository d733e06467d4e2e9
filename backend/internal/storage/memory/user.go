package memory

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.userByName(username) != nil {
		return &internal_errors.InvariantError{Message: "username tidak tersedia"}
	}
	return nil
}

func (s *Storage) AddUser(ctx context.Context, u domain.RegisterUser) (domain.RegisteredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userByName(u.Username) != nil {
		return domain.RegisteredUser{}, &internal_errors.InvariantError{Message: "username tidak tersedia"}
	}
	stored := &user{id: s.ids("user"), username: u.Username, password: u.Password, fullname: u.Fullname}
	added, err := domain.NewRegisteredUser(domain.Payload{"id": stored.id, "username": stored.username, "fullname": stored.fullname})
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	s.users[stored.id] = stored
	s.usernames[stored.username] = stored
	return added, nil
}

func (s *Storage) GetPasswordByUsername(ctx context.Context, username domain.Username) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userByName(username)
	if u == nil {
		return "", &internal_errors.InvariantError{Message: "username tidak ditemukan"}
	}
	return u.password, nil
}

func (s *Storage) GetIdByUsername(ctx context.Context, username domain.Username) (domain.UserId, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userByName(username)
	if u == nil {
		return "", &internal_errors.InvariantError{Message: "username tidak ditemukan"}
	}
	return u.id, nil
}
