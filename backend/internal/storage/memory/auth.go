package memory

import (
	"context"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
	return nil
}

func (s *Storage) CheckAvailabilityToken(ctx context.Context, token string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.tokens[token]; !ok {
		return &internal_errors.InvariantError{Message: "refresh token tidak ditemukan di database"}
	}
	return nil
}

func (s *Storage) DeleteToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
