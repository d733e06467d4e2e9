package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddToken(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "INSERT INTO authentications (token) VALUES ($1)", token); err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

func (s *Storage) CheckAvailabilityToken(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var stored string
	err := s.db.QueryRowContext(ctx, "SELECT token FROM authentications WHERE token = $1", token).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.InvariantError{Message: "refresh token tidak ditemukan di database"}
		}
		return fmt.Errorf("failed to query token: %w", err)
	}
	return nil
}

func (s *Storage) DeleteToken(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM authentications WHERE token = $1", token); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
