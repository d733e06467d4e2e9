package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.addThread(ctx, s.db, thread)
}

func (s *Storage) VerifyThreadExists(ctx context.Context, threadId domain.ThreadId) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.verifyThreadExists(ctx, s.db, threadId)
}

func (s *Storage) GetThreadDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.getThreadDetail(ctx, s.db, threadId)
}

func (s *Storage) addThread(ctx context.Context, q Querier, thread domain.NewThread) (domain.AddedThread, error) {
	var id, title, owner string
	err := q.QueryRowContext(ctx,
		"INSERT INTO threads (id, title, body, owner) VALUES ($1, $2, $3, $4) RETURNING id, title, owner",
		s.ids("thread"), thread.Title, thread.Body, thread.Owner,
	).Scan(&id, &title, &owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewAddedThread(domain.Payload{"id": id, "title": title, "owner": owner})
}

func (s *Storage) verifyThreadExists(ctx context.Context, q Querier, threadId domain.ThreadId) error {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM threads WHERE id = $1", threadId).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return fmt.Errorf("failed to query thread: %w", err)
	}
	return nil
}

func (s *Storage) getThreadDetail(ctx context.Context, q Querier, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	var thread domain.ThreadDetail
	err := q.QueryRowContext(ctx, `
		SELECT t.id, t.title, t.body, t.date, u.username
		FROM threads t
		JOIN users u ON u.id = t.owner
		WHERE t.id = $1`,
		threadId,
	).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadDetail{}, &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return domain.ThreadDetail{}, fmt.Errorf("failed to query thread detail: %w", err)
	}
	return thread, nil
}
