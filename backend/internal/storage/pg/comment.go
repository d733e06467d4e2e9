package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

const commentNotFound = "komentar tidak ditemukan"

func (s *Storage) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id, content, owner string
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO comments (id, thread_id, owner, content) VALUES ($1, $2, $3, $4) RETURNING id, content, owner",
		s.ids("comment"), comment.ThreadId, comment.Owner, comment.Content,
	).Scan(&id, &content, &owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewAddedComment(domain.Payload{"id": id, "content": content, "owner": owner})
}

func (s *Storage) VerifyCommentExists(ctx context.Context, commentId domain.CommentId) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM comments WHERE id = $1", commentId).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: commentNotFound}
		}
		return fmt.Errorf("failed to query comment: %w", err)
	}
	return nil
}

func (s *Storage) VerifyCommentInThread(ctx context.Context, commentId domain.CommentId, threadId domain.ThreadId) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2", commentId, threadId).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: commentNotFound}
		}
		return fmt.Errorf("failed to query comment: %w", err)
	}
	return nil
}

// VerifyCommentOwner reports a missing comment as AuthorizationError too;
// callers check existence first.
func (s *Storage) VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var actual domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", commentId).Scan(&actual)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to query comment owner: %w", err)
	}
	if actual != owner {
		return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
	}
	return nil
}

// DeleteComment is a soft delete, content stays in place.
func (s *Storage) DeleteComment(ctx context.Context, commentId domain.CommentId) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, "UPDATE comments SET is_delete = true WHERE id = $1", commentId)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &internal_errors.NotFoundError{Message: commentNotFound}
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, u.username, c.date, c.content, c.is_delete
		FROM comments c
		JOIN users u ON u.id = c.owner
		WHERE c.thread_id = $1
		ORDER BY c.date ASC`,
		threadId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentRecord
	for rows.Next() {
		var c domain.CommentRecord
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}
