package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
)

// ToggleLikeComment removes the like if it exists and adds it otherwise.
// A concurrent insert of the same pair is absorbed by the unique constraint.
func (s *Storage) ToggleLikeComment(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.toggleLike(ctx, tx, commentId, userId)
	})
}

func (s *Storage) toggleLike(ctx context.Context, q Querier, commentId domain.CommentId, userId domain.UserId) error {
	result, err := q.ExecContext(ctx, "DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2", commentId, userId)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if removed > 0 {
		return nil
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO comment_likes (id, comment_id, user_id) VALUES ($1, $2, $3)
		ON CONFLICT (comment_id, user_id) DO NOTHING`,
		s.ids("like"), commentId, userId,
	)
	if err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) GetLikeCountByCommentId(ctx context.Context, commentId domain.CommentId) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1", commentId).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
