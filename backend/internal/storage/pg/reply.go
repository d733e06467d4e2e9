package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/lib/pq"
)

const replyNotFound = "balasan tidak ditemukan"

func (s *Storage) AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id, content, owner string
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO replies (id, comment_id, owner, content) VALUES ($1, $2, $3, $4) RETURNING id, content, owner",
		s.ids("reply"), reply.CommentId, reply.Owner, reply.Content,
	).Scan(&id, &content, &owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.NewAddedReply(domain.Payload{"id": id, "content": content, "owner": owner})
}

func (s *Storage) VerifyReplyExists(ctx context.Context, replyId domain.ReplyId) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM replies WHERE id = $1", replyId).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: replyNotFound}
		}
		return fmt.Errorf("failed to query reply: %w", err)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, owner domain.UserId) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var actual domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM replies WHERE id = $1", replyId).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: replyNotFound}
		}
		return fmt.Errorf("failed to query reply owner: %w", err)
	}
	if actual != owner {
		return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
	}
	return nil
}

// DeleteReply is a soft delete, content stays in place.
func (s *Storage) DeleteReply(ctx context.Context, replyId domain.ReplyId) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, "UPDATE replies SET is_delete = true WHERE id = $1", replyId)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &internal_errors.NotFoundError{Message: replyNotFound}
	}
	return nil
}

// GetRepliesByCommentIds fetches replies of every given comment in one query.
func (s *Storage) GetRepliesByCommentIds(ctx context.Context, commentIds []domain.CommentId) ([]domain.ReplyRecord, error) {
	if len(commentIds) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.comment_id, u.username, r.date, r.content, r.is_delete
		FROM replies r
		JOIN users u ON u.id = r.owner
		WHERE r.comment_id = ANY($1)
		ORDER BY r.date ASC`,
		pq.Array(commentIds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.ReplyRecord
	for rows.Next() {
		var r domain.ReplyRecord
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Username, &r.Date, &r.Content, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating replies: %w", err)
	}
	return replies, nil
}
