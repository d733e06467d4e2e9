package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type CommentService interface {
	Add(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
	ToggleLike(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

type Comment struct {
	threads  ThreadStorage
	comments CommentStorage
}

type CommentStorage interface {
	AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error)
	VerifyCommentExists(ctx context.Context, commentId domain.CommentId) error
	// VerifyCommentInThread fails with NotFoundError when the comment is absent or belongs to another thread.
	VerifyCommentInThread(ctx context.Context, commentId domain.CommentId, threadId domain.ThreadId) error
	VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	DeleteComment(ctx context.Context, commentId domain.CommentId) error
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error)
	ToggleLikeComment(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error
	GetLikeCountByCommentId(ctx context.Context, commentId domain.CommentId) (int, error)
}

func NewComment(threads ThreadStorage, comments CommentStorage) CommentService {
	return &Comment{threads: threads, comments: comments}
}

func (c *Comment) Add(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	newComment, err := domain.NewCommentFromPayload(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := c.threads.VerifyThreadExists(ctx, newComment.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}
	return c.comments.AddComment(ctx, newComment)
}

// Delete soft-deletes the comment. A comment under a different thread is reported as not found.
func (c *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if err := c.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return err
	}
	if err := c.comments.VerifyCommentInThread(ctx, commentId, threadId); err != nil {
		return err
	}
	if err := c.comments.VerifyCommentOwner(ctx, commentId, owner); err != nil {
		return err
	}
	return c.comments.DeleteComment(ctx, commentId)
}

// ToggleLike likes the comment for userId, or removes the like if it is already there.
func (c *Comment) ToggleLike(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if err := c.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return err
	}
	if err := c.comments.VerifyCommentInThread(ctx, commentId, threadId); err != nil {
		return err
	}
	return c.comments.ToggleLikeComment(ctx, commentId, userId)
}
