package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type ReplyService interface {
	Add(ctx context.Context, threadId domain.ThreadId, payload domain.Payload) (domain.AddedReply, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

type Reply struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

type ReplyStorage interface {
	AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error)
	VerifyReplyExists(ctx context.Context, replyId domain.ReplyId) error
	// VerifyReplyOwner fails with NotFoundError for a missing reply and AuthorizationError for a foreign one.
	VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, owner domain.UserId) error
	DeleteReply(ctx context.Context, replyId domain.ReplyId) error
	// GetRepliesByCommentIds returns replies of all given comments, oldest first.
	GetRepliesByCommentIds(ctx context.Context, commentIds []domain.CommentId) ([]domain.ReplyRecord, error)
}

func NewReply(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) ReplyService {
	return &Reply{threads: threads, comments: comments, replies: replies}
}

func (r *Reply) Add(ctx context.Context, threadId domain.ThreadId, payload domain.Payload) (domain.AddedReply, error) {
	newReply, err := domain.NewReplyFromPayload(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := r.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := r.comments.VerifyCommentInThread(ctx, newReply.CommentId, threadId); err != nil {
		return domain.AddedReply{}, err
	}
	return r.replies.AddReply(ctx, newReply)
}

func (r *Reply) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if err := r.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return err
	}
	if err := r.comments.VerifyCommentInThread(ctx, commentId, threadId); err != nil {
		return err
	}
	if err := r.replies.VerifyReplyExists(ctx, replyId); err != nil {
		return err
	}
	if err := r.replies.VerifyReplyOwner(ctx, replyId, owner); err != nil {
		return err
	}
	return r.replies.DeleteReply(ctx, replyId)
}
