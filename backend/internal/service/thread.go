package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
)

type ThreadService interface {
	Add(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	GetDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	threads         ThreadStorage
	comments        CommentStorage
	replies         ReplyStorage
	likeConcurrency int
}

type ThreadStorage interface {
	AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error)
	VerifyThreadExists(ctx context.Context, threadId domain.ThreadId) error
	// GetThreadDetail fills every field except Comments.
	GetThreadDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error)
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage, cfg *config.Public) ThreadService {
	return &Thread{
		threads:         threads,
		comments:        comments,
		replies:         replies,
		likeConcurrency: cfg.LikeCountConcurrency,
	}
}

func (t *Thread) Add(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	newThread, err := domain.NewThreadFromPayload(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return t.threads.AddThread(ctx, newThread)
}

// GetDetail returns the thread with its comments, replies and like counts.
// Thread, comments and replies are read in that order, like counts concurrently.
func (t *Thread) GetDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	if err := t.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return domain.ThreadDetail{}, err
	}

	thread, err := t.threads.GetThreadDetail(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := t.comments.GetCommentsByThreadId(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	var replies []domain.ReplyRecord
	if len(comments) > 0 {
		ids := make([]domain.CommentId, len(comments))
		for i, c := range comments {
			ids[i] = c.Id
		}
		replies, err = t.replies.GetRepliesByCommentIds(ctx, ids)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
	}

	likes, err := likeCounts(ctx, t.comments, comments, t.likeConcurrency)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	thread.Comments = aggregateComments(comments, replies, likes)
	return thread, nil
}
