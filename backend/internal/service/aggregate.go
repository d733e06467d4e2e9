package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"golang.org/x/sync/errgroup"
)

type likeCounter interface {
	GetLikeCountByCommentId(ctx context.Context, commentId domain.CommentId) (int, error)
}

// likeCounts looks up like counts for every comment, at most limit at a time.
// Result i belongs to comments[i] regardless of completion order.
func likeCounts(ctx context.Context, counter likeCounter, comments []domain.CommentRecord, limit int) ([]int, error) {
	counts := make([]int, len(comments))
	if len(comments) == 0 {
		return counts, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, c := range comments {
		i, c := i, c
		g.Go(func() error {
			n, err := counter.GetLikeCountByCommentId(gctx, c.Id)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// groupReplies buckets replies by parent comment, keeping store order inside each bucket.
func groupReplies(replies []domain.ReplyRecord) map[domain.CommentId][]domain.ReplyDetail {
	grouped := make(map[domain.CommentId][]domain.ReplyDetail)
	for _, r := range replies {
		content := r.Content
		if r.IsDeleted {
			content = domain.DeletedReplyContent
		}
		grouped[r.CommentId] = append(grouped[r.CommentId], domain.ReplyDetail{
			Id:       r.Id,
			Content:  content,
			Date:     r.Date,
			Username: r.Username,
		})
	}
	return grouped
}

// aggregateComments builds the nested comment list. likes must be index-aligned with comments.
func aggregateComments(comments []domain.CommentRecord, replies []domain.ReplyRecord, likes []int) []domain.CommentDetail {
	grouped := groupReplies(replies)

	result := make([]domain.CommentDetail, 0, len(comments))
	for i, c := range comments {
		content := c.Content
		if c.IsDeleted {
			content = domain.DeletedCommentContent
		}
		commentReplies := grouped[c.Id]
		if commentReplies == nil {
			commentReplies = []domain.ReplyDetail{}
		}
		result = append(result, domain.CommentDetail{
			Id:        c.Id,
			Username:  c.Username,
			Date:      c.Date,
			Content:   content,
			LikeCount: likes[i],
			Replies:   commentReplies,
		})
	}
	return result
}
