package memory

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

const replyNotFound = "balasan tidak ditemukan"

func (s *Storage) AddReply(ctx context.Context, r domain.NewReply) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findComment(r.CommentId) == nil {
		return domain.AddedReply{}, notFound(commentNotFound)
	}
	stored := &reply{id: s.ids("reply"), commentId: r.CommentId, owner: r.Owner, content: r.Content, date: s.now()}
	added, err := domain.NewAddedReply(domain.Payload{"id": stored.id, "content": stored.content, "owner": stored.owner})
	if err != nil {
		return domain.AddedReply{}, err
	}
	s.replies = append(s.replies, stored)
	s.repliesById[stored.id] = stored
	return added, nil
}

func (s *Storage) VerifyReplyExists(ctx context.Context, replyId domain.ReplyId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.findReply(replyId) == nil {
		return notFound(replyNotFound)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, owner domain.UserId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := s.findReply(replyId)
	if r == nil {
		return notFound(replyNotFound)
	}
	if r.owner != owner {
		return forbidden()
	}
	return nil
}

func (s *Storage) DeleteReply(ctx context.Context, replyId domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.findReply(replyId)
	if r == nil {
		return notFound(replyNotFound)
	}
	r.isDeleted = true
	return nil
}

func (s *Storage) GetRepliesByCommentIds(ctx context.Context, commentIds []domain.CommentId) ([]domain.ReplyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[domain.CommentId]struct{}, len(commentIds))
	for _, id := range commentIds {
		wanted[id] = struct{}{}
	}

	var records []domain.ReplyRecord
	for _, r := range s.replies {
		if _, ok := wanted[r.commentId]; !ok {
			continue
		}
		records = append(records, domain.ReplyRecord{
			Id:        r.id,
			CommentId: r.commentId,
			Username:  s.username(r.owner),
			Date:      r.date,
			Content:   r.content,
			IsDeleted: r.isDeleted,
		})
	}
	return records, nil
}
