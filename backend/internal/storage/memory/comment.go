package memory

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

const commentNotFound = "komentar tidak ditemukan"

func (s *Storage) AddComment(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[c.ThreadId]; !ok {
		return domain.AddedComment{}, notFound("thread tidak ditemukan")
	}
	stored := &comment{id: s.ids("comment"), threadId: c.ThreadId, owner: c.Owner, content: c.Content, date: s.now()}
	added, err := domain.NewAddedComment(domain.Payload{"id": stored.id, "content": stored.content, "owner": stored.owner})
	if err != nil {
		return domain.AddedComment{}, err
	}
	s.comments = append(s.comments, stored)
	s.commentsById[stored.id] = stored
	return added, nil
}

func (s *Storage) VerifyCommentExists(ctx context.Context, commentId domain.CommentId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.findComment(commentId) == nil {
		return notFound(commentNotFound)
	}
	return nil
}

func (s *Storage) VerifyCommentInThread(ctx context.Context, commentId domain.CommentId, threadId domain.ThreadId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.findComment(commentId)
	if c == nil || c.threadId != threadId {
		return notFound(commentNotFound)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.findComment(commentId)
	if c == nil || c.owner != owner {
		return forbidden()
	}
	return nil
}

func (s *Storage) DeleteComment(ctx context.Context, commentId domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findComment(commentId)
	if c == nil {
		return notFound(commentNotFound)
	}
	c.isDeleted = true
	return nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []domain.CommentRecord
	for _, c := range s.comments {
		if c.threadId != threadId {
			continue
		}
		records = append(records, domain.CommentRecord{
			Id:        c.id,
			Username:  s.username(c.owner),
			Date:      c.date,
			Content:   c.content,
			IsDeleted: c.isDeleted,
		})
	}
	return records, nil
}

func (s *Storage) ToggleLikeComment(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findComment(commentId) == nil {
		return notFound(commentNotFound)
	}
	key := likeKey{commentId: commentId, userId: userId}
	if _, liked := s.likes[key]; liked {
		delete(s.likes, key)
		return nil
	}
	s.likes[key] = struct{}{}
	return nil
}

func (s *Storage) GetLikeCountByCommentId(ctx context.Context, commentId domain.CommentId) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for key := range s.likes {
		if key.commentId == commentId {
			count++
		}
	}
	return count, nil
}
