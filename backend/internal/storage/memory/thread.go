package memory

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

func (s *Storage) AddThread(ctx context.Context, t domain.NewThread) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &thread{id: s.ids("thread"), title: t.Title, body: t.Body, owner: t.Owner, date: s.now()}
	added, err := domain.NewAddedThread(domain.Payload{"id": stored.id, "title": stored.title, "owner": stored.owner})
	if err != nil {
		return domain.AddedThread{}, err
	}
	s.threads[stored.id] = stored
	return added, nil
}

func (s *Storage) VerifyThreadExists(ctx context.Context, threadId domain.ThreadId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.threads[threadId]; !ok {
		return notFound("thread tidak ditemukan")
	}
	return nil
}

func (s *Storage) GetThreadDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.threads[threadId]
	if !ok {
		return domain.ThreadDetail{}, notFound("thread tidak ditemukan")
	}
	return domain.ThreadDetail{
		Id:       t.id,
		Title:    t.title,
		Body:     t.body,
		Date:     t.date,
		Username: s.username(t.owner),
	}, nil
}
