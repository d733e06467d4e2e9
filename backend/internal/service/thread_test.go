package service

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

func testConfig() *config.Public {
	return &config.Public{LikeCountConcurrency: 4}
}

func newThreadService(threads *MockThreadStorage, comments *MockCommentStorage, replies *MockReplyStorage) ThreadService {
	return NewThread(threads, comments, replies, testConfig())
}

// --- Tests ---

func TestThreadAdd(t *testing.T) {
	ctx := testContext(t)
	payload := domain.Payload{"title": "sebuah thread", "body": "sebuah body thread", "owner": "user-123"}

	t.Run("Success", func(t *testing.T) {
		var stored domain.NewThread
		threads := &MockThreadStorage{
			addThreadFunc: func(thread domain.NewThread) (domain.AddedThread, error) {
				stored = thread
				return domain.AddedThread{Id: "thread-h_W1Plfpj0TyjsXpMlaEo", Title: thread.Title, Owner: thread.Owner}, nil
			},
		}
		service := newThreadService(threads, &MockCommentStorage{}, &MockReplyStorage{})

		added, err := service.Add(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, domain.NewThread{Title: "sebuah thread", Body: "sebuah body thread", Owner: "user-123"}, stored)
		assert.Equal(t, domain.AddedThread{Id: "thread-h_W1Plfpj0TyjsXpMlaEo", Title: "sebuah thread", Owner: "user-123"}, added)
	})

	t.Run("Invalid payload does not reach storage", func(t *testing.T) {
		log := &callLog{}
		service := newThreadService(&MockThreadStorage{log: log}, &MockCommentStorage{}, &MockReplyStorage{})

		_, err := service.Add(ctx, domain.Payload{"title": "abc", "owner": "user-123"})

		var validationErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY", validationErr.Code)
		assert.Empty(t, log.list())
	})

	t.Run("Storage error propagates", func(t *testing.T) {
		storageErr := errors.New("db down")
		threads := &MockThreadStorage{
			addThreadFunc: func(domain.NewThread) (domain.AddedThread, error) { return domain.AddedThread{}, storageErr },
		}
		service := newThreadService(threads, &MockCommentStorage{}, &MockReplyStorage{})

		_, err := service.Add(ctx, payload)
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestThreadGetDetail(t *testing.T) {
	ctx := testContext(t)
	threadDate := time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC)

	t.Run("Aggregates comments, replies and likes", func(t *testing.T) {
		log := &callLog{}
		threads := &MockThreadStorage{
			log: log,
			getThreadDetailFunc: func(threadId domain.ThreadId) (domain.ThreadDetail, error) {
				return domain.ThreadDetail{Id: threadId, Title: "sebuah thread", Body: "sebuah body thread", Date: threadDate, Username: "dicoding"}, nil
			},
		}
		comments := &MockCommentStorage{
			log: log,
			getCommentsFunc: func(threadId domain.ThreadId) ([]domain.CommentRecord, error) {
				return []domain.CommentRecord{
					{Id: "comment-1", Username: "johndoe", Date: threadDate.Add(time.Minute), Content: "sebuah comment"},
					{Id: "comment-2", Username: "dicoding", Date: threadDate.Add(2 * time.Minute), Content: "rahasia", IsDeleted: true},
				}, nil
			},
			likeCountFunc: func(commentId domain.CommentId) (int, error) {
				if commentId == "comment-1" {
					return 2, nil
				}
				return 0, nil
			},
		}
		var requestedIds []domain.CommentId
		replies := &MockReplyStorage{
			log: log,
			getRepliesFunc: func(commentIds []domain.CommentId) ([]domain.ReplyRecord, error) {
				requestedIds = commentIds
				return []domain.ReplyRecord{
					{Id: "reply-1", CommentId: "comment-1", Username: "dicoding", Date: threadDate.Add(3 * time.Minute), Content: "sebuah balasan", IsDeleted: true},
					{Id: "reply-2", CommentId: "comment-1", Username: "johndoe", Date: threadDate.Add(4 * time.Minute), Content: "balasan kedua"},
				}, nil
			},
		}
		service := newThreadService(threads, comments, replies)

		detail, err := service.GetDetail(ctx, "thread-123")

		require.NoError(t, err)
		assert.Equal(t, []string{"VerifyThreadExists", "GetThreadDetail", "GetCommentsByThreadId", "GetRepliesByCommentIds"}, log.list())
		assert.Equal(t, []domain.CommentId{"comment-1", "comment-2"}, requestedIds)

		assert.Equal(t, "thread-123", detail.Id)
		assert.Equal(t, "dicoding", detail.Username)
		require.Len(t, detail.Comments, 2)

		first := detail.Comments[0]
		assert.Equal(t, "comment-1", first.Id)
		assert.Equal(t, "sebuah comment", first.Content)
		assert.Equal(t, 2, first.LikeCount)
		require.Len(t, first.Replies, 2)
		assert.Equal(t, domain.DeletedReplyContent, first.Replies[0].Content)
		assert.Equal(t, "balasan kedua", first.Replies[1].Content)

		second := detail.Comments[1]
		assert.Equal(t, "comment-2", second.Id)
		assert.Equal(t, domain.DeletedCommentContent, second.Content)
		assert.Equal(t, 0, second.LikeCount)
		assert.NotNil(t, second.Replies)
		assert.Empty(t, second.Replies)
	})

	t.Run("Thread without comments skips replies lookup", func(t *testing.T) {
		log := &callLog{}
		service := newThreadService(&MockThreadStorage{log: log}, &MockCommentStorage{log: log}, &MockReplyStorage{log: log})

		detail, err := service.GetDetail(ctx, "thread-123")

		require.NoError(t, err)
		assert.NotNil(t, detail.Comments)
		assert.Empty(t, detail.Comments)
		assert.NotContains(t, log.list(), "GetRepliesByCommentIds")
	})

	t.Run("Missing thread", func(t *testing.T) {
		log := &callLog{}
		threads := &MockThreadStorage{
			log: log,
			verifyThreadExistsFunc: func(domain.ThreadId) error {
				return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
			},
		}
		service := newThreadService(threads, &MockCommentStorage{log: log}, &MockReplyStorage{log: log})

		_, err := service.GetDetail(ctx, "thread-xxx")

		assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))
		assert.Equal(t, []string{"VerifyThreadExists"}, log.list())
	})

	t.Run("Like count failure aborts", func(t *testing.T) {
		countErr := errors.New("count failed")
		comments := &MockCommentStorage{
			getCommentsFunc: func(domain.ThreadId) ([]domain.CommentRecord, error) {
				return []domain.CommentRecord{{Id: "comment-1"}, {Id: "comment-2"}}, nil
			},
			likeCountFunc: func(commentId domain.CommentId) (int, error) {
				if commentId == "comment-2" {
					return 0, countErr
				}
				return 1, nil
			},
		}
		service := newThreadService(&MockThreadStorage{}, comments, &MockReplyStorage{})

		_, err := service.GetDetail(ctx, "thread-123")
		assert.ErrorIs(t, err, countErr)
	})

	t.Run("Like counts respect concurrency limit", func(t *testing.T) {
		records := make([]domain.CommentRecord, 20)
		for i := range records {
			records[i] = domain.CommentRecord{Id: domain.CommentId("comment-" + string(rune('a'+i)))}
		}
		var inFlight, peak atomic.Int32
		comments := &MockCommentStorage{
			getCommentsFunc: func(domain.ThreadId) ([]domain.CommentRecord, error) { return records, nil },
			likeCountFunc: func(commentId domain.CommentId) (int, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inFlight.Add(-1)
				return int(commentId[len(commentId)-1] - 'a'), nil
			},
		}
		service := newThreadService(&MockThreadStorage{}, comments, &MockReplyStorage{})

		detail, err := service.GetDetail(ctx, "thread-123")

		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int32(testConfig().LikeCountConcurrency))
		for i, c := range detail.Comments {
			assert.Equal(t, records[i].Id, c.Id)
			assert.Equal(t, i, c.LikeCount)
		}
	})
}
