package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
)

// --- Mocks ---

// callLog records the order in which mock methods run.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	log                    *callLog
	addThreadFunc          func(thread domain.NewThread) (domain.AddedThread, error)
	verifyThreadExistsFunc func(threadId domain.ThreadId) error
	getThreadDetailFunc    func(threadId domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadStorage) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	m.log.add("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadStorage) VerifyThreadExists(ctx context.Context, threadId domain.ThreadId) error {
	m.log.add("VerifyThreadExists")
	if m.verifyThreadExistsFunc != nil {
		return m.verifyThreadExistsFunc(threadId)
	}
	return nil
}

func (m *MockThreadStorage) GetThreadDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	m.log.add("GetThreadDetail")
	if m.getThreadDetailFunc != nil {
		return m.getThreadDetailFunc(threadId)
	}
	return domain.ThreadDetail{Id: threadId}, nil
}

// MockCommentStorage mocks the CommentStorage interface.
type MockCommentStorage struct {
	log                       *callLog
	addCommentFunc            func(comment domain.NewComment) (domain.AddedComment, error)
	verifyCommentExistsFunc   func(commentId domain.CommentId) error
	verifyCommentInThreadFunc func(commentId domain.CommentId, threadId domain.ThreadId) error
	verifyCommentOwnerFunc    func(commentId domain.CommentId, owner domain.UserId) error
	deleteCommentFunc         func(commentId domain.CommentId) error
	getCommentsFunc           func(threadId domain.ThreadId) ([]domain.CommentRecord, error)
	toggleLikeFunc            func(commentId domain.CommentId, userId domain.UserId) error
	likeCountFunc             func(commentId domain.CommentId) (int, error)
}

func (m *MockCommentStorage) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	m.log.add("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentStorage) VerifyCommentExists(ctx context.Context, commentId domain.CommentId) error {
	m.log.add("VerifyCommentExists")
	if m.verifyCommentExistsFunc != nil {
		return m.verifyCommentExistsFunc(commentId)
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentInThread(ctx context.Context, commentId domain.CommentId, threadId domain.ThreadId) error {
	m.log.add("VerifyCommentInThread")
	if m.verifyCommentInThreadFunc != nil {
		return m.verifyCommentInThreadFunc(commentId, threadId)
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	m.log.add("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(commentId, owner)
	}
	return nil
}

func (m *MockCommentStorage) DeleteComment(ctx context.Context, commentId domain.CommentId) error {
	m.log.add("DeleteComment")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(commentId)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	m.log.add("GetCommentsByThreadId")
	if m.getCommentsFunc != nil {
		return m.getCommentsFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentStorage) ToggleLikeComment(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	m.log.add("ToggleLikeComment")
	if m.toggleLikeFunc != nil {
		return m.toggleLikeFunc(commentId, userId)
	}
	return nil
}

// GetLikeCountByCommentId runs concurrently, so it is not added to the call log.
func (m *MockCommentStorage) GetLikeCountByCommentId(ctx context.Context, commentId domain.CommentId) (int, error) {
	if m.likeCountFunc != nil {
		return m.likeCountFunc(commentId)
	}
	return 0, nil
}

// MockReplyStorage mocks the ReplyStorage interface.
type MockReplyStorage struct {
	log                   *callLog
	addReplyFunc          func(reply domain.NewReply) (domain.AddedReply, error)
	verifyReplyExistsFunc func(replyId domain.ReplyId) error
	verifyReplyOwnerFunc  func(replyId domain.ReplyId, owner domain.UserId) error
	deleteReplyFunc       func(replyId domain.ReplyId) error
	getRepliesFunc        func(commentIds []domain.CommentId) ([]domain.ReplyRecord, error)
}

func (m *MockReplyStorage) AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error) {
	m.log.add("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply)
	}
	return domain.AddedReply{Id: "reply-123", Content: reply.Content, Owner: reply.Owner}, nil
}

func (m *MockReplyStorage) VerifyReplyExists(ctx context.Context, replyId domain.ReplyId) error {
	m.log.add("VerifyReplyExists")
	if m.verifyReplyExistsFunc != nil {
		return m.verifyReplyExistsFunc(replyId)
	}
	return nil
}

func (m *MockReplyStorage) VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, owner domain.UserId) error {
	m.log.add("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(replyId, owner)
	}
	return nil
}

func (m *MockReplyStorage) DeleteReply(ctx context.Context, replyId domain.ReplyId) error {
	m.log.add("DeleteReply")
	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(replyId)
	}
	return nil
}

func (m *MockReplyStorage) GetRepliesByCommentIds(ctx context.Context, commentIds []domain.CommentId) ([]domain.ReplyRecord, error) {
	m.log.add("GetRepliesByCommentIds")
	if m.getRepliesFunc != nil {
		return m.getRepliesFunc(commentIds)
	}
	return nil, nil
}

// MockAuthStorage mocks the AuthStorage interface.
type MockAuthStorage struct {
	log                   *callLog
	addTokenFunc          func(token string) error
	checkAvailabilityFunc func(token string) error
	deleteTokenFunc       func(token string) error
}

func (m *MockAuthStorage) AddToken(ctx context.Context, token string) error {
	m.log.add("AddToken")
	if m.addTokenFunc != nil {
		return m.addTokenFunc(token)
	}
	return nil
}

func (m *MockAuthStorage) CheckAvailabilityToken(ctx context.Context, token string) error {
	m.log.add("CheckAvailabilityToken")
	if m.checkAvailabilityFunc != nil {
		return m.checkAvailabilityFunc(token)
	}
	return nil
}

func (m *MockAuthStorage) DeleteToken(ctx context.Context, token string) error {
	m.log.add("DeleteToken")
	if m.deleteTokenFunc != nil {
		return m.deleteTokenFunc(token)
	}
	return nil
}

// MockUserStorage mocks the UserStorage interface.
type MockUserStorage struct {
	log                         *callLog
	verifyAvailableUsernameFunc func(username domain.Username) error
	addUserFunc                 func(user domain.RegisterUser) (domain.RegisteredUser, error)
	getPasswordFunc             func(username domain.Username) (string, error)
	getIdFunc                   func(username domain.Username) (domain.UserId, error)
}

func (m *MockUserStorage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	m.log.add("VerifyAvailableUsername")
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserStorage) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	m.log.add("AddUser")
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserStorage) GetPasswordByUsername(ctx context.Context, username domain.Username) (string, error) {
	m.log.add("GetPasswordByUsername")
	if m.getPasswordFunc != nil {
		return m.getPasswordFunc(username)
	}
	return "hashed", nil
}

func (m *MockUserStorage) GetIdByUsername(ctx context.Context, username domain.Username) (domain.UserId, error) {
	m.log.add("GetIdByUsername")
	if m.getIdFunc != nil {
		return m.getIdFunc(username)
	}
	return "user-123", nil
}

// MockTokenManager mocks the TokenManager interface.
type MockTokenManager struct {
	log                    *callLog
	createAccessTokenFunc  func(claims domain.TokenClaims) (string, error)
	createRefreshTokenFunc func(claims domain.TokenClaims) (string, error)
	verifyRefreshTokenFunc func(token string) error
	decodePayloadFunc      func(token string) (domain.TokenClaims, error)
}

func (m *MockTokenManager) CreateAccessToken(claims domain.TokenClaims) (string, error) {
	m.log.add("CreateAccessToken")
	if m.createAccessTokenFunc != nil {
		return m.createAccessTokenFunc(claims)
	}
	return "access_token", nil
}

func (m *MockTokenManager) CreateRefreshToken(claims domain.TokenClaims) (string, error) {
	m.log.add("CreateRefreshToken")
	if m.createRefreshTokenFunc != nil {
		return m.createRefreshTokenFunc(claims)
	}
	return "refresh_token", nil
}

func (m *MockTokenManager) VerifyRefreshToken(token string) error {
	m.log.add("VerifyRefreshToken")
	if m.verifyRefreshTokenFunc != nil {
		return m.verifyRefreshTokenFunc(token)
	}
	return nil
}

func (m *MockTokenManager) DecodePayload(token string) (domain.TokenClaims, error) {
	m.log.add("DecodePayload")
	if m.decodePayloadFunc != nil {
		return m.decodePayloadFunc(token)
	}
	return domain.TokenClaims{Id: "user-123", Username: "dicoding"}, nil
}

// MockPasswordHasher mocks the PasswordHasher interface.
type MockPasswordHasher struct {
	log                 *callLog
	hashFunc            func(password string) (string, error)
	comparePasswordFunc func(password, hash string) error
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.log.add("Hash")
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) ComparePassword(password, hash string) error {
	m.log.add("ComparePassword")
	if m.comparePasswordFunc != nil {
		return m.comparePasswordFunc(password, hash)
	}
	return nil
}
