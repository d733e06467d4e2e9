package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/stretchr/testify/require"
)

type MockAuthService struct {
	LoginFunc   func(ctx context.Context, payload domain.Payload) (domain.NewAuthentication, error)
	RefreshFunc func(ctx context.Context, payload domain.Payload) (string, error)
	LogoutFunc  func(ctx context.Context, payload domain.Payload) error
}

func (m *MockAuthService) Login(ctx context.Context, payload domain.Payload) (domain.NewAuthentication, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, payload)
	}
	return domain.NewAuthentication{AccessToken: "access_token", RefreshToken: "refresh_token"}, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, payload domain.Payload) (string, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, payload)
	}
	return "access_token", nil
}

func (m *MockAuthService) Logout(ctx context.Context, payload domain.Payload) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, payload)
	}
	return nil
}

type MockUserService struct {
	RegisterFunc func(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
}

func (m *MockUserService) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, payload)
	}
	return domain.RegisteredUser{Id: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, nil
}

type MockThreadService struct {
	AddFunc       func(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	GetDetailFunc func(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Add(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, payload)
	}
	return domain.AddedThread{Id: "thread-123", Title: "title", Owner: "user-123"}, nil
}

func (m *MockThreadService) GetDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(ctx, threadId)
	}
	return domain.ThreadDetail{Id: threadId, Comments: []domain.CommentDetail{}}, nil
}

type MockCommentService struct {
	AddFunc        func(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	DeleteFunc     func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
	ToggleLikeFunc func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

func (m *MockCommentService) Add(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, payload)
	}
	return domain.AddedComment{Id: "comment-123", Content: "content", Owner: "user-123"}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, threadId, commentId, owner)
	}
	return nil
}

func (m *MockCommentService) ToggleLike(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, threadId, commentId, userId)
	}
	return nil
}

type MockReplyService struct {
	AddFunc    func(ctx context.Context, threadId domain.ThreadId, payload domain.Payload) (domain.AddedReply, error)
	DeleteFunc func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

func (m *MockReplyService) Add(ctx context.Context, threadId domain.ThreadId, payload domain.Payload) (domain.AddedReply, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, threadId, payload)
	}
	return domain.AddedReply{Id: "reply-123", Content: "content", Owner: "user-123"}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, threadId, commentId, replyId, owner)
	}
	return nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

type mocks struct {
	auth    *MockAuthService
	user    *MockUserService
	thread  *MockThreadService
	comment *MockCommentService
	reply   *MockReplyService
	health  *MockHealthChecker
}

func setupHandler() (*Handler, *mocks) {
	m := &mocks{
		auth:    &MockAuthService{},
		user:    &MockUserService{},
		thread:  &MockThreadService{},
		comment: &MockCommentService{},
		reply:   &MockReplyService{},
		health:  &MockHealthChecker{},
	}
	return New(m.auth, m.user, m.thread, m.comment, m.reply, m.health), m
}

// asUser stands in for NeedAuth by placing fixed claims into the context.
func asUser(id domain.UserId) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := &domain.TokenClaims{Id: id, Username: "dicoding"}
			ctx := context.WithValue(r.Context(), mw.UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// newTestRouter mounts h on the production paths, authenticating every
// protected route as user-123.
func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/users", h.PostUser)
	r.Post("/authentications", h.PostAuthentication)
	r.Put("/authentications", h.PutAuthentication)
	r.Delete("/authentications", h.DeleteAuthentication)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Group(func(r chi.Router) {
		r.Use(asUser("user-123"))
		r.Post("/threads", h.PostThread)
		r.Post("/threads/{threadId}/comments", h.PostComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Put("/threads/{threadId}/comments/{commentId}/likes", h.PutCommentLike)
		r.Post("/threads/{threadId}/comments/{commentId}/replies", h.PostReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	})
	return r
}

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	newTestRouter(h).ServeHTTP(rr, req)
	return rr
}

// decodeResponse unmarshals the envelope, decoding data into out when out is non-nil.
func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, out any) api.Response {
	t.Helper()
	var raw struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	if out != nil {
		require.NoError(t, json.Unmarshal(raw.Data, out))
	}
	return api.Response{Status: raw.Status, Message: raw.Message}
}

// httptestServe calls fn directly, bypassing the router and its auth stand-in.
func httptestServe(fn http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	fn(rr, req)
	return rr
}
