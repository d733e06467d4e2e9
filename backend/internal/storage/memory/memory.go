// Package memory is a process-local implementation of every storage port.
// It keeps no data across restarts and is meant for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/itchan-dev/forum/backend/internal/utils"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

type user struct {
	id       domain.UserId
	username domain.Username
	password string
	fullname string
}

type thread struct {
	id    domain.ThreadId
	title string
	body  string
	owner domain.UserId
	date  time.Time
}

type comment struct {
	id        domain.CommentId
	threadId  domain.ThreadId
	owner     domain.UserId
	content   string
	date      time.Time
	isDeleted bool
}

type reply struct {
	id        domain.ReplyId
	commentId domain.CommentId
	owner     domain.UserId
	content   string
	date      time.Time
	isDeleted bool
}

type likeKey struct {
	commentId domain.CommentId
	userId    domain.UserId
}

// Storage guards all tables with one mutex.
// Comments and replies are kept in insertion order, which is also date order;
// the byId and usernames maps index the same records.
type Storage struct {
	mu  sync.RWMutex
	ids utils.IdGenerator
	now func() time.Time

	users     map[domain.UserId]*user
	usernames map[domain.Username]*user
	tokens    map[string]struct{}
	threads   map[domain.ThreadId]*thread
	comments  []*comment
	replies   []*reply
	likes     map[likeKey]struct{}

	commentsById map[domain.CommentId]*comment
	repliesById  map[domain.ReplyId]*reply
}

func New(ids utils.IdGenerator) *Storage {
	return &Storage{
		ids:          ids,
		now:          time.Now,
		users:        make(map[domain.UserId]*user),
		usernames:    make(map[domain.Username]*user),
		tokens:       make(map[string]struct{}),
		threads:      make(map[domain.ThreadId]*thread),
		likes:        make(map[likeKey]struct{}),
		commentsById: make(map[domain.CommentId]*comment),
		repliesById:  make(map[domain.ReplyId]*reply),
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Cleanup() error {
	return nil
}

func (s *Storage) username(id domain.UserId) domain.Username {
	if u, ok := s.users[id]; ok {
		return u.username
	}
	return ""
}

func (s *Storage) userByName(username domain.Username) *user {
	return s.usernames[username]
}

func (s *Storage) findComment(id domain.CommentId) *comment {
	return s.commentsById[id]
}

func (s *Storage) findReply(id domain.ReplyId) *reply {
	return s.repliesById[id]
}

func notFound(msg string) error {
	return &internal_errors.NotFoundError{Message: msg}
}

func forbidden() error {
	return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
}
