package domain

import (
	"time"
)

var (
	newThreadEntity   = entity{"NEW_THREAD", "create new thread"}
	addedThreadEntity = entity{"ADDED_THREAD", "create added thread"}
)

type NewThread struct {
	Title string
	Body  string
	Owner UserId
}

func NewThreadFromPayload(p Payload) (NewThread, error) {
	v, err := newThreadEntity.strings(p, "title", "body", "owner")
	if err != nil {
		return NewThread{}, err
	}
	return NewThread{Title: v[0], Body: v[1], Owner: v[2]}, nil
}

type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

func NewAddedThread(p Payload) (AddedThread, error) {
	v, err := addedThreadEntity.strings(p, "id", "title", "owner")
	if err != nil {
		return AddedThread{}, err
	}
	return AddedThread{Id: v[0], Title: v[1], Owner: v[2]}, nil
}

// ThreadDetail is the nested read model of a thread.
// Storage fills everything except Comments.
type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []CommentDetail `json:"comments"`
}
