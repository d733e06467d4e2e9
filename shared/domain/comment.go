package domain

import "time"

var (
	newCommentEntity   = entity{"NEW_COMMENT", "create new comment"}
	addedCommentEntity = entity{"ADDED_COMMENT", "create added comment"}
)

type NewComment struct {
	Content  string
	ThreadId ThreadId
	Owner    UserId
}

func NewCommentFromPayload(p Payload) (NewComment, error) {
	v, err := newCommentEntity.strings(p, "content", "threadId", "owner")
	if err != nil {
		return NewComment{}, err
	}
	return NewComment{Content: v[0], ThreadId: v[1], Owner: v[2]}, nil
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

func NewAddedComment(p Payload) (AddedComment, error) {
	v, err := addedCommentEntity.strings(p, "id", "content", "owner")
	if err != nil {
		return AddedComment{}, err
	}
	return AddedComment{Id: v[0], Content: v[1], Owner: v[2]}, nil
}

// CommentRecord is a comment row as stored, joined with its author's username.
type CommentRecord struct {
	Id        CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
}

type CommentDetail struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}
