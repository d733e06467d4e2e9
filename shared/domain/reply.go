package domain

import "time"

var (
	newReplyEntity   = entity{"NEW_REPLY", "create new reply"}
	addedReplyEntity = entity{"ADDED_REPLY", "create added reply"}
)

type NewReply struct {
	Content   string
	CommentId CommentId
	Owner     UserId
}

func NewReplyFromPayload(p Payload) (NewReply, error) {
	v, err := newReplyEntity.strings(p, "content", "commentId", "owner")
	if err != nil {
		return NewReply{}, err
	}
	return NewReply{Content: v[0], CommentId: v[1], Owner: v[2]}, nil
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

func NewAddedReply(p Payload) (AddedReply, error) {
	v, err := addedReplyEntity.strings(p, "id", "content", "owner")
	if err != nil {
		return AddedReply{}, err
	}
	return AddedReply{Id: v[0], Content: v[1], Owner: v[2]}, nil
}

type ReplyRecord struct {
	Id        ReplyId
	CommentId CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
}

type ReplyDetail struct {
	Id       ReplyId   `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}
