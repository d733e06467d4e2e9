package domain

type (
	UserId    = string
	Username  = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string

	// Payload is a decoded request body merged with path and auth parameters.
	Payload = map[string]any
)

// Content shown in place of soft-deleted records. Stored content is never touched.
const (
	DeletedCommentContent = "**komentar telah dihapus**"
	DeletedReplyContent   = "**balasan telah dihapus**"
)
