// Package api holds the JSON envelope and response bodies of the HTTP API.
package api

import "github.com/itchan-dev/forum/shared/domain"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope of every JSON response.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type AddedUserData struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type AuthenticationData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AccessTokenData struct {
	AccessToken string `json:"accessToken"`
}

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadData struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type AddedCommentData struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyData struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}
