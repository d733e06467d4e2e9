package handler

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	user    service.UserService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	health  HealthChecker
}

func New(
	auth service.AuthService,
	user service.UserService,
	thread service.ThreadService,
	comment service.CommentService,
	reply service.ReplyService,
	health HealthChecker,
) *Handler {
	return &Handler{
		auth:    auth,
		user:    user,
		thread:  thread,
		comment: comment,
		reply:   reply,
		health:  health,
	}
}

// writeError logs server-side failures before hiding them behind a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if internal_errors.StatusCode(err) >= http.StatusInternalServerError {
		ip, _ := utils.GetIP(r)
		logger.Log.Error("request failed", "method", r.Method, "path", r.URL.Path, "ip", ip, "error", err)
	}
	utils.WriteErrorAndStatusCode(w, err)
}

// payload decodes the request body and overlays trusted values from the path and token.
func payload(r *http.Request, trusted domain.Payload) (domain.Payload, error) {
	p, err := utils.DecodePayload(r.Body)
	if err != nil {
		return nil, err
	}
	for k, v := range trusted {
		p[k] = v
	}
	return p, nil
}

// requireUser returns the authenticated caller. Routes behind NeedAuth always have one.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.TokenClaims, bool) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, &internal_errors.AuthenticationError{Message: "Missing authentication"})
		return nil, false
	}
	return user, true
}
