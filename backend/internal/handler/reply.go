package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostReply(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	p, err := payload(r, domain.Payload{
		"commentId": chi.URLParam(r, "commentId"),
		"owner":     user.Id,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	addedReply, err := h.reply.Add(r.Context(), chi.URLParam(r, "threadId"), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyData{AddedReply: addedReply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	err := h.reply.Delete(r.Context(),
		chi.URLParam(r, "threadId"),
		chi.URLParam(r, "commentId"),
		chi.URLParam(r, "replyId"),
		user.Id,
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
