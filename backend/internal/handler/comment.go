package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	p, err := payload(r, domain.Payload{
		"threadId": chi.URLParam(r, "threadId"),
		"owner":    user.Id,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	addedComment, err := h.comment.Add(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentData{AddedComment: addedComment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	err := h.comment.Delete(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}

func (h *Handler) PutCommentLike(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	err := h.comment.ToggleLike(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
