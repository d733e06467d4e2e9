package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostThread(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	p, err := payload(r, domain.Payload{"owner": user.Id})
	if err != nil {
		writeError(w, r, err)
		return
	}

	addedThread, err := h.thread.Add(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedThreadData{AddedThread: addedThread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.thread.GetDetail(r.Context(), threadId)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.ThreadData{Thread: thread})
}
