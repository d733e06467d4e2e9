package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostUser(w http.ResponseWriter, r *http.Request) {
	p, err := payload(r, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	addedUser, err := h.user.Register(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedUserData{AddedUser: addedUser})
}
