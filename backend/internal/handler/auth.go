package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostAuthentication(w http.ResponseWriter, r *http.Request) {
	p, err := payload(r, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	auth, err := h.auth.Login(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AuthenticationData{
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
	})
}

func (h *Handler) PutAuthentication(w http.ResponseWriter, r *http.Request) {
	p, err := payload(r, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	accessToken, err := h.auth.Refresh(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.AccessTokenData{AccessToken: accessToken})
}

func (h *Handler) DeleteAuthentication(w http.ResponseWriter, r *http.Request) {
	p, err := payload(r, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.auth.Logout(r.Context(), p); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
