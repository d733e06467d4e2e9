package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

const internalErrorMessage = "terjadi kegagalan pada server kami"

func writeJSON(w http.ResponseWriter, status int, body api.Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteSuccess writes data inside a success envelope. data may be nil.
func WriteSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, api.Response{Status: api.StatusSuccess, Data: data})
}

// WriteErrorAndStatusCode maps err to its status. Client errors keep their
// message, anything else becomes a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := internal_errors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		writeJSON(w, status, api.Response{Status: api.StatusError, Message: internalErrorMessage})
		return
	}
	writeJSON(w, status, api.Response{Status: api.StatusFail, Message: err.Error()})
}

// DecodePayload reads a JSON object. An empty body yields an empty payload
// so that missing fields are reported by the entity validators.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	payload := domain.Payload{}
	if r == nil {
		return payload, nil
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Payload{}, nil
		}
		logger.Log.Debug("invalid request body", "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if payload == nil { // body was the literal null
		payload = domain.Payload{}
	}
	return payload, nil
}

func GetIP(r *http.Request) (string, error) {
	ip := r.Header.Get("X-REAL-IP")
	if net.ParseIP(ip) != nil {
		return ip, nil
	}

	for _, ip := range strings.Split(r.Header.Get("X-FORWARDED-FOR"), ",") {
		ip = strings.TrimSpace(ip)
		if net.ParseIP(ip) != nil {
			return ip, nil
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	if net.ParseIP(ip) != nil {
		return ip, nil
	}
	return "", fmt.Errorf("no valid ip found")
}
