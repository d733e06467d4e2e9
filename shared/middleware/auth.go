package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/utils"
)

type TokenVerifier interface {
	VerifyAccessToken(token string) (domain.TokenClaims, error)
}

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

type Auth struct {
	tokens TokenVerifier
}

func NewAuth(tokens TokenVerifier) *Auth {
	return &Auth{tokens: tokens}
}

// NeedAuth rejects requests without a valid bearer access token and puts
// the token claims into the request context otherwise.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				utils.WriteErrorAndStatusCode(w, &internal_errors.AuthenticationError{Message: "Missing authentication"})
				return
			}

			claims, err := a.tokens.VerifyAccessToken(token)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, &claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the claims stored by NeedAuth, or nil.
func GetUserFromContext(r *http.Request) *domain.TokenClaims {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.TokenClaims)
	if !ok {
		return nil
	}
	return user
}
