package server

import (
	"errors"
	"net/http"
	"strings"

	"stellar-cargo/internal/auth"
	"stellar-cargo/internal/store"
)

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) < len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// authenticate resolves the bearer token into a principal and makes the
// caller the actor of any store mutation made while serving the request.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		p, err := s.auth.Authenticate(r.Context(), token)
		switch {
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrNoSession):
			writeError(w, http.StatusUnauthorized, "session expired or invalid")
			return
		case err != nil:
			s.internalError(w, r, "authenticate", err)
			return
		}
		ctx := auth.ContextWithPrincipal(r.Context(), p)
		ctx = store.WithActor(ctx, p.User.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requireCapability(c auth.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := auth.PrincipalFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			if !p.Can(c) {
				writeError(w, http.StatusForbidden, auth.ErrForbidden.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
