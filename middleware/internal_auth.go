package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/akinalp/huddle/pkg"
)

// InternalTokenHeader carries the shared secret of service-to-service calls.
const InternalTokenHeader = "X-Internal-Token"

// InternalAuth guards the endpoints the room management service calls.
// An empty token disables them: every request is rejected.
type InternalAuth struct {
	token []byte
}

func NewInternalAuth(token string) *InternalAuth {
	return &InternalAuth{token: []byte(token)}
}

func (m *InternalAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(m.token) == 0 {
			pkg.ErrorWithMessage(w, http.StatusForbidden, "internal API is disabled")
			return
		}

		got := []byte(r.Header.Get(InternalTokenHeader))
		if subtle.ConstantTimeCompare(got, m.token) != 1 {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "invalid internal token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
