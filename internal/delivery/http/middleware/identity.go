package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventory/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context carrying the caller identity.
func SetIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the caller identity, or an anonymous one when none was resolved.
func IdentityFromContext(ctx context.Context) domain.Identity {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok {
		return domain.Anonymous()
	}
	return id
}

// ResolveIdentity reads an optional Bearer token and stores the resulting identity in the
// request context. A missing, malformed or invalid token yields an anonymous identity;
// handlers decide whether that is acceptable.
func ResolveIdentity(verifier domain.TokenVerifier, logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := domain.Anonymous()
		if token, ok := bearerToken(r); ok && verifier != nil {
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "ignoring invalid bearer token", "path", r.URL.Path, "err", err)
			} else {
				id = domain.UserIdentity(userID)
			}
		}
		next.ServeHTTP(w, r.WithContext(SetIdentity(r.Context(), id)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", false
	}
	token := strings.TrimSpace(auth[len(prefix):])
	return token, token != ""
}
