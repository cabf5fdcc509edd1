package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

// ClientIDHeader carries the anonymous browser identity that owns a shortlist.
const ClientIDHeader = "X-Client-ID"

const ClientIDKey contextKey = "client_id"

// ClientIDMiddleware requires a UUID client identifier on the request and
// stores its canonical form in the context.
func ClientIDMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(ClientIDHeader)
			if raw == "" {
				logger.Debug("Missing client id header")
				RespondWithError(w, http.StatusBadRequest, "missing "+ClientIDHeader+" header")
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				logger.Debug("Invalid client id", zap.String("client_id", raw), zap.Error(err))
				RespondWithError(w, http.StatusBadRequest, "invalid "+ClientIDHeader+" header")
				return
			}

			ctx := context.WithValue(r.Context(), ClientIDKey, id.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientID extracts the client id from request context
func GetClientID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ClientIDKey).(string)
	return id, ok
}
