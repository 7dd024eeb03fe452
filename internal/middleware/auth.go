package middleware

import (
	"net/http"
	"strings"

	"github.com/Bolitupac/mobilebankapp/internal/auth"
	"github.com/Bolitupac/mobilebankapp/internal/handler"
	"github.com/Bolitupac/mobilebankapp/internal/ledger"
)

// Auth validates the bearer token and additionally requires it to
// belong to the ledger's current session. The core holds at most one
// session; a later login replaces it, and tokens from the replaced
// session stop working even before they expire.
func Auth(secret string, svc *ledger.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handler.RespondAppError(w, handler.ErrMissingToken, nil)
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				handler.RespondAppError(w, handler.ErrInvalidToken, nil)
				return
			}

			claims, err := auth.ValidateToken(token, secret)
			if err != nil {
				handler.RespondAppError(w, handler.ErrInvalidToken, nil)
				return
			}

			current := svc.CurrentAccount()
			if current == nil || current.ID != claims.AccountID {
				handler.RespondAppError(w, handler.ErrSessionExpired, nil)
				return
			}

			ctx := auth.ContextWithAccountID(r.Context(), claims.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
