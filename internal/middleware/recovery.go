package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"starwars-api/internal/shared/errors"
	"starwars-api/internal/shared/response"
)

// Recovery turns a panic in next into a 500 JSON error.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			logger := slog.With("middleware", "recovery", "stack", string(debug.Stack()))
			response.Error(w, r, logger, errors.WrapInternal("panic while serving request", fmt.Errorf("%v", recovered)))
		}()

		next.ServeHTTP(w, r)
	})
}
