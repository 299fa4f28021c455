package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/solarpanel/tracker-api/internal/app"
	"github.com/solarpanel/tracker-api/internal/logger"
)

// withRecovery turns a panicking handler into a 500 with a fixed message.
// The panic value and stack are logged at error level only.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Err(fmt.Errorf("%w: %v", errPanic, rec)).
				Str("uri", r.RequestURI).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
