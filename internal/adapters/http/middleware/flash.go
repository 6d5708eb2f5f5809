package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/member-roster/internal/adapters/flash"
	"github.com/jsamuelsen11/member-roster/internal/platform/logging"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// Flash returns middleware that pops the client's pending notice before the
// handler runs and stores it in the request context, where page rendering
// picks it up via flash.NoticeFromContext. A failing store is logged and the
// request proceeds without a notice.
func Flash(store ports.FlashStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			msg, err := store.Pop(w, r)
			if err != nil {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to pop flash notice",
					slog.Any("error", err),
				)
			}
			if msg != "" {
				r = r.WithContext(flash.WithNotice(r.Context(), msg))
			}
			next.ServeHTTP(w, r)
		})
	}
}
