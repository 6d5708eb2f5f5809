// Package flash implements the one-shot notice shown after a successful
// create, update or delete. A notice set during one request is popped by the
// Flash middleware at the start of the client's next request and exposed to
// handlers through the request context.
//
// Two backends are provided: CookieStore keeps the notice in a cookie on the
// client, and RedisStore keeps it in Redis keyed by a session cookie.
package flash

import "context"

type noticeKey struct{}

// WithNotice returns a copy of ctx carrying msg as the current notice.
func WithNotice(ctx context.Context, msg string) context.Context {
	return context.WithValue(ctx, noticeKey{}, msg)
}

// NoticeFromContext returns the notice popped for the current request, or
// "" if there is none.
func NoticeFromContext(ctx context.Context) string {
	msg, _ := ctx.Value(noticeKey{}).(string)
	return msg
}
