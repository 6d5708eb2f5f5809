package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// Compile-time interface check.
var _ ports.FlashStore = (*CookieStore)(nil)

// maxCookieLength bounds the encoded cookie value. Browsers drop cookies over
// roughly 4 KB without telling the server, so Set fails instead.
const maxCookieLength = 4000

// noticeValue is the session value holding the pending notice.
const noticeValue = "notice"

// hashKeyLength is the size of the HMAC key generated when none is configured.
const hashKeyLength = 32

// ErrNoHashKey is returned by NewCookieStore when no signing key could be
// obtained.
var ErrNoHashKey = errors.New("flash cookie store needs a hash key")

// CookieStore keeps the pending notice in an HMAC-signed session cookie on
// the client. A cookie whose signature does not verify yields no notice.
type CookieStore struct {
	name  string
	store *sessions.CookieStore
}

// NewCookieStore returns a CookieStore writing the cookie called name, signed
// with hashKey. An empty hashKey is replaced by a random one, which means
// notices pending across a restart are dropped. A positive ttl sets the
// cookie's Max-Age; otherwise it lasts for the browser session.
func NewCookieStore(name string, hashKey []byte, ttl time.Duration) (*CookieStore, error) {
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(hashKeyLength)
		if hashKey == nil {
			return nil, ErrNoHashKey
		}
	}

	store := sessions.NewCookieStore(hashKey)
	store.MaxLength(maxCookieLength)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &CookieStore{name: name, store: store}, nil
}

// Set implements ports.FlashStore. It fails when the signed cookie would be
// too large for a browser to keep.
func (s *CookieStore) Set(w http.ResponseWriter, r *http.Request, msg string) error {
	session := sessions.NewSession(s.store, s.name)
	opts := *s.store.Options
	session.Options = &opts
	session.Values[noticeValue] = msg

	if err := s.store.Save(r, w, session); err != nil {
		return fmt.Errorf("writing flash cookie: %w", err)
	}
	return nil
}

// Pop implements ports.FlashStore. The cookie is expired whenever one was
// sent, including when its signature or encoding is invalid.
func (s *CookieStore) Pop(w http.ResponseWriter, r *http.Request) (string, error) {
	if _, err := r.Cookie(s.name); errors.Is(err, http.ErrNoCookie) {
		return "", nil
	}

	session, decodeErr := s.store.New(r, s.name)
	session.Options.MaxAge = -1
	if err := s.store.Save(r, w, session); err != nil {
		return "", fmt.Errorf("expiring flash cookie: %w", err)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decoding flash cookie: %w", decodeErr)
	}

	msg, _ := session.Values[noticeValue].(string)
	return msg, nil
}
