package ports

import "net/http"

// FlashStore carries a one-shot notice from a mutating request to the next
// response rendered for the same client. Implemented by the flash adapters
// (cookie, Redis); called by handlers (Set) and middleware (Pop).
type FlashStore interface {
	// Set stores msg for the client's next request. It may write headers
	// to w and must be called before the response is committed.
	Set(w http.ResponseWriter, r *http.Request, msg string) error

	// Pop returns the pending notice for the client, if any, and clears it
	// so that it is shown at most once. An empty string means no notice.
	Pop(w http.ResponseWriter, r *http.Request) (string, error)
}
