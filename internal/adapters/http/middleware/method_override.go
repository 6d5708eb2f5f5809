package middleware

import (
	"net/http"
	"strings"
)

const methodOverrideField = "_method"

// overridable lists the methods a form may request through _method.
var overridable = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride returns middleware that lets HTML forms, which can only
// submit GET and POST, reach PUT, PATCH and DELETE routes. A POST carrying a
// form field _method naming one of those methods (case-insensitive) is
// re-dispatched with that method. Other requests pass through untouched.
//
// It must run before routing.
func MethodOverride() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && isForm(r) {
				method := strings.ToUpper(r.PostFormValue(methodOverrideField))
				if overridable[method] {
					r = r.Clone(r.Context())
					r.Method = method
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
