// Package view renders the roster's HTML pages from embedded templates.
// Every page shares one layout that shows the pending notice, if any, above
// the page content.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/member-roster/internal/domain/member"
)

// Page names accepted by Render.
const (
	PageIndex  = "index"
	PageNew    = "new"
	PageEdit   = "edit"
	PageShow   = "show"
	PageDelete = "delete"
	PageError  = "error"
)

//go:embed templates/*.html
var templateFS embed.FS

// Data is the view model passed to every page. Fields a page does not use
// are left zero.
type Data struct {
	Title   string
	Notice  string
	Members []member.Member
	Member  *member.Member
	Form    Form
	Error   ErrorInfo
}

// Form holds the state of the new/edit member form.
type Form struct {
	Action string
	Method string // method override sent as _method; empty for a plain POST
	Name   string
	Errors []string
}

// ErrorInfo describes an error page.
type ErrorInfo struct {
	Status  int
	Title   string
	Message string
}

// Renderer executes the parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates. Each page is parsed together with the
// shared layout so that pages can define their own "content" block.
func New() (*Renderer, error) {
	funcs := template.FuncMap{"memberPath": MemberPath}

	pages := make(map[string]*template.Template)
	for _, name := range []string{PageIndex, PageNew, PageEdit, PageShow, PageDelete, PageError} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render executes page into a buffer and, only if that succeeds, writes it
// with the given status. A failed render leaves w untouched.
func (v *Renderer) Render(w http.ResponseWriter, status int, page string, data Data) error {
	t, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// MemberPath returns the URL path of the member identified by id, with the
// identifier path-escaped. The dot segments "." and ".." are percent-encoded
// as well so that path cleaning cannot turn them into /members or /.
func MemberPath(id string) string {
	switch id {
	case ".":
		return "/members/%2E"
	case "..":
		return "/members/%2E%2E"
	default:
		return "/members/" + url.PathEscape(id)
	}
}
