// Package handlers provides HTTP request handlers for the roster's HTML pages,
// its JSON API and the health endpoints.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/member-roster/internal/adapters/flash"
	"github.com/jsamuelsen11/member-roster/internal/adapters/http/view"
	"github.com/jsamuelsen11/member-roster/internal/domain"
	"github.com/jsamuelsen11/member-roster/internal/platform/logging"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

const membersPath = "/members"

// MemberHandler serves the HTML pages for listing, creating, editing and
// removing members. Successful mutations set a flash notice and redirect;
// validation failures re-render the form with status 200.
type MemberHandler struct {
	svc   ports.MemberService
	flash ports.FlashStore
	views *view.Renderer
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(svc ports.MemberService, flashStore ports.FlashStore, views *view.Renderer) *MemberHandler {
	return &MemberHandler{
		svc:   svc,
		flash: flashStore,
		views: views,
	}
}

// List handles GET /members.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageIndex, view.Data{
		Title:   "Members",
		Members: members,
	})
}

// New handles GET /members/new.
func (h *MemberHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageNew, view.Data{
		Title: "New Member",
		Form:  view.Form{Action: membersPath},
	})
}

// Create handles POST /members.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")

	m, err := h.svc.Create(r.Context(), name)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.render(w, r, http.StatusOK, view.PageNew, view.Data{
				Title: "New Member",
				Form:  view.Form{Action: membersPath, Name: name, Errors: verr.Messages},
			})
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.redirectWithNotice(w, r, view.MemberPath(m.ID()), "Successfully saved the new member: "+m.Name+".")
}

// Show handles GET /members/{id}.
func (h *MemberHandler) Show(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), memberID(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageShow, view.Data{
		Title:  "Member: " + m.Name,
		Member: m,
	})
}

// Edit handles GET /members/{id}/edit.
func (h *MemberHandler) Edit(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), memberID(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageEdit, view.Data{
		Title:  "Edit Member",
		Member: m,
		Form:   editForm(m.ID(), m.Name, nil),
	})
}

// Update handles PUT /members/{id}. A failed update re-renders the form
// against the original identifier so the user can retry.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := memberID(r)
	name := r.PostFormValue("name")

	m, err := h.svc.Update(r.Context(), id, name)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.render(w, r, http.StatusOK, view.PageEdit, view.Data{
				Title: "Edit Member",
				Form:  editForm(id, name, verr.Messages),
			})
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.redirectWithNotice(w, r, view.MemberPath(m.ID()), "Successfully updated the member: "+m.Name+".")
}

// ConfirmDelete handles GET /members/{id}/delete.
func (h *MemberHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), memberID(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageDelete, view.Data{
		Title:  "Remove Member",
		Member: m,
	})
}

// Delete handles DELETE /members/{id}. Removing an unknown member is not an
// error; the notice names the requested identifier either way.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := memberID(r)

	if _, err := h.svc.Delete(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	h.redirectWithNotice(w, r, membersPath, "Successfully removed the member: "+id+".")
}

// Index handles GET / by sending the client to the member list.
func (h *MemberHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, membersPath, http.StatusFound)
}

func editForm(id, name string, errs []string) view.Form {
	return view.Form{
		Action: view.MemberPath(id),
		Method: http.MethodPut,
		Name:   name,
		Errors: errs,
	}
}

// redirectWithNotice stores msg for the next request and redirects to
// location. A failing flash store loses the notice but not the redirect.
// Location is written verbatim; http.Redirect would path.Clean it.
func (h *MemberHandler) redirectWithNotice(w http.ResponseWriter, r *http.Request, location, msg string) {
	if err := h.flash.Set(w, r, msg); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to set flash notice",
			slog.Any("error", err),
		)
	}
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusFound)
}

func (h *MemberHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data view.Data) {
	data.Notice = flash.NoticeFromContext(r.Context())
	if err := h.views.Render(w, status, page, data); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render page",
			slog.String("page", page),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError renders the error page for err. Only lookup misses are shown
// as such; every other failure becomes a generic 500 and is logged.
func (h *MemberHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	info := view.ErrorInfo{
		Status:  http.StatusInternalServerError,
		Title:   http.StatusText(http.StatusInternalServerError),
		Message: "The member list could not be read or written. Please try again later.",
	}
	if errors.Is(err, domain.ErrNotFound) {
		info = view.ErrorInfo{
			Status:  http.StatusNotFound,
			Title:   http.StatusText(http.StatusNotFound),
			Message: "There is no member with that name.",
		}
	} else {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	h.render(w, r, info.Status, view.PageError, view.Data{
		Title: info.Title,
		Error: info,
	})
}
