package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/member-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// MemberAPIHandler serves the JSON rendering of the roster under /api/v1.
type MemberAPIHandler struct {
	svc ports.MemberService
}

// NewMemberAPIHandler creates a new MemberAPIHandler with the given service port.
func NewMemberAPIHandler(svc ports.MemberService) *MemberAPIHandler {
	return &MemberAPIHandler{svc: svc}
}

// ListMembers handles GET /api/v1/members.
func (h *MemberAPIHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMemberListResponse(members))
}

// CreateMember handles POST /api/v1/members.
func (h *MemberAPIHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req dto.MemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), *req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMemberResponse(created))
}

// GetMember handles GET /api/v1/members/{id}.
func (h *MemberAPIHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), memberID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMemberResponse(m))
}

// UpdateMember handles PUT /api/v1/members/{id}.
func (h *MemberAPIHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id := memberID(r)

	var req dto.MemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, *req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMemberResponse(updated))
}

// DeleteMember handles DELETE /api/v1/members/{id}. Removing an unknown
// member succeeds with a count of zero.
func (h *MemberAPIHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.Delete(r.Context(), memberID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DeleteResponse{Removed: removed})
}
