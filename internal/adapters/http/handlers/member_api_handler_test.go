package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/member-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/member-roster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/member-roster/internal/domain"
	"github.com/jsamuelsen11/member-roster/internal/domain/member"
	"github.com/jsamuelsen11/member-roster/mocks"
)

func newMemberAPIHandler(t *testing.T) (*handlers.MemberAPIHandler, *mocks.MockMemberService) {
	t.Helper()
	svc := mocks.NewMockMemberService(t)
	return handlers.NewMemberAPIHandler(svc), svc
}

// --- ListMembers ---

func TestListMembers_Success(t *testing.T) {
	t.Parallel()
	h, svc := newMemberAPIHandler(t)

	svc.EXPECT().List(mock.Anything).Return(member.FromNames([]string{"Anja", "Maren"}), nil)

	rec := httptest.NewRecorder()
	h.ListMembers(rec, httptest.NewRequest(http.MethodGet, "/api/v1/members", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MemberListResponse](t, rec)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	if resp.Members[1].ID != "Maren" {
		t.Errorf("Members[1].ID = %q, want Maren", resp.Members[1].ID)
	}
}

func TestListMembers_StorageError(t *testing.T) {
	t.Parallel()
	h, svc := newMemberAPIHandler(t)

	svc.EXPECT().List(mock.Anything).Return(nil, errDiskFull)

	rec := httptest.NewRecorder()
	h.ListMembers(rec, httptest.NewRequest(http.MethodGet, "/api/v1/members", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Detail != "the member store could not complete the request" {
		t.Errorf("Detail = %q", resp.Detail)
	}
}

// --- CreateMember ---

func TestCreateMember_Success(t *testing.T) {
	t.Parallel()
	h, svc := newMemberAPIHandler(t)

	svc.EXPECT().Create(mock.Anything, "Monsta").Return(memberPtr("Monsta"), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", jsonBody(t, map[string]string{"name": "Monsta"}))
	h.CreateMember(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.MemberResponse](t, rec)
	if resp.Name != "Monsta" {
		t.Errorf("Name = %q, want Monsta", resp.Name)
	}
}

func TestCreateMember_Duplicate(t *testing.T) {
	t.Parallel()
	h, svc := newMemberAPIHandler(t)

	svc.EXPECT().Create(mock.Anything, "Maren").
		Return(nil, domain.NewValidationError("Maren is already included in our list."))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", jsonBody(t, map[string]string{"name": "Maren"}))
	h.CreateMember(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.name" {
		t.Errorf("Errors = %+v, want one body.name entry", resp.Errors)
	}
}

func TestCreateMember_BadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: "{not json"},
		{name: "missing name field", body: `{}`},
		{name: "wrong type", body: `{"name": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newMemberAPIHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewBufferString(tt.body))
			h.CreateMember(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
		})
	}
}

// --- GetMember ---

func TestGetMember_Success(t *testing.T) {
	t.Parallel()
	h, svc := newMemberAPIHandler(t)

	svc.EXPECT().Get(mock.Anything, "Anja").Return(memberPtr("Anja"), nil)

	rec := httptest.NewRecorder()
	req := withMemberID(httptest.NewRequest(http.MethodGet, "/api/v1/members/Anja", nil), "Anja")
	h.GetMember(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MemberResponse](t, rec)
	if resp.ID != "Anja" {
		t.Errorf("ID = %q, want Anja", resp.ID)
	}
}

func TestGetMember_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newMemberAPIHandler(t)

	svc.EXPECT().Get(mock.Anything, "Nobody").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withMemberID(httptest.NewRequest(http.MethodGet, "/api/v1/members/Nobody", nil), "Nobody")
	h.GetMember(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateMember ---

func TestUpdateMember_Success(t *testing.T) {
	t.Parallel()
	h, svc := newMemberAPIHandler(t)

	svc.EXPECT().Update(mock.Anything, "Anja", "Tyranja").Return(memberPtr("Tyranja"), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/members/Anja", jsonBody(t, map[string]string{"name": "Tyranja"}))
	h.UpdateMember(rec, withMemberID(req, "Anja"))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MemberResponse](t, rec)
	if resp.Name != "Tyranja" {
		t.Errorf("Name = %q, want Tyranja", resp.Name)
	}
}

func TestUpdateMember_EmptyName(t *testing.T) {
	t.Parallel()
	h, svc := newMemberAPIHandler(t)

	svc.EXPECT().Update(mock.Anything, "Anja", "").
		Return(nil, domain.NewValidationError("You need to enter a name"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/members/Anja", jsonBody(t, map[string]string{"name": ""}))
	h.UpdateMember(rec, withMemberID(req, "Anja"))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Detail != "You need to enter a name" {
		t.Errorf("Detail = %q", resp.Detail)
	}
}

func TestUpdateMember_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newMemberAPIHandler(t)

	svc.EXPECT().Update(mock.Anything, "Nobody", "Anja").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/members/Nobody", jsonBody(t, map[string]string{"name": "Anja"}))
	h.UpdateMember(rec, withMemberID(req, "Nobody"))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteMember ---

func TestDeleteMember_ReportsRemovedCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		removed int
	}{
		{name: "single entry", removed: 1},
		{name: "duplicate entries", removed: 2},
		{name: "unknown member", removed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newMemberAPIHandler(t)

			svc.EXPECT().Delete(mock.Anything, "Anja").Return(tt.removed, nil)

			rec := httptest.NewRecorder()
			req := withMemberID(httptest.NewRequest(http.MethodDelete, "/api/v1/members/Anja", nil), "Anja")
			h.DeleteMember(rec, req)

			requireStatus(t, rec, http.StatusOK)
			resp := decodeJSON[dto.DeleteResponse](t, rec)
			if resp.Removed != tt.removed {
				t.Errorf("Removed = %d, want %d", resp.Removed, tt.removed)
			}
		})
	}
}
