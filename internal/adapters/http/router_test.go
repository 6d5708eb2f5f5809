package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/member-roster/internal/adapters/http"
	"github.com/jsamuelsen11/member-roster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/member-roster/internal/adapters/http/view"
	"github.com/jsamuelsen11/member-roster/internal/domain/member"
	"github.com/jsamuelsen11/member-roster/mocks"
)

func newHandlers(t *testing.T, svc *mocks.MockMemberService, registry *mocks.MockHealthRegistry) (
	*handlers.MemberHandler, *handlers.MemberAPIHandler, *handlers.HealthHandler,
) {
	t.Helper()
	views, err := view.New()
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	fl := mocks.NewMockFlashStore(t)
	return handlers.NewMemberHandler(svc, fl, views),
		handlers.NewMemberAPIHandler(svc),
		handlers.NewHealthHandler(registry)
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockMemberService) {
	t.Helper()
	svc := mocks.NewMockMemberService(t)
	registry := mocks.NewMockHealthRegistry(t)

	mh, ah, hh := newHandlers(t, svc, registry)
	return adapthttp.NewRouter(mh, ah, hh), svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/"},
		{http.MethodGet, "/members/"},
		{http.MethodPost, "/members/"},
		{http.MethodGet, "/members/new"},
		{http.MethodGet, "/members/{id}"},
		{http.MethodPut, "/members/{id}"},
		{http.MethodDelete, "/members/{id}"},
		{http.MethodGet, "/members/{id}/edit"},
		{http.MethodGet, "/members/{id}/delete"},
		{http.MethodGet, "/api/v1/members"},
		{http.MethodPost, "/api/v1/members"},
		{http.MethodGet, "/api/v1/members/{id}"},
		{http.MethodPut, "/api/v1/members/{id}"},
		{http.MethodDelete, "/api/v1/members/{id}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockMemberService(t)
	registry := mocks.NewMockHealthRegistry(t)
	mh, ah, hh := newHandlers(t, svc, registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(mh, ah, hh, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_ListWithoutTrailingSlash(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().List(mock.Anything).Return([]member.Member{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NewIsNotAMemberID(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/members/new", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_APIPassesEscapedID(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().Get(mock.Anything, "Anja Ma/2").Return(&member.Member{Name: "Anja Ma/2"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/Anja%20Ma%2F2", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/members", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
