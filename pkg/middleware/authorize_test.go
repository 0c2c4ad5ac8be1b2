package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk/pkg/authz"
	"github.com/peopledesk/peopledesk/pkg/middleware"
	"github.com/peopledesk/peopledesk/pkg/session"
)

func newRouter(t *testing.T, sessions *session.Provider) *mux.Router {
	t.Helper()

	svc, err := authz.NewService(nil)
	require.NoError(t, err)

	r := mux.NewRouter()
	r.Use(middleware.Authorize(svc, sessions, authz.DefaultRouteViews()))
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	r.HandleFunc("/salary-slips", ok)
	r.HandleFunc("/archive", ok)
	r.HandleFunc("/auth/login", ok)
	return r
}

func get(r *mux.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestAuthorize_RoleRouting(t *testing.T) {
	sessions := session.NewProvider(filepath.Join(t.TempDir(), "session.json"), logrus.New())
	require.NoError(t, sessions.Login(session.Employee{ID: "e-1", Name: "Asha", Type: authz.RoleHR}, "tok"))

	r := newRouter(t, sessions)

	require.Equal(t, http.StatusOK, get(r, "/salary-slips").Code)
	// For this role the archive does not exist, exactly like its menu entry.
	require.Equal(t, http.StatusNotFound, get(r, "/archive").Code)
}

func TestAuthorize_UnmappedPathsArePublic(t *testing.T) {
	sessions := session.NewProvider(filepath.Join(t.TempDir(), "session.json"), logrus.New())
	r := newRouter(t, sessions)

	require.Equal(t, http.StatusOK, get(r, "/auth/login").Code)
}

func TestAuthorize_LoggedOutGetsUnauthorized(t *testing.T) {
	sessions := session.NewProvider(filepath.Join(t.TempDir(), "session.json"), logrus.New())
	r := newRouter(t, sessions)

	require.Equal(t, http.StatusUnauthorized, get(r, "/salary-slips").Code)
}
