package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/pkg/authz"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/serrors"
	"github.com/peopledesk/peopledesk/pkg/session"
)

// Authorize gates routes by the capability table. Paths with no mapped view
// are public. A role without the capability gets a 404: for that role the
// route does not exist, exactly like the menu entry it mirrors.
func Authorize(svc *authz.Service, sessions *session.Provider, routeViews map[string]authz.View) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			view, guarded := matchView(routeViews, r.URL.Path)
			if !guarded {
				next.ServeHTTP(w, r)
				return
			}

			user, ok := sessions.CurrentUser()
			if !ok {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, serrors.CodeUnauthorized, "not logged in", nil)
				return
			}
			if !svc.Can(user.Type, view) {
				_ = httpapi.WriteError(w, http.StatusNotFound, serrors.CodeForbidden, "page not found", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// matchView finds the longest mapped prefix of the request path. Matching
// is case-insensitive so legacy links like /Archive keep resolving.
func matchView(routeViews map[string]authz.View, path string) (authz.View, bool) {
	path = strings.ToLower(path)
	bestLen := 0
	var best authz.View
	for prefix, view := range routeViews {
		if strings.HasPrefix(path, strings.ToLower(prefix)) && len(prefix) > bestLen {
			bestLen = len(prefix)
			best = view
		}
	}
	return best, bestLen > 0
}
