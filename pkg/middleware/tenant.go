package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campuskit/campuskit/modules/core/services"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/composables"
	"github.com/campuskit/campuskit/pkg/httpapi"
)

// RequireTenantFromHost resolves the tenant by the request host and puts
// its id on the context. Unknown hosts get a 404.
func RequireTenantFromHost(app application.Application) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := normalizeHost(r.Host)
			if host == "" {
				http.NotFound(w, r)
				return
			}

			tenantService := app.Service(services.TenantService{}).(*services.TenantService)
			t, err := tenantService.GetByDomain(r.Context(), host)
			if err != nil {
				logger := composables.UseLogger(r.Context())
				logger.WithField("host", host).WithField("path", r.URL.Path).WithError(err).Warn("tenant not found for host")
				http.NotFound(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(composables.WithTenantID(r.Context(), t.ID())))
		})
	}
}

// ActorFromHeader reads the authenticated user id forwarded by the
// gateway and puts it on the context. Requests without it are rejected.
func ActorFromHeader(header string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(header))
			if raw == "" {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing actor header", nil)
				return
			}
			actorID, err := uuid.Parse(raw)
			if err != nil {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "unauthenticated", "invalid actor header", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(composables.WithActorID(r.Context(), actorID)))
		})
	}
}

func normalizeHost(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	raw = strings.ToLower(raw)
	if h, _, err := net.SplitHostPort(raw); err == nil {
		return strings.ToLower(strings.TrimSpace(h))
	}
	return raw
}
