package httpserver

import (
	"context"
	"net/http"
)

type Controller interface {
	AddRoutes(*http.ServeMux)
}

// HealthChecker reports whether a backing dependency can serve requests.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Middleware func(http.Handler) http.Handler
