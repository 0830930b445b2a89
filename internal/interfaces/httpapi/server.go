package httpapi

import (
	"net/http"

	"github.com/courtvision/court-vision/internal/platform/logging"
)

type RouterConfig struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	InternalJobToken   string
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled)
	registerCatalogRoutes(mux, handler)
	registerTaggingRoutes(mux, handler)
	registerAnalyticsRoutes(mux, handler)
	registerInternalSyncRoutes(mux, handler, cfg.InternalJobToken)

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, IdentifyUser(mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope(internalErrorKind, "internal server error"))
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
