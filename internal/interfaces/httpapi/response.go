package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/platform/logging"
	"github.com/courtvision/court-vision/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "court-vision"

	// rateLimitRetryAfter is advertised on 429s; provider cooldowns are
	// never shorter than this.
	rateLimitRetryAfter = "30"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// errorKind ties a sentinel to its wire representation.
type errorKind struct {
	target     error
	httpStatus int
	reason     string
	status     string
}

var internalErrorKind = errorKind{
	httpStatus: http.StatusInternalServerError,
	reason:     "internalError",
	status:     "INTERNAL",
}

// Order matters: the first sentinel found in the chain wins.
var errorKinds = []errorKind{
	{usecase.ErrInvalidInput, http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"},
	{usecase.ErrNotFound, http.StatusNotFound, "notFound", "NOT_FOUND"},
	{usecase.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"},
	{usecase.ErrConflict, http.StatusConflict, "conflict", "ALREADY_EXISTS"},
	{tag.ErrDuplicate, http.StatusConflict, "conflict", "ALREADY_EXISTS"},
	{usecase.ErrProviderRateLimited, http.StatusTooManyRequests, "rateLimitExceeded", "RESOURCE_EXHAUSTED"},
	{usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"},
}

func classifyError(err error) errorKind {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return kind
		}
	}
	return internalErrorKind
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

// writeError renders err in the Google JSON style. Unclassified errors
// become a generic 500; their text only reaches the log.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	kind := classifyError(err)
	message := err.Error()
	if kind.httpStatus == http.StatusInternalServerError {
		logging.Default().ErrorContext(ctx, "request failed", "error", err)
		message = "internal server error"
	}
	if kind.httpStatus == http.StatusTooManyRequests {
		w.Header().Set("Retry-After", rateLimitRetryAfter)
	}

	writeJSON(ctx, w, kind.httpStatus, errorEnvelope(kind, message))
}

func errorEnvelope(kind errorKind, message string) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    kind.httpStatus,
			Message: message,
			Status:  kind.status,
			Errors: []googleErrorItem{{
				Domain:  errorDomain,
				Reason:  kind.reason,
				Message: message,
			}},
		},
	}
}
