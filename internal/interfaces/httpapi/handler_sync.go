package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/usecase"
)

type runSyncRequest struct {
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	From    string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To      string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Season  int    `json:"season" validate:"omitempty,min=1946"`
	Force   bool   `json:"force"`
	Workers int    `json:"workers" validate:"omitempty,min=1,max=16"`
}

func (h *Handler) RunSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSync")
	defer span.End()

	if h.syncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: sync service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	entity, err := syncrun.ParseEntity(strings.TrimSpace(r.PathValue("entity")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	var req runSyncRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	opts, err := syncOptionsFromRequest(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	run, err := h.syncService.Run(ctx, entity, opts)
	if err != nil {
		h.logger.WarnContext(ctx, "run sync failed", "entity", entity, "force", req.Force, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, syncRunToDTO(run))
}

func (h *Handler) GetSyncRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSyncRun")
	defer span.End()

	if h.syncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: sync service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	runID := r.PathValue("runID")
	run, err := h.syncService.GetRun(ctx, runID)
	if err != nil {
		h.logger.WarnContext(ctx, "get sync run failed", "run_id", runID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, syncRunToDTO(run))
}

func (h *Handler) ListSyncRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSyncRuns")
	defer span.End()

	if h.syncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: sync service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	runs, err := h.syncService.ListRuns(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list sync runs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]syncRunDTO, 0, len(runs))
	for _, run := range runs {
		items = append(items, syncRunToDTO(run))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func syncOptionsFromRequest(req runSyncRequest) (usecase.SyncOptions, error) {
	opts := usecase.SyncOptions{Season: req.Season, Force: req.Force, Workers: req.Workers}

	dates := []struct {
		raw    string
		target *time.Time
	}{
		{req.Date, &opts.Date},
		{req.From, &opts.From},
		{req.To, &opts.To},
	}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		parsed, err := usecase.ParseSyncDate(d.raw)
		if err != nil {
			return usecase.SyncOptions{}, err
		}
		*d.target = parsed
	}
	return opts, nil
}
