// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package inspect

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/archive"
	httptypes "github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/http/types"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/inspect", a.handleInspect)
	mux.Get("/api/v0/diff", a.handleDiff)
}

func (a *API) handleInspect(w http.ResponseWriter, r *http.Request) {
	archivePath := r.URL.Query().Get("archive")
	if archivePath == "" {
		a.writeError(w, http.StatusBadRequest, "missing required query parameter archive")
		return
	}

	summary, err := a.service.Summarize(r.Context(), archivePath, optionsFromQuery(r))
	if err != nil {
		a.writeArchiveError(w, archivePath, err)
		return
	}

	a.writeResponse(w, http.StatusOK, summary)
}

func (a *API) handleDiff(w http.ResponseWriter, r *http.Request) {
	archiveA := r.URL.Query().Get("archive_a")
	archiveB := r.URL.Query().Get("archive_b")
	if archiveA == "" || archiveB == "" {
		a.writeError(w, http.StatusBadRequest, "missing required query parameters archive_a and archive_b")
		return
	}

	opts := optionsFromQuery(r)

	summaryA, err := a.service.Summarize(r.Context(), archiveA, opts)
	if err != nil {
		a.writeArchiveError(w, archiveA, err)
		return
	}
	summaryB, err := a.service.Summarize(r.Context(), archiveB, opts)
	if err != nil {
		a.writeArchiveError(w, archiveB, err)
		return
	}

	a.writeResponse(w, http.StatusOK, a.service.Diff(r.Context(), summaryA, summaryB))
}

func optionsFromQuery(r *http.Request) Options {
	opts := DefaultOptions()
	query := r.URL.Query()
	if query.Get("users") == "true" {
		opts.IncludeUsers = true
	}
	if query.Get("content") == "false" {
		opts.IncludeContent = false
	}
	if query.Get("detailed") == "true" {
		opts.Detailed = true
	}
	return opts
}

func (a *API) writeArchiveError(w http.ResponseWriter, archivePath string, err error) {
	a.logger.Errorf("failed to summarize %s: %v", archivePath, err)

	status := http.StatusInternalServerError
	if errors.Is(err, archive.ErrArchiveFormat) || errors.Is(err, archive.ErrManifestNotFound) {
		status = http.StatusBadRequest
	}
	a.writeError(w, status, err.Error())
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(httptypes.Response{Message: message, Status: status})
}

func (a *API) writeResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(httptypes.Response{Data: data, Status: status})
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
