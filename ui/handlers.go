package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"datalens/adapters/ingest"
	"datalens/domain/core"
	"datalens/domain/report"
	"datalens/internal/summary"
)

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, "index.html", nil); err != nil {
		a.logger.Error("[UI] failed to render index: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// handleUpload accepts one multipart file, validates its extension, stores
// it under the upload dir keyed by a fresh ID, and returns that ID.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.Uploads.MaxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file part in request")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "no file selected")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !ingest.SupportedExtensions[ext] {
		writeError(w, http.StatusBadRequest,
			"unsupported file type; please upload CSV, TSV, XLSX or XLSM")
		return
	}

	// The stored name is derived from a generated ID, never from the
	// client-supplied filename.
	id := core.NewID()
	path := filepath.Join(a.cfg.Uploads.Dir, id.String()+ext)
	dst, err := os.Create(path)
	if err != nil {
		a.logger.Error("[UI] failed to create upload file: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		a.logger.Error("[UI] failed to write upload: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	entry := a.uploads.Register(path, header.Filename)
	a.logger.Info("[UI] stored upload %s (%s)", entry.ID, header.Filename)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"upload_id": entry.ID,
		"filename":  entry.Filename,
	})
}

// handleAnalyse runs the pipeline over a previously uploaded file.
func (a *App) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	result, entry, ok := a.analyseUpload(w, r)
	if !ok {
		return
	}

	if a.reports != nil && result.Valid {
		stored := &report.StoredReport{
			ID:        core.NewID().String(),
			Filename:  entry.Filename,
			Rows:      result.Rows,
			Columns:   result.Columns,
			Result:    result,
			CreatedAt: time.Now(),
		}
		if result.DataQuality != nil {
			stored.Quality = result.DataQuality.Overall
		}
		if err := a.reports.Save(r.Context(), stored); err != nil {
			// Persistence is best-effort; the analysis still succeeds.
			a.logger.Warn("[UI] failed to persist report: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "result": result})
}

// handleSummary returns the rendered HTML digest of a fresh analysis.
func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	result, entry, ok := a.analyseUpload(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, summary.HTML(entry.Filename, result))
}

// analyseUpload resolves the upload ID, ingests the file and runs the
// orchestrator. Error responses are already written when ok is false.
func (a *App) analyseUpload(w http.ResponseWriter, r *http.Request) (*report.AnalysisResult, UploadEntry, bool) {
	id, err := core.ParseUploadID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, UploadEntry{}, false
	}

	entry, err := a.uploads.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "no such upload; please upload a file first")
		return nil, UploadEntry{}, false
	}

	ds, err := a.reader.Read(r.Context(), entry.Path)
	if err != nil {
		a.logger.Warn("[UI] ingest failed for %s: %v", entry.ID, err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return nil, UploadEntry{}, false
	}

	result, err := a.orchestrator.Analyze(r.Context(), ds)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, UploadEntry{}, false
	}
	return result, entry, true
}

func (a *App) handleListReports(w http.ResponseWriter, r *http.Request) {
	if a.reports == nil {
		writeError(w, http.StatusNotImplemented, "report persistence is not configured")
		return
	}

	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	reports, err := a.reports.ListRecent(r.Context(), limit)
	if err != nil {
		a.logger.Error("[UI] failed to list reports: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to retrieve reports")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"reports": reports,
		"count":   len(reports),
	})
}

func (a *App) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if a.reports == nil {
		writeError(w, http.StatusNotImplemented, "report persistence is not configured")
		return
	}

	id, err := core.ParseReportID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := a.reports.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "report": stored})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"ok": false, "error": msg})
}
