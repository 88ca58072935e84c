package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"datalens/internal"
	"datalens/internal/analyze"
	"datalens/internal/config"
	"datalens/ports"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is the web application: an upload surface in front of the analysis
// pipeline.
type App struct {
	router       *chi.Mux
	cfg          *config.Config
	reader       ports.DatasetReader
	orchestrator *analyze.Orchestrator
	uploads      *UploadStore
	reports      ports.ReportRepository // nil when persistence is disabled
	templates    *template.Template
	logger       *internal.Logger
}

// NewApp wires the application. reports may be nil; analyses then simply
// are not persisted.
func NewApp(cfg *config.Config, reader ports.DatasetReader, reports ports.ReportRepository) (*App, error) {
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		cfg:          cfg,
		reader:       reader,
		orchestrator: analyze.NewOrchestrator(cfg.Analysis.Workers),
		uploads:      NewUploadStore(),
		reports:      reports,
		templates:    templates,
		logger:       internal.DefaultLogger,
	}
	app.routes()
	return app, nil
}

func (a *App) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", a.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", a.handleUpload)
		r.Get("/analyse/{id}", a.handleAnalyse)
		r.Get("/analyse/{id}/summary", a.handleSummary)
		r.Get("/reports", a.handleListReports)
		r.Get("/reports/{id}", a.handleGetReport)
	})

	a.router = r
}

// Router exposes the HTTP handler, mainly for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Run starts the HTTP server and blocks.
func (a *App) Run() error {
	addr := ":" + a.cfg.Server.Port
	a.logger.Info("[UI] listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
