package http

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/frontend"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
	"github.com/secmon-lab/surveyor/pkg/service/chart"
)

// Gallery is the chart store the preview server reads from
type Gallery interface {
	Get(id types.ChartID) (*chart.Rendered, bool)
	List() []*chart.Rendered
}

// Server represents the dashboard preview server
type Server struct {
	*http.Server
	router  chi.Router
	gallery Gallery
	tmpl    *template.Template
}

var templateFuncs = template.FuncMap{
	"css": func(c model.RGBA) template.CSS {
		return template.CSS(c.CSS())
	},
	"background": func(spec model.ChartSpec, i int) model.RGBA {
		return spec.Style.BackgroundAt(i)
	},
	"border": func(spec model.ChartSpec, i int) model.RGBA {
		return spec.Style.BorderAt(i)
	},
	"label": func(spec model.ChartSpec, i int) string {
		return spec.LabelAt(i)
	},
}

// NewServer creates a new preview server serving charts from gallery
func NewServer(ctx context.Context, addr string, gallery Gallery) (*Server, error) {
	tmpl, err := frontend.DashboardTemplate(templateFuncs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dashboard template")
	}
	static, err := frontend.GetStaticFS()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load static assets")
	}

	router := chi.NewRouter()
	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		gallery: gallery,
		tmpl:    tmpl,
	}

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, types.RouteDashboard.String(), http.StatusFound)
	})

	router.Group(func(r chi.Router) {
		r.Use(NoCache)
		r.Get(types.RouteDashboard.String(), s.handleDashboard)
		r.Get("/charts/{file}", s.handleChart)
	})

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(static)))

	return s, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "surveyor",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

type dashboardPage struct {
	Charts []*chart.Rendered
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	page := dashboardPage{Charts: s.gallery.List()}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, page); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render dashboard", "error", err)
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	id, ok := strings.CutSuffix(file, ".png")
	if !ok || id == "" {
		http.NotFound(w, r)
		return
	}

	rendered, found := s.gallery.Get(types.ChartID(id))
	if !found {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(rendered.PNG); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write chart", "error", err, "chart_id", id)
	}
}

// Serve runs the server until ctx is cancelled, then shuts it down
func (s *Server) Serve(ctx context.Context) error {
	logger := ctxlog.From(ctx)
	errCh := make(chan error, 1)

	go func() {
		logger.Info("Dashboard preview listening", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- goerr.Wrap(err, "preview server failed", goerr.V("addr", s.Addr))
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown preview server")
		}
		return nil
	}
}
