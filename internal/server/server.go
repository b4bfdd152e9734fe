/*
PURPOSE:
  Web front-end for interactive use: two upload slots (COP, CSP) that turn
  into two radar plots once both files are loaded.

REQUIREMENTS:
  User-specified:
  - Drag-and-drop (or select) one JSON file per problem class.
  - A malformed upload is logged and leaves the previous data in place.
  - A new upload of the same class replaces the previous data.

  Implementation-discovered:
  - Handlers run concurrently; ingest.Workspace carries the locking.
  - Chart data is also served as JSON for scripting.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli/serve.go
  - Uses: internal/ingest, internal/chart, internal/output

ERROR HANDLING:
  - Upload failures re-render the page with a flash message and a 4xx status.
  - Template failures are logged after headers are sent.

USAGE:
  srv := server.New(cfg)
  err := srv.ListenAndServe(ctx)

RELATED FILES:
  - internal/server/templates.go
*/

package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/daryltucker/solver-radar/internal/chart"
	"github.com/daryltucker/solver-radar/internal/config"
	"github.com/daryltucker/solver-radar/internal/ingest"
	"github.com/daryltucker/solver-radar/internal/model"
	"github.com/daryltucker/solver-radar/internal/output"
)

// Server serves the upload dashboard.
type Server struct {
	cfg  *config.Config
	ws   *ingest.Workspace
	tmpl *template.Template
	mux  *http.ServeMux
	now  func() time.Time
}

// New builds a Server with empty slots.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:  cfg,
		ws:   ingest.NewWorkspace(),
		tmpl: template.Must(output.NewTemplate(tmplDashboard)),
		mux:  http.NewServeMux(),
		now:  time.Now,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleDashboard)
	s.mux.HandleFunc("POST /upload/{class}", s.handleUpload)
	s.mux.HandleFunc("POST /reset", s.handleReset)
	s.mux.HandleFunc("GET /api/charts/{class}", s.handleChart)
	s.mux.HandleFunc("GET /api/report", s.handleReport)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Workspace exposes the data slots (used by tests and preloading).
func (s *Server) Workspace() *ingest.Workspace {
	return s.ws
}

// ListenAndServe serves on cfg.ListenAddr until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		output.Logger.Info("Listening", "addr", s.cfg.ListenAddr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		output.Logger.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type slotView struct {
	Class     model.ProblemClass
	Label     string
	Name      string
	Instances int
	Loaded    bool
	LoadedAt  time.Time
}

type dashboardView struct {
	Ready  bool
	Flash  string
	Slots  []slotView
	Charts []chart.RadarData
}

func (s *Server) dashboard(flash string) dashboardView {
	snap := s.ws.Snapshot()
	view := dashboardView{Flash: flash, Ready: true}
	data := make(map[model.ProblemClass][]model.BenchmarkInstance, len(model.Classes))
	for _, class := range model.Classes {
		slot := snap[class]
		view.Slots = append(view.Slots, slotView{
			Class:     class,
			Label:     class.Title(),
			Name:      slot.Name,
			Instances: len(slot.Instances),
			Loaded:    slot.Loaded,
			LoadedAt:  slot.LoadedAt,
		})
		if !slot.Loaded {
			view.Ready = false
			continue
		}
		data[class] = slot.Instances
	}
	if view.Ready {
		view.Charts = chart.NewReport(data, s.cfg, s.now()).Charts
	}
	return view
}

func (s *Server) render(w http.ResponseWriter, status int, view dashboardView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "base", view); err != nil {
		output.Logger.Error("template error", "error", err)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, s.dashboard(""))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	class, err := model.ParseClass(r.PathValue("class"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, ingest.MaxFileSize+1<<20)
	file, header, err := r.FormFile("file")
	if err != nil {
		output.Logger.Warn("Upload without file", "class", class, "error", err)
		s.render(w, http.StatusBadRequest, s.dashboard("No file received for "+class.Title()+"."))
		return
	}
	defer file.Close()

	if err := s.ws.Load(class, header.Filename, file); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, ingest.ErrUnsupportedFile) {
			status = http.StatusUnsupportedMediaType
		}
		s.render(w, status, s.dashboard(class.Title()+" upload rejected: "+err.Error()))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.ws.Reset()
	output.Logger.Info("Workspace reset")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	class, err := model.ParseClass(r.PathValue("class"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var instances []model.BenchmarkInstance
	if slot := s.ws.Get(class); slot.Loaded {
		instances = slot.Instances
	}
	writeJSON(w, chart.Build(class, instances, s.cfg))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	data := make(map[model.ProblemClass][]model.BenchmarkInstance, len(model.Classes))
	for class, slot := range s.ws.Snapshot() {
		if slot.Loaded {
			data[class] = slot.Instances
		}
	}
	writeJSON(w, chart.NewReport(data, s.cfg, s.now()))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := output.WriteJSON(w, v); err != nil {
		output.Logger.Error("encode response", "error", err)
	}
}
