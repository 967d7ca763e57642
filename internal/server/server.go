// Package server exposes the habit store over a local read-only HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wirving/rhabits/internal/dates"
	"github.com/wirving/rhabits/internal/logger"
	"github.com/wirving/rhabits/internal/storage"
	"github.com/wirving/rhabits/pkg/habit"
	"github.com/wirving/rhabits/pkg/versioninfo"
)

type Server struct {
	Store storage.Store
}

func New(store storage.Store) *Server {
	return &Server{Store: store}
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(metricsMiddleware)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/version", s.getVersionInfo)
	r.Route("/habits", func(r chi.Router) {
		r.Get("/", s.listHabits)
		r.Get("/{habit_name}", s.getHabit)
		r.Get("/{habit_name}/summary", s.getHabitSummary)
	})
	return r
}

// load reads the store fresh per request so the server always reflects what
// the CLI last wrote. A malformed store degrades to an empty list, matching
// the CLI's recovery behavior.
func (s *Server) load(w http.ResponseWriter) (habit.List, bool) {
	habits, err := s.Store.Load()
	if err != nil {
		if errors.Is(err, storage.ErrMalformed) {
			logger.Warn("Habit store is malformed, serving an empty list", "path", s.Store.Path(), "error", err)
			return habit.List{}, true
		}
		logger.Error("Failed to load habit store", "path", s.Store.Path(), "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return nil, false
	}
	return habits, true
}

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	habits, ok := s.load(w)
	if !ok {
		return
	}
	trackedHabits.Set(float64(len(habits)))
	if err := writeJSON(w, http.StatusOK, HabitListResponse{Habits: habits.Names()}); err != nil {
		logger.Error("Failed to serialize habit list response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getHabit(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "habit_name")
	habits, ok := s.load(w)
	if !ok {
		return
	}

	h := habits.Find(name)
	if h == nil {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	if err := writeJSON(w, http.StatusOK, HabitGetResponse{Habit: *h}); err != nil {
		logger.Error("Failed to serialize habit response", "habit", name, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getHabitSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "habit_name")
	habits, ok := s.load(w)
	if !ok {
		return
	}

	h := habits.Find(name)
	if h == nil {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}

	summary, err := computeSummary(*h, dates.Today())
	if err != nil {
		logger.Error("Failed to compute habit summary", "habit", name, "error", err)
		http.Error(w, `{"error":"error computing summary"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, HabitSummaryResponse{HabitName: name, HabitSummary: summary}); err != nil {
		logger.Error("Failed to serialize summary response", "habit", name, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	if err := writeJSON(w, http.StatusOK, info); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
		http.Error(w, `{"error":"failed to serialize version info"}`, http.StatusInternalServerError)
		return
	}
}
