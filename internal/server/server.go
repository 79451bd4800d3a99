// Package server exposes the assessment over HTTP for the dashboards.
// Every read endpoint recomputes from a fresh store read; there is no
// cross-request cache, so a response always reflects the answer written
// the request before it.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/runner"
	"security-maturity-assessor/internal/store"
)

// App holds server dependencies.
type App struct {
	runner *runner.Runner
	store  *store.Store
	logger *slog.Logger
}

// New creates an App over an open store.
func New(r *runner.Runner, st *store.Store, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{runner: r, store: st, logger: logger}
}

// Handler returns the HTTP handler (router with recovery and routes).
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", a.handleSummary)
		r.Get("/domains", a.handleDomains)
		r.Get("/ownership", a.handleOwnership)
		r.Get("/frameworks", a.handleFrameworks)
		r.Get("/framework-categories", a.handleFrameworkCategories)
		r.Get("/gaps", a.handleGaps)
		r.Get("/indicators", a.handleIndicators)

		r.Get("/answers", a.handleAnswers)
		r.Put("/answers/{questionID}", a.handlePutAnswer)
		r.Delete("/answers/{questionID}", a.handleDeleteAnswer)

		r.Get("/settings/frameworks", a.handleGetFrameworkFilter)
		r.Put("/settings/frameworks", a.handlePutFrameworkFilter)
	})

	return r
}

// assess runs a full computation for a read endpoint. Handlers slice the
// result rather than compute partial views, so all endpoints stay
// mutually consistent.
func (a *App) assess(w http.ResponseWriter, r *http.Request) (*model.Assessment, bool) {
	res, err := a.runner.Assess(r.Context(), a.store)
	if err != nil {
		a.logger.Error("assessment failed", slog.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return res, true
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	res, ok := a.assess(w, r)
	if !ok {
		return
	}
	writeJSON(w, res)
}

func (a *App) handleDomains(w http.ResponseWriter, r *http.Request) {
	res, ok := a.assess(w, r)
	if !ok {
		return
	}
	writeJSON(w, res.Domains)
}

func (a *App) handleOwnership(w http.ResponseWriter, r *http.Request) {
	res, ok := a.assess(w, r)
	if !ok {
		return
	}
	writeJSON(w, orEmptyGroups(res.Ownership))
}

func (a *App) handleFrameworks(w http.ResponseWriter, r *http.Request) {
	res, ok := a.assess(w, r)
	if !ok {
		return
	}
	writeJSON(w, orEmptyGroups(res.Frameworks))
}

func (a *App) handleFrameworkCategories(w http.ResponseWriter, r *http.Request) {
	res, ok := a.assess(w, r)
	if !ok {
		return
	}
	writeJSON(w, orEmptyGroups(res.FrameworkCategories))
}

func (a *App) handleGaps(w http.ResponseWriter, r *http.Request) {
	res, ok := a.assess(w, r)
	if !ok {
		return
	}
	gaps := res.Gaps
	if gaps == nil {
		gaps = []model.GapEntry{}
	}
	writeJSON(w, gaps)
}

func (a *App) handleIndicators(w http.ResponseWriter, r *http.Request) {
	res, ok := a.assess(w, r)
	if !ok {
		return
	}
	inds := res.Indicators
	if inds == nil {
		inds = []model.Indicator{}
	}
	writeJSON(w, inds)
}

func (a *App) handleAnswers(w http.ResponseWriter, r *http.Request) {
	answers, err := a.store.Answers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, answers)
}

// answerBody is the PUT payload; the question id comes from the URL.
type answerBody struct {
	Response     string   `json:"response"`
	Evidence     string   `json:"evidence,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	EvidenceRefs []string `json:"evidenceRefs,omitempty"`
}

func (a *App) handlePutAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "questionID")
	if _, ok := a.runner.Snapshot().QuestionByID(id); !ok {
		http.Error(w, "unknown question id", http.StatusNotFound)
		return
	}

	var body answerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	ans := model.Answer{
		QuestionID:   id,
		Response:     model.Response(body.Response),
		Evidence:     model.EvidenceStatus(body.Evidence),
		Notes:        body.Notes,
		EvidenceRefs: body.EvidenceRefs,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := a.store.PutAnswer(r.Context(), ans); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, ans)
}

func (a *App) handleDeleteAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "questionID")
	if err := a.store.DeleteAnswer(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// frameworkFilterBody is the GET/PUT payload for the active restriction.
// An empty list means all enabled frameworks.
type frameworkFilterBody struct {
	Frameworks []string `json:"frameworks"`
}

func (a *App) handleGetFrameworkFilter(w http.ResponseWriter, r *http.Request) {
	filter, err := a.runner.Filter(r.Context(), a.store)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	ids := filter.IDs()
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, frameworkFilterBody{Frameworks: ids})
}

func (a *App) handlePutFrameworkFilter(w http.ResponseWriter, r *http.Request) {
	var body frameworkFilterBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	for _, id := range body.Frameworks {
		if _, ok := a.runner.Snapshot().FrameworkByID(id); !ok {
			http.Error(w, "unknown framework id: "+id, http.StatusBadRequest)
			return
		}
	}
	value := strings.Join(body.Frameworks, ",")
	if err := a.store.PutSetting(r.Context(), store.SettingFrameworkFilter, value); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func orEmptyGroups(g []model.GroupMetrics) []model.GroupMetrics {
	if g == nil {
		return []model.GroupMetrics{}
	}
	return g
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
