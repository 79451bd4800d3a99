// Package runner assembles one assessment run: catalog snapshot, answer
// read, engine invocation and the derived extras (remediation steps,
// indicators). The CLI and the HTTP API both go through it, so a report
// and a dashboard over the same store always agree.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"security-maturity-assessor/internal/catalog"
	"security-maturity-assessor/internal/config"
	"security-maturity-assessor/internal/engine"
	"security-maturity-assessor/internal/gaps"
	"security-maturity-assessor/internal/indicator"
	"security-maturity-assessor/internal/maturity"
	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/remediation"
	"security-maturity-assessor/internal/scope"
	"security-maturity-assessor/internal/store"
)

// Runner holds the per-process fixed inputs: the frozen catalog and the
// configured engine. Answers and the framework filter are read fresh on
// every Assess call.
type Runner struct {
	cfg      *config.Config
	snap     *catalog.Snapshot
	engine   *engine.Engine
	logger   *slog.Logger
	warnings []string
}

// New loads the catalog named by cfg (or the built-in one) and builds the
// engine from the configured cut points and gap threshold. Catalog
// normalization warnings are carried into every assessment.
func New(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		var err error
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("runner: %w", err)
		}
		logger.Info("loaded catalog", slog.String("path", cfg.CatalogPath))
	} else {
		cat = catalog.Default()
	}
	warnings := cat.Normalize()
	for _, w := range warnings {
		logger.Warn("catalog integrity", slog.String("warning", w))
	}

	classifier, err := maturity.FromCutpoints(cfg.MaturityCutpoints)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	return &Runner{
		cfg:      cfg,
		snap:     cat.Snapshot(),
		engine:   engine.New(classifier, gaps.New(cfg.GapThreshold)),
		logger:   logger,
		warnings: warnings,
	}, nil
}

// Snapshot exposes the frozen catalog for read-only handlers.
func (r *Runner) Snapshot() *catalog.Snapshot { return r.snap }

// Filter resolves the active framework restriction: the store setting
// when one was saved, otherwise the configured list.
func (r *Runner) Filter(ctx context.Context, st *store.Store) (scope.Filter, error) {
	raw, err := st.Setting(ctx, store.SettingFrameworkFilter)
	if errors.Is(err, store.ErrNotFound) {
		return scope.FromIDs(r.cfg.Frameworks), nil
	}
	if err != nil {
		return scope.Filter{}, err
	}
	return scope.Parse(raw), nil
}

// Assess reads the current answers and produces a complete Assessment.
func (r *Runner) Assess(ctx context.Context, st *store.Store) (*model.Assessment, error) {
	started := time.Now().UTC()

	filter, err := r.Filter(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("runner: load filter: %w", err)
	}
	answers, err := st.Answers(ctx)
	if err != nil {
		return nil, fmt.Errorf("runner: load answers: %w", err)
	}

	res := r.engine.Compute(r.snap, answers, filter)

	a := model.NewAssessment(started)
	a.Metadata.Organization = r.cfg.Organization
	a.Metadata.Team = r.cfg.Team
	a.Metadata.Environment = r.cfg.Environment
	a.Run.EndedAt = time.Now().UTC()
	a.Run.FrameworkFilter = filter.IDs()

	a.Overall = res.Overall
	a.Domains = res.Domains
	a.Ownership = res.Ownership
	a.Frameworks = res.Frameworks
	a.FrameworkCategories = res.FrameworkCategories
	a.Gaps = res.Gaps
	a.Warnings = append(append([]string(nil), r.warnings...), res.Warnings...)

	a.RemediationSteps = remediation.Generate(a)
	a.Indicators = indicator.Classify(r.snap, filter)

	r.logger.Debug("assessment computed",
		slog.Float64("score", a.Overall.Score),
		slog.Float64("coverage", a.Overall.Coverage),
		slog.Int("gaps", len(a.Gaps)))
	return a, nil
}
