// Package review assembles reports from the remote store with pending local edits on top.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/schoolscore/core"
	"github.com/huangsam/schoolscore/internal/catalog"
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/pending"
	"github.com/huangsam/schoolscore/schema"
)

// Service reads one school's scores and scores them against a catalog.
type Service struct {
	remote  contract.RemoteStore
	pending *pending.Store // optional
	cfg     *contract.Config
	rows    []schema.CatalogRow
	graphs  []schema.CustomGraph
	now     func() time.Time
}

// NewService returns a review service. A nil pending store reads remote values only.
func NewService(remote contract.RemoteStore, store *pending.Store, cfg *contract.Config, rows []schema.CatalogRow, graphs []schema.CustomGraph) *Service {
	return &Service{
		remote:  remote,
		pending: store,
		cfg:     cfg,
		rows:    rows,
		graphs:  graphs,
		now:     time.Now,
	}
}

// TreeOptions maps the configured thresholds onto scoring options.
func TreeOptions(cfg *contract.Config) core.TreeOptions {
	return core.TreeOptions{
		IndicatorThreshold: cfg.IndicatorThreshold,
		Grades:             GradeThresholds(cfg),
	}
}

// GradeThresholds maps the configured grade boundaries onto core thresholds.
func GradeThresholds(cfg *contract.Config) core.GradeThresholds {
	return core.GradeThresholds{
		FullyAchieved:  cfg.GradeFully,
		MostlyAchieved: cfg.GradeMostly,
		Achieved:       cfg.GradeAchieved,
	}
}

// BuildView loads the remote values of the school and layers pending edits on top.
// Edits held for another school are never layered.
func (s *Service) BuildView(ctx context.Context) (schema.ScoreView, error) {
	view := schema.ScoreView{
		Checklist: make(map[string][]schema.DataPoint),
		LTScores:  make(map[string]map[string]string),
		PendingLT: make(map[string]map[string]string),
		Comments:  make(map[string]string),
	}

	scores, err := s.remote.GetIndicatorScores(ctx, s.cfg.SchoolID)
	if err != nil {
		return view, fmt.Errorf("load checklist scores: %w", err)
	}
	for _, row := range scores {
		view.Checklist[row.IndicatorCode] = append(view.Checklist[row.IndicatorCode],
			schema.DataPoint{Source: row.Source, Value: row.Value})
	}

	ltRows, err := s.remote.GetLTScores(ctx, s.cfg.SchoolID)
	if err != nil {
		return view, fmt.Errorf("load LT scores: %w", err)
	}
	for _, row := range ltRows {
		cols, ok := view.LTScores[row.IndicatorCode]
		if !ok {
			cols = make(map[string]string)
			view.LTScores[row.IndicatorCode] = cols
		}
		cols[row.Column] = row.Value
	}

	comments, err := s.remote.GetComments(ctx, s.cfg.SchoolID)
	if err != nil {
		return view, fmt.Errorf("load comments: %w", err)
	}
	for code, text := range comments {
		view.Comments[code] = text
	}

	if s.pending == nil || s.pending.SchoolID() != s.cfg.SchoolID {
		return view, nil
	}
	view.PendingLT = s.pending.PendingValues()
	for code := range s.pending.PendingComments() {
		view.Comments[code] = ""
	}
	for code := range view.Comments {
		if text := s.pending.GetComment(code, comments[code]); text != "" {
			view.Comments[code] = text
		} else {
			delete(view.Comments, code)
		}
	}
	return view, nil
}

// Report scores the catalog rows of a dimension. An empty dimension scores every row.
func (s *Service) Report(ctx context.Context, dimension string) (schema.Report, error) {
	view, err := s.BuildView(ctx)
	if err != nil {
		return schema.Report{}, err
	}
	rows := catalog.ForDimension(s.rows, dimension)
	return core.BuildReport(s.cfg.SchoolID, dimension, rows, view, TreeOptions(s.cfg), s.now()), nil
}

// CustomGraphs scores the custom graphs of a dimension, or all graphs when dimension is empty.
func (s *Service) CustomGraphs(ctx context.Context, dimension string) ([]schema.CustomGraphResult, error) {
	view, err := s.BuildView(ctx)
	if err != nil {
		return nil, err
	}
	graphs := s.graphs
	if dimension != "" {
		graphs = core.CustomGraphsFor(graphs, dimension)
	}
	resolve := core.ViewResolver(view)
	results := make([]schema.CustomGraphResult, 0, len(graphs))
	for _, g := range graphs {
		results = append(results, core.BuildCustomGraph(g, resolve))
	}
	return results, nil
}
