package geode

import (
	"time"

	"github.com/napolitain/solver-geodes/internal/logging"
	"github.com/napolitain/solver-geodes/internal/models"
)

// Result is the outcome of searching one blueprint
type Result struct {
	Blueprint *models.Blueprint
	Geodes    int
	Nodes     int
	Elapsed   time.Duration
	Plan      *Solution // nil unless Options.WithPlan
}

// Quality returns the blueprint's quality level
func (r Result) Quality() int {
	return r.Blueprint.ID * r.Geodes
}

// Solve searches a single blueprint
func Solve(bp *models.Blueprint, opts Options) Result {
	start := time.Now()
	s := NewSolver(bp, opts)

	r := Result{Blueprint: bp}
	if opts.WithPlan {
		r.Plan = s.Plan()
		r.Geodes = r.Plan.Geodes
		r.Nodes = r.Plan.Nodes
	} else {
		r.Geodes = s.MaxGeodes()
		r.Nodes = s.Nodes()
	}
	r.Elapsed = time.Since(start)

	logging.Debug("blueprint solved",
		"id", bp.ID,
		"horizon", s.Horizon(),
		"geodes", r.Geodes,
		"nodes", r.Nodes,
		"elapsed", r.Elapsed)

	return r
}

// SolveAll searches each blueprint in order, one after another
func SolveAll(blueprints []*models.Blueprint, opts Options) []Result {
	results := make([]Result, 0, len(blueprints))
	for _, bp := range blueprints {
		results = append(results, Solve(bp, opts))
	}
	return results
}

// QualitySum returns the sum of every result's quality level
func QualitySum(results []Result) int {
	sum := 0
	for _, r := range results {
		sum += r.Quality()
	}
	return sum
}

// GeodeProduct returns the product of every result's geode count
func GeodeProduct(results []Result) int {
	product := 1
	for _, r := range results {
		product *= r.Geodes
	}
	return product
}

// Combine aggregates results the way agg asks for
func Combine(results []Result, agg models.Aggregate) int {
	if agg == models.AggregateProduct {
		return GeodeProduct(results)
	}
	return QualitySum(results)
}
