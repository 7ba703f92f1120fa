// Package geode finds the largest number of geodes a blueprint can open
// within a time horizon.
//
// The search is a depth-first branch and bound over build orders. From every
// state it either builds nothing more, or waits until one robot type is
// affordable and builds it. Waiting is never branched on since production is
// linear until the next build.
package geode

import (
	"github.com/napolitain/solver-geodes/internal/models"
)

// Options configures a Solver
type Options struct {
	Horizon        int  // minutes available, DefaultHorizon when zero
	DisablePruning bool // explore robots the pruning heuristic would skip
	WithPlan       bool // reconstruct a build plan (SolveAll only)
}

// State is a search node: current production, stockpile and elapsed minutes
type State struct {
	Production models.ResourceSet
	Stock      models.ResourceSet
	Minute     int
}

// InitialState returns the state every blueprint starts from
func InitialState() State {
	return State{
		Production: models.ResourceSet{Ore: StartingOreRobots},
	}
}

// Solver searches one blueprint
type Solver struct {
	blueprint *models.Blueprint
	horizon   int
	prune     bool
	maxCost   models.ResourceSet

	nodes int
}

// NewSolver creates a solver for a blueprint
func NewSolver(bp *models.Blueprint, opts Options) *Solver {
	horizon := opts.Horizon
	if horizon == 0 {
		horizon = DefaultHorizon
	}
	return &Solver{
		blueprint: bp,
		horizon:   horizon,
		prune:     !opts.DisablePruning,
		maxCost:   bp.MaxCost(),
	}
}

// Horizon returns the number of minutes the solver plans for
func (s *Solver) Horizon() int {
	return s.horizon
}

// Nodes returns how many search nodes this solver has visited so far
func (s *Solver) Nodes() int {
	return s.nodes
}

// MaxGeodes returns the most geodes obtainable from the initial state
func (s *Solver) MaxGeodes() int {
	return s.MaxGeodesFrom(InitialState())
}

// MaxGeodesFrom returns the most geodes obtainable between st and the horizon.
// Geodes already in st's stockpile are not counted.
func (s *Solver) MaxGeodesFrom(st State) int {
	s.nodes++

	// Baseline: build nothing more.
	best := st.Production.Geode * (s.horizon - st.Minute)

	for i := range s.blueprint.Robots {
		robot := &s.blueprint.Robots[i]
		next, ok := s.build(st, robot)
		if !ok {
			continue
		}

		geodes := st.Production.Geode*(next.Minute-st.Minute) + s.MaxGeodesFrom(next)
		if geodes > best {
			best = geodes
		}
	}

	return best
}

// build waits until robot is affordable and builds it. It reports false when
// the robot is never affordable, is pruned, or would finish too late to produce.
func (s *Solver) build(st State, robot *models.Robot) (State, bool) {
	if !st.Production.CanProduceEventually(robot.Cost) {
		return st, false
	}
	if s.prune && s.doesNotHelpProduction(robot, st.Production) {
		return st, false
	}

	minute := st.Minute
	stock := st.Stock
	for !stock.CanAfford(robot.Cost) {
		minute++
		if minute+1 >= s.horizon {
			return st, false
		}
		stock.AddProduction(st.Production)
	}

	// The build itself takes a minute.
	minute++
	if minute >= s.horizon {
		return st, false
	}

	stock.AddProduction(st.Production)
	stock.Spend(robot.Cost)

	return State{
		Production: st.Production.Add(robot.Production),
		Stock:      stock,
		Minute:     minute,
	}, true
}

// doesNotHelpProduction reports whether building robot cannot speed up any
// future build: every resource it collects is already produced at least as
// fast as the most expensive robot consumes it. Geode robots always help.
func (s *Solver) doesNotHelpProduction(robot *models.Robot, production models.ResourceSet) bool {
	if robot.Production.Geode > 0 {
		return false
	}

	helps := false
	robot.Production.Each(func(rt models.ResourceType, amount int) {
		if amount > 0 && s.maxCost.Get(rt) > production.Get(rt) {
			helps = true
		}
	})
	return !helps
}
