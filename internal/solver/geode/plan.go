package geode

import (
	"github.com/napolitain/solver-geodes/internal/models"
)

// BuildAction is one robot build in a plan
type BuildAction struct {
	Robot  models.ResourceType
	Minute int // minute at which the robot is ready
	Cost   models.ResourceSet
}

// Solution is an optimal build plan for one blueprint
type Solution struct {
	Geodes  int
	Nodes   int // nodes visited by the search, not counting the plan walk
	Actions []BuildAction
	Final   State // state after the last build
}

// Plan returns one optimal build order. It walks down the search tree,
// following at each node a branch whose value equals the node's optimum.
func (s *Solver) Plan() *Solution {
	st := InitialState()
	before := s.nodes
	target := s.MaxGeodesFrom(st)
	solution := &Solution{Geodes: target, Nodes: s.nodes - before}

	for {
		if target == st.Production.Geode*(s.horizon-st.Minute) {
			break
		}

		found := false
		for i := range s.blueprint.Robots {
			robot := &s.blueprint.Robots[i]
			next, ok := s.build(st, robot)
			if !ok {
				continue
			}

			gained := st.Production.Geode * (next.Minute - st.Minute)
			if gained+s.MaxGeodesFrom(next) != target {
				continue
			}

			solution.Actions = append(solution.Actions, BuildAction{
				Robot:  robot.Kind,
				Minute: next.Minute,
				Cost:   robot.Cost,
			})
			target -= gained
			st = next
			found = true
			break
		}

		// Unreachable: some branch always carries a non-baseline optimum.
		if !found {
			break
		}
	}

	solution.Final = st
	return solution
}

// Replay simulates actions from the initial state and returns the geodes
// opened by the horizon. It reports false if an action is unaffordable in
// time or completes at or after the horizon.
func Replay(bp *models.Blueprint, horizon int, actions []BuildAction) (int, bool) {
	st := InitialState()
	geodes := 0

	for _, a := range actions {
		robot := bp.Robot(a.Robot)
		if a.Minute >= horizon || a.Minute <= st.Minute {
			return 0, false
		}

		// Resources must be on hand at the start of the build minute.
		stock := st.Stock
		for m := st.Minute; m < a.Minute-1; m++ {
			stock.AddProduction(st.Production)
		}
		if !stock.CanAfford(robot.Cost) {
			return 0, false
		}
		stock.AddProduction(st.Production)
		stock.Spend(robot.Cost)

		geodes += st.Production.Geode * (a.Minute - st.Minute)
		st = State{
			Production: st.Production.Add(robot.Production),
			Stock:      stock,
			Minute:     a.Minute,
		}
	}

	geodes += st.Production.Geode * (horizon - st.Minute)
	return geodes, true
}
