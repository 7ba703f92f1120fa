package geode

import (
	"testing"

	"github.com/napolitain/solver-geodes/internal/models"
)

// FuzzSearchInvariants checks, for arbitrary small blueprints, that the search
// never spends what it cannot afford (Spend panics), that the pruned result
// matches exhaustive search, and that the reconstructed plan replays to the
// same geode count without building at or after the horizon.
func FuzzSearchInvariants(f *testing.F) {
	// Seed corpus: the published examples at a short horizon, plus edge cases
	f.Add(uint8(4), uint8(2), uint8(3), uint8(14), uint8(2), uint8(7), uint8(9))
	f.Add(uint8(2), uint8(3), uint8(3), uint8(8), uint8(3), uint8(12), uint8(9))
	f.Add(uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(8))
	f.Add(uint8(0), uint8(0), uint8(0), uint8(0), uint8(0), uint8(0), uint8(6))
	f.Add(uint8(9), uint8(9), uint8(9), uint8(9), uint8(9), uint8(9), uint8(1))

	f.Fuzz(func(t *testing.T, oreOre, clayOre, obsOre, obsClay, geoOre, geoObs, horizon uint8) {
		// Keep the exhaustive oracle cheap
		h := int(horizon%10) + 1
		bp := models.NewBlueprint(1,
			int(oreOre%6)+1, int(clayOre%6)+1,
			int(obsOre%6)+1, int(obsClay%10),
			int(geoOre%6)+1, int(geoObs%10))

		pruned := NewSolver(bp, Options{Horizon: h})
		oracle := NewSolver(bp, Options{Horizon: h, DisablePruning: true})

		got := pruned.MaxGeodes()
		want := oracle.MaxGeodes()
		if got != want {
			t.Fatalf("horizon %d %+v: pruned %d, exhaustive %d", h, bp.Robots, got, want)
		}
		if got < 0 {
			t.Fatalf("negative geodes: %d", got)
		}

		// Every geode robot needs at least a minute of waiting and one of building.
		if h <= 2 && got != 0 {
			t.Fatalf("horizon %d opened %d geodes", h, got)
		}

		plan := pruned.Plan()
		if plan.Geodes != got {
			t.Fatalf("plan geodes %d, search %d", plan.Geodes, got)
		}
		replayed, ok := Replay(bp, h, plan.Actions)
		if !ok {
			t.Fatalf("horizon %d: plan not replayable: %+v", h, plan.Actions)
		}
		if replayed != got {
			t.Fatalf("horizon %d: replay %d, search %d", h, replayed, got)
		}
	})
}
