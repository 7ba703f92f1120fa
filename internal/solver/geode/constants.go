package geode

import "github.com/napolitain/solver-geodes/internal/models"

// Search constants
const (
	// DefaultHorizon is the number of minutes available when no horizon is given
	DefaultHorizon = models.DefaultHorizon

	// StartingOreRobots is how many ore robots every blueprint starts with
	StartingOreRobots = 1
)
