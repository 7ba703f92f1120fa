package models

import "fmt"

// ResourceType represents the different resource kinds robots can collect
type ResourceType string

const (
	Ore      ResourceType = "ore"
	Clay     ResourceType = "clay"
	Obsidian ResourceType = "obsidian"
	Geode    ResourceType = "geode"
)

// AllResourceTypes returns all resource types in deterministic order
func AllResourceTypes() []ResourceType {
	return []ResourceType{Ore, Clay, Obsidian, Geode}
}

// ResourceSet is a deterministic struct for resource amounts (replaces map[ResourceType]int).
// It is used as a stockpile, a production rate or a cost.
type ResourceSet struct {
	Ore      int
	Clay     int
	Obsidian int
	Geode    int
}

// Get returns the amount for a resource type
func (r ResourceSet) Get(rt ResourceType) int {
	switch rt {
	case Ore:
		return r.Ore
	case Clay:
		return r.Clay
	case Obsidian:
		return r.Obsidian
	case Geode:
		return r.Geode
	}
	return 0
}

// Set sets the amount for a resource type
func (r *ResourceSet) Set(rt ResourceType, amount int) {
	switch rt {
	case Ore:
		r.Ore = amount
	case Clay:
		r.Clay = amount
	case Obsidian:
		r.Obsidian = amount
	case Geode:
		r.Geode = amount
	}
}

// Each iterates over all resources in deterministic order
func (r ResourceSet) Each(fn func(ResourceType, int)) {
	fn(Ore, r.Ore)
	fn(Clay, r.Clay)
	fn(Obsidian, r.Obsidian)
	fn(Geode, r.Geode)
}

// CanProduceEventually reports whether a production rate can ever accumulate
// the given cost: every kind the cost needs must be produced at a nonzero rate.
func (r ResourceSet) CanProduceEventually(cost ResourceSet) bool {
	if cost.Ore > 0 && r.Ore == 0 {
		return false
	}
	if cost.Clay > 0 && r.Clay == 0 {
		return false
	}
	if cost.Obsidian > 0 && r.Obsidian == 0 {
		return false
	}
	if cost.Geode > 0 && r.Geode == 0 {
		return false
	}
	return true
}

// AddProduction advances a stockpile by one minute of production
func (r *ResourceSet) AddProduction(production ResourceSet) {
	r.Ore += production.Ore
	r.Clay += production.Clay
	r.Obsidian += production.Obsidian
	r.Geode += production.Geode
}

// Add returns the componentwise sum
func (r ResourceSet) Add(other ResourceSet) ResourceSet {
	r.AddProduction(other)
	return r
}

// CanAfford reports whether the stockpile covers cost in every component
func (r ResourceSet) CanAfford(cost ResourceSet) bool {
	return r.Ore >= cost.Ore &&
		r.Clay >= cost.Clay &&
		r.Obsidian >= cost.Obsidian &&
		r.Geode >= cost.Geode
}

// Spend removes cost from the stockpile. Callers must check CanAfford first;
// an unaffordable spend is a programming error and panics.
func (r *ResourceSet) Spend(cost ResourceSet) {
	if !r.CanAfford(cost) {
		panic(fmt.Sprintf("spend %v from stockpile %v would underflow", cost, *r))
	}
	r.Ore -= cost.Ore
	r.Clay -= cost.Clay
	r.Obsidian -= cost.Obsidian
	r.Geode -= cost.Geode
}

// Max returns the componentwise maximum
func (r ResourceSet) Max(other ResourceSet) ResourceSet {
	return ResourceSet{
		Ore:      max(r.Ore, other.Ore),
		Clay:     max(r.Clay, other.Clay),
		Obsidian: max(r.Obsidian, other.Obsidian),
		Geode:    max(r.Geode, other.Geode),
	}
}

// String renders only the nonzero components, e.g. "4 ore and 14 clay"
func (r ResourceSet) String() string {
	s := ""
	r.Each(func(rt ResourceType, amount int) {
		if amount == 0 {
			return
		}
		if s != "" {
			s += " and "
		}
		s += fmt.Sprintf("%d %s", amount, rt)
	})
	if s == "" {
		return "nothing"
	}
	return s
}

// Unit returns a set holding exactly one unit of rt
func Unit(rt ResourceType) ResourceSet {
	var r ResourceSet
	r.Set(rt, 1)
	return r
}

// Robot is a robot type: what it costs and what it adds to production each minute
type Robot struct {
	Kind       ResourceType
	Cost       ResourceSet
	Production ResourceSet
}

// NewRobot creates a robot collecting one unit of kind per minute
func NewRobot(kind ResourceType, cost ResourceSet) Robot {
	return Robot{
		Kind:       kind,
		Cost:       cost,
		Production: Unit(kind),
	}
}

// Blueprint holds the costs of all four robot types.
// Robots are always ordered ore, clay, obsidian, geode.
type Blueprint struct {
	ID     int
	Robots [4]Robot
}

// NewBlueprint creates a blueprint from the six costs in the input template
func NewBlueprint(id, oreRobotOre, clayRobotOre, obsidianRobotOre, obsidianRobotClay, geodeRobotOre, geodeRobotObsidian int) *Blueprint {
	// Costs in AllResourceTypes order
	costs := [4]ResourceSet{
		{Ore: oreRobotOre},
		{Ore: clayRobotOre},
		{Ore: obsidianRobotOre, Clay: obsidianRobotClay},
		{Ore: geodeRobotOre, Obsidian: geodeRobotObsidian},
	}

	bp := &Blueprint{ID: id}
	for i, rt := range AllResourceTypes() {
		bp.Robots[i] = NewRobot(rt, costs[i])
	}
	return bp
}

// Robot returns the robot collecting the given resource
func (b *Blueprint) Robot(kind ResourceType) Robot {
	for _, r := range b.Robots {
		if r.Kind == kind {
			return r
		}
	}
	return Robot{}
}

// MaxCost returns, per resource, the largest amount any single robot costs
func (b *Blueprint) MaxCost() ResourceSet {
	var m ResourceSet
	for _, r := range b.Robots {
		m = m.Max(r.Cost)
	}
	return m
}
