package life

import "rewind-ca/internal/core"

// Observation carries everything a rule may inspect about one cell during one
// step: its position, its current alive flag, and the count of live Moore
// neighbors taken from the pre-step grid. Observations are built and consumed
// within a single step and never stored.
type Observation struct {
	X, Y      int
	Alive     bool
	Neighbors int
}

// Rule maps a cell observation to the cell's next alive flag. Implementations
// must not mutate the grid and should be stateless across cells.
type Rule interface {
	Evaluate(g *core.Grid, obs Observation) bool
}

// Engine holds an ordered list of rules. Rules run in registration order and
// cascade: each rule sees the previous rule's output as the observation's
// alive flag, while the neighbor count stays fixed at the pre-step value.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine preloaded with the standard Conway rule.
func NewEngine() *Engine {
	return &Engine{rules: []Rule{ConwayRule{}}}
}

// NewEmptyEngine returns an engine with no rules registered.
func NewEmptyEngine() *Engine {
	return &Engine{}
}

// Register appends a rule after the ones already present.
func (e *Engine) Register(r Rule) {
	if r == nil {
		return
	}
	e.rules = append(e.rules, r)
}

// Apply folds the observation through every registered rule and returns the
// final alive flag. With no rules the cell keeps its current state.
func (e *Engine) Apply(g *core.Grid, obs Observation) bool {
	for _, r := range e.rules {
		obs.Alive = r.Evaluate(g, obs)
	}
	return obs.Alive
}

// ConwayRule implements the standard B3/S23 Game of Life rule.
type ConwayRule struct{}

// Evaluate applies underpopulation, overcrowding, survival, and birth.
func (ConwayRule) Evaluate(_ *core.Grid, obs Observation) bool {
	if obs.Alive {
		return obs.Neighbors == 2 || obs.Neighbors == 3
	}
	return obs.Neighbors == 3
}

// SterileRegion forces every cell outside the given rectangle dead, leaving
// cells inside untouched. Bounds are inclusive at the minimum and exclusive
// at the maximum, matching the grid's coordinate ranges.
type SterileRegion struct {
	X0, Y0 int
	X1, Y1 int
}

// Evaluate kills cells outside the fertile rectangle.
func (s SterileRegion) Evaluate(_ *core.Grid, obs Observation) bool {
	if obs.X < s.X0 || obs.X >= s.X1 || obs.Y < s.Y0 || obs.Y >= s.Y1 {
		return false
	}
	return obs.Alive
}
