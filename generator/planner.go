package generator

import (
	"github.com/cockroachdb/errors"
	"github.com/easygen/go-easy-generation/generator/definition"
)

// Planner decides which definitions to generate from the definitions that already exist.
// Plan must not perform I/O; everything it needs is in existing.
type Planner interface {
	Plan(existing []*definition.Definition) (definition.Plan, error)
}

// PlannerFunc adapts a function to the Planner interface.
type PlannerFunc func(existing []*definition.Definition) (definition.Plan, error)

func (f PlannerFunc) Plan(existing []*definition.Definition) (definition.Plan, error) {
	return f(existing)
}

// Compose runs planners in order and merges their plans. Groups sharing a primary
// namespace are concatenated in planner order.
func Compose(planners ...Planner) Planner {
	if len(planners) == 1 {
		return planners[0]
	}
	return PlannerFunc(func(existing []*definition.Definition) (definition.Plan, error) {
		merged := definition.Plan{}
		for i, p := range planners {
			plan, err := p.Plan(existing)
			if err != nil {
				return nil, errors.Wrapf(err, "planner %d", i)
			}
			for _, primary := range plan.Primaries() {
				merged.Add(primary, plan[primary]...)
			}
		}
		return merged, nil
	})
}
