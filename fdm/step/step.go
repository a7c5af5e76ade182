package step

import (
	"errors"
	"slices"

	"github.com/cwbudde/algo-fdm/fdm/core"
)

var (
	// ErrInvalidDirection is returned when the direction is outside the layout rank.
	ErrInvalidDirection = errors.New("step: invalid direction")
	// ErrMissingCalculator is returned when an exercise condition lacks an inner value.
	ErrMissingCalculator = errors.New("step: missing inner value calculator")
)

// Condition adjusts the solution a at time t.
type Condition interface {
	ApplyTo(a []float64, t float64)
}

// Stopper is implemented by conditions that only act at discrete times.
// A scheme has to stop exactly at those times.
type Stopper interface {
	StoppingTimes() []float64
}

// Composite applies a list of conditions in order.
type Composite struct {
	conditions []Condition
	times      []float64
}

// NewComposite combines conditions. The stopping times are the union of
// the times of every condition implementing Stopper and the extra times.
func NewComposite(extraTimes []float64, conditions ...Condition) *Composite {
	times := append([]float64(nil), extraTimes...)
	for _, c := range conditions {
		if s, ok := c.(Stopper); ok {
			times = append(times, s.StoppingTimes()...)
		}
	}
	slices.Sort(times)
	times = slices.CompactFunc(times, core.CloseEnough)

	return &Composite{
		conditions: append([]Condition(nil), conditions...),
		times:      times,
	}
}

// StoppingTimes returns the sorted, de-duplicated stopping times.
func (c *Composite) StoppingTimes() []float64 {
	return append([]float64(nil), c.times...)
}

// Conditions returns the combined conditions.
func (c *Composite) Conditions() []Condition {
	return c.conditions
}

// ApplyTo applies every condition in order.
func (c *Composite) ApplyTo(a []float64, t float64) {
	for _, cond := range c.conditions {
		cond.ApplyTo(a, t)
	}
}

func matchTime(times []float64, t float64) bool {
	return slices.ContainsFunc(times, func(s float64) bool {
		return core.CloseEnough(s, t)
	})
}
