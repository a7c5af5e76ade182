package step

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fdm/fdm/layout"
	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/model"
)

// InnerValue returns the exercise value at a grid node.
type InnerValue interface {
	InnerValue(coordinates []int, t float64) float64
}

// LogInnerValue evaluates a payoff on a log-spot axis.
type LogInnerValue struct {
	payoff    model.Payoff
	mesher    mesher.Mesher
	direction int
}

// NewLogInnerValue returns payoff(exp(x)) with x read along direction of m.
func NewLogInnerValue(payoff model.Payoff, m mesher.Mesher, direction int) *LogInnerValue {
	return &LogInnerValue{payoff: payoff, mesher: m, direction: direction}
}

func (v *LogInnerValue) InnerValue(coordinates []int, _ float64) float64 {
	return v.payoff(math.Exp(v.mesher.Location(coordinates, v.direction)))
}

// American floors the solution at the exercise value at every step.
type American struct {
	layout *layout.Layout
	calc   InnerValue
}

// NewAmerican returns the early-exercise condition on the layout of m.
func NewAmerican(m mesher.Mesher, calc InnerValue) (*American, error) {
	if calc == nil {
		return nil, ErrMissingCalculator
	}
	return &American{layout: m.Layout(), calc: calc}, nil
}

func (c *American) ApplyTo(a []float64, t float64) {
	exercise(c.layout, c.calc, a, t)
}

// Bermudan floors the solution at the exercise value on exercise times only.
type Bermudan struct {
	layout *layout.Layout
	calc   InnerValue
	times  []float64
}

// NewBermudan returns the exercise condition for the given times.
func NewBermudan(times []float64, m mesher.Mesher, calc InnerValue) (*Bermudan, error) {
	if calc == nil {
		return nil, ErrMissingCalculator
	}
	return &Bermudan{
		layout: m.Layout(),
		calc:   calc,
		times:  append([]float64(nil), times...),
	}, nil
}

// StoppingTimes returns the exercise times.
func (c *Bermudan) StoppingTimes() []float64 {
	return append([]float64(nil), c.times...)
}

func (c *Bermudan) ApplyTo(a []float64, t float64) {
	if matchTime(c.times, t) {
		exercise(c.layout, c.calc, a, t)
	}
}

func exercise(l *layout.Layout, calc InnerValue, a []float64, t float64) {
	for i, coordinates := range l.All() {
		a[i] = math.Max(a[i], calc.InnerValue(coordinates, t))
	}
}

// ExerciseKind classifies an exercise schedule.
type ExerciseKind int

const (
	European ExerciseKind = iota
	AmericanExercise
	BermudanExercise
)

func (k ExerciseKind) String() string {
	switch k {
	case European:
		return "european"
	case AmericanExercise:
		return "american"
	case BermudanExercise:
		return "bermudan"
	default:
		return fmt.Sprintf("ExerciseKind(%d)", int(k))
	}
}

// Exercise is an exercise schedule. Times are only read for Bermudan
// exercise.
type Exercise struct {
	Kind  ExerciseKind
	Times []float64
}

// NewVanillaComposite returns the conditions of a vanilla option: the
// dividend handler on direction followed by the exercise condition.
func NewVanillaComposite(dividends []model.Dividend, ex Exercise, m mesher.Mesher, calc InnerValue, direction int) (*Composite, error) {
	var conditions []Condition
	if len(dividends) > 0 {
		h, err := NewDividendHandler(dividends, m, direction)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, h)
	}

	switch ex.Kind {
	case European:
	case AmericanExercise:
		c, err := NewAmerican(m, calc)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, c)
	case BermudanExercise:
		c, err := NewBermudan(ex.Times, m, calc)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, c)
	default:
		return nil, fmt.Errorf("step: unknown exercise %v", ex.Kind)
	}

	return NewComposite(nil, conditions...), nil
}
