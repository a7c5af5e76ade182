package operator

import (
	"fmt"

	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/model"
)

// Kind selects a model operator in New.
type Kind int

const (
	KindBlackScholes Kind = iota
	KindLocalVolBlackScholes
	KindHullWhite
)

func (k Kind) String() string {
	switch k {
	case KindBlackScholes:
		return "black-scholes"
	case KindLocalVolBlackScholes:
		return "local-vol-black-scholes"
	case KindHullWhite:
		return "hull-white"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Params carries everything a Kind may need. Fields a kind does not use
// are ignored.
type Params struct {
	Mesher    mesher.Mesher
	Direction int

	Process *model.BlackScholesProcess
	Strike  float64
	Quanto  *model.QuantoHelper
	// IllegalLocalVolOverwrite, when set, replaces failed local volatilities.
	IllegalLocalVolOverwrite *float64

	HullWhite *model.HullWhite
}

var factories = map[Kind]func(Params) (AxisOp, error){
	KindBlackScholes: func(p Params) (AxisOp, error) {
		return newBlackScholes(p)
	},
	KindLocalVolBlackScholes: func(p Params) (AxisOp, error) {
		return newBlackScholes(p, WithLocalVol())
	},
	KindHullWhite: func(p Params) (AxisOp, error) {
		op, err := NewHullWhiteOp(p.Mesher, p.HullWhite, p.Direction)
		if err != nil {
			return nil, err
		}
		return op, nil
	},
}

func newBlackScholes(p Params, extra ...BlackScholesOption) (AxisOp, error) {
	opts := append([]BlackScholesOption{WithDirection(p.Direction), WithQuantoHelper(p.Quanto)}, extra...)
	if p.IllegalLocalVolOverwrite != nil {
		opts = append(opts, WithIllegalLocalVolOverwrite(*p.IllegalLocalVolOverwrite))
	}
	op, err := NewBlackScholesOp(p.Mesher, p.Process, p.Strike, opts...)
	if err != nil {
		return nil, err
	}
	return op, nil
}

// New builds the operator registered for kind.
func New(kind Kind, p Params) (AxisOp, error) {
	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if p.Mesher == nil {
		return nil, fmt.Errorf("%w: %v needs a mesher", ErrMissingModel, kind)
	}
	return f(p)
}
