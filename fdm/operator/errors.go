package operator

import "errors"

var (
	// ErrInvalidDirection is returned when a direction is outside the layout rank.
	ErrInvalidDirection = errors.New("operator: invalid direction")
	// ErrDirectionMismatch is returned when operators along different axes are combined.
	ErrDirectionMismatch = errors.New("operator: direction mismatch")
	// ErrSizeMismatch is returned when operator or coefficient sizes disagree.
	ErrSizeMismatch = errors.New("operator: size mismatch")
	// ErrZeroPivot is returned by SolveSplitting when the tridiagonal sweep hits a zero pivot.
	ErrZeroPivot = errors.New("operator: zero pivot in tridiagonal solve")
	// ErrBoundaryBand is returned by SolveSplitting when a band coefficient
	// reaching past the edge of a pencil is non-zero.
	ErrBoundaryBand = errors.New("operator: non-zero band outside pencil")
	// ErrIllegalLocalVol is returned when the local volatility surface
	// fails and no overwrite value was configured.
	ErrIllegalLocalVol = errors.New("operator: illegal local volatility")
	// ErrInvalidStep is returned by SetTime when the step does not move forward.
	ErrInvalidStep = errors.New("operator: step end must be after step start")
	// ErrMissingModel is returned by New when the parameters lack the model a kind needs.
	ErrMissingModel = errors.New("operator: missing model")
	// ErrUnknownKind is returned by New for an unregistered operator kind.
	ErrUnknownKind = errors.New("operator: unknown kind")
)
