package dense

import "fmt"

// DefaultEpsilon is the absolute tolerance used by approximate comparisons
// when no WithEpsilon option is supplied.
const DefaultEpsilon = 1e-6

// Options holds the numeric policy for tolerance-based comparisons
// (ParallelTo, PerpendicularTo, IsOrthogonal and friends).
type Options struct {
	// Epsilon is the absolute tolerance. Zero means exact comparison.
	Epsilon float64

	// internal error recorded during option parsing
	err error
}

// Option adjusts Options via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrBadOption by the operation it
// was passed to.
type Option func(*Options)

// DefaultOptions returns the baseline policy: Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon sets the absolute tolerance for approximate comparisons.
//
//	eps > 0:  compare within eps
//	eps == 0: exact comparison
//	eps < 0:  invalid option → ErrBadOption
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: epsilon cannot be negative (%g)", ErrBadOption, eps)

			return
		}
		o.Epsilon = eps
	}
}

// gatherOptions folds opts over the defaults and reports the first
// recorded violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
