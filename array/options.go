package array

type options struct {
	low, high       int
	hasLow, hasHigh bool
}

// An Option restricts a range algorithm to a sub-range of a container.
type Option func(*options)

// Within restricts an algorithm to the half-open range [low, high).
func Within(low, high int) Option {
	return func(o *options) {
		o.low, o.hasLow = low, true
		o.high, o.hasHigh = high, true
	}
}

// From sets the inclusive start of the range.
func From(low int) Option {
	return func(o *options) {
		o.low, o.hasLow = low, true
	}
}

// Until sets the exclusive end of the range.
func Until(high int) Option {
	return func(o *options) {
		o.high, o.hasHigh = high, true
	}
}

/*
Bounds resolves the range selected by opts for a.

The range defaults to [0, a.Extent()). The resolved range must satisfy
0 <= low <= high <= a.Len(), otherwise Bounds returns a *BoundsError
naming the offending end.
*/
func Bounds[T any](a Interface[T], opts ...Option) (low, high int, err error) {
	o := options{high: a.Extent()}
	for _, opt := range opts {
		opt(&o)
	}
	low, high = o.low, o.high
	if !o.hasHigh && high < low {
		high = low
	}
	size := a.Len()
	switch {
	case low < 0 || low > size:
		return 0, 0, &BoundsError{Index: low, Low: 0, High: size + 1}
	case high < low || high > size:
		return 0, 0, &BoundsError{Index: high, Low: low, High: size + 1}
	}
	return low, high, nil
}
