package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrNegativeValue is returned for a negative carbon total.
	ErrNegativeValue = constError("negative carbon value")

	// ErrNotFinite is returned for NaN or infinite totals.
	ErrNotFinite = constError("carbon value is not a finite number")
)
