package ann

import "errors"

// Sentinel errors returned by construction, training and inference.
// Compare with errors.Is.
var (
	// ErrInvalidInputSize reports an input size outside [MinInputSize, MaxInputSize].
	ErrInvalidInputSize = errors.New("ann: invalid input size")
	// ErrInvalidHiddenSize reports a hidden size outside [MinHiddenSize, MaxHiddenSize].
	ErrInvalidHiddenSize = errors.New("ann: invalid hidden size")
	// ErrInvalidActivation reports an activation outside the closed set.
	ErrInvalidActivation = errors.New("ann: invalid activation")
	// ErrInvalidRowCount reports a sample count below one.
	ErrInvalidRowCount = errors.New("ann: invalid row count")
	// ErrNotInitialized reports use of a network that was never constructed
	// by New.
	ErrNotInitialized = errors.New("ann: network not initialized")
	// ErrDimensionMismatch reports a buffer whose length does not match the
	// network's dimensions.
	ErrDimensionMismatch = errors.New("ann: dimension mismatch")
)
