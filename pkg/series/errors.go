package series

import "github.com/pkg/errors"

var (
	// ErrMissingData is returned when a run has no series for a metric.
	ErrMissingData = errors.New("missing data")
	// ErrMalformed is returned when a series cannot be parsed or breaks the step ordering.
	ErrMalformed = errors.New("malformed series")
)
