package analysis

import "github.com/pkg/errors"

var (
	ErrSourceMustBeSet = errors.New("source must be set")
	ErrNoRuns          = errors.New("at least one run is required")
	ErrInvalidOptions  = errors.New("invalid options")
)
