// Package series holds the scalar time series recorded during a training run and the
// loaders producing them.
//
// A Series is an ordered list of (step, value) points with non-decreasing steps. Series are
// read from CSV exports with a header containing at least the "step" and "value" columns,
// one file per metric and per run directory.
package series
