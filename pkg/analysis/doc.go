// Package analysis runs the curriculum-aware analysis of a set of training runs.
//
// The stage structure is taken from the first run, in input order, that has a non empty
// stage signal, and applied to every run. Each configured metric is then analysed as an
// independent job on a pipeline.Pipeline so that metrics are processed concurrently.
//
// Without any stage signal, the analysis falls back to the trailing window of every
// series and the Result is tagged ModeFinalPerformanceOnly. The two modes make different
// statistical claims and are never mixed in one Result.
package analysis
