// Package curriculum computes stage-aware statistics over training metrics.
//
// A training curriculum advances through discrete difficulty stages recorded as an integer
// valued signal. Segment turns that signal into one StageInterval per stage, Aggregate
// computes the converged estimate of a metric inside each interval from the trailing window
// of samples, and Combine folds the per-run estimates into one CombinedStageResult per stage
// with a bootstrap confidence interval.
//
// When only one run contributes to a stage, a single mean has no resampling variance: the
// interval is then bootstrapped over the raw samples of that run's window, and the reported
// std is 0. When no run carries a stage signal, CombineFinal applies the same rules to the
// trailing window of each whole series.
//
// Every function is pure. A Bootstrapper owns a random source and must not be shared
// between goroutines.
package curriculum
