// Package model provides the data structures shared by the pipeline package and its options.
// It defines the steps of a pipeline, the metadata describing them and the hooks a pipeline
// option can implement.
package model
