// Package pipeline provides a channel based pipeline for processing data.
//
// A pipeline starts with a root step producing elements, goes through any number of steps
// transforming them and ends with sinks consuming them. Each step runs in its own goroutines
// and hands its output to the next one through a channel, so independent elements are
// processed concurrently when a step is configured with StepConcurrency.
//
// The pipeline stops on the first encountered error: the shared context is cancelled and Run
// returns the error decorated with the name of the failing step.
//
// Options implementing model.PipelineOption are notified when steps are prepared and every
// time an element flows through them. The measure and drawer sub packages provide options
// recording step durations and rendering the pipeline as a graph.
package pipeline
