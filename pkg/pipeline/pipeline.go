package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-stagestats/pkg/pipeline/model"
)

// stepRunner is the goroutine body of a step. run returns once the step has consumed its
// input or failed, and owns the closing of the step output.
type stepRunner struct {
	name string
	run  func(ctx context.Context) error
}

// result runs the step and names it in the returned error.
func (s stepRunner) result(ctx context.Context) error {
	err := s.run(ctx)
	if err != nil {
		return errors.Wrap(err, s.name)
	}

	return nil
}

// Pipeline is a pipeline of steps.
type Pipeline struct {
	mu        sync.Mutex
	steps     []stepRunner
	opts      []model.PipelineOption
	startTime time.Time
	started   bool
}

// New creates a new pipeline. Every option is initialised before any step is added.
func New(opts ...model.PipelineOption) (*Pipeline, error) {
	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return &Pipeline{
		startTime: time.Now(),
		opts:      opts,
	}, nil
}

func (p *Pipeline) addStep(name string, run func(ctx context.Context) error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.steps = append(p.steps, stepRunner{name: name, run: run})
}

// waitForSteps reads the outcome of total steps from done and returns the first error.
// done must be buffered for total results so that steps still running after an early
// return never block.
func waitForSteps(done <-chan error, total int) error {
	for i := 0; i < total; i++ {
		err := <-done
		if err != nil {
			return err
		}
	}

	return nil
}

// Run starts the pipeline and waits for it to finish. The first step error cancels the
// remaining steps and is returned. A pipeline can only run once.
func (p *Pipeline) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()

		return ErrAlreadyStarted
	}

	p.started = true
	steps := p.steps
	p.mu.Unlock()

	dCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, len(steps))
	for _, step := range steps {
		step := step
		go func() {
			done <- step.result(dCtx)
		}()
	}

	err := waitForSteps(done, len(steps))
	if err != nil {
		return err
	}

	return p.finishRun()
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
