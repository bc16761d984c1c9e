package series

import "github.com/pkg/errors"

// Point is a single recorded sample.
type Point struct {
	Step  int64
	Value float64
}

// Series is the ordered list of samples of one metric in one run.
type Series struct {
	Name   string
	Points []Point
}

// New builds a series from aligned steps and values.
func New(name string, steps []int64, values []float64) (Series, error) {
	if len(steps) != len(values) {
		return Series{}, errors.Wrapf(ErrMalformed, "%s: %d steps for %d values", name, len(steps), len(values))
	}

	points := make([]Point, len(steps))
	for i := range steps {
		points[i] = Point{Step: steps[i], Value: values[i]}
	}

	s := Series{Name: name, Points: points}

	err := s.Validate()
	if err != nil {
		return Series{}, err
	}

	return s, nil
}

// Validate checks steps are non negative and non-decreasing.
func (s Series) Validate() error {
	for i, p := range s.Points {
		if p.Step < 0 {
			return errors.Wrapf(ErrMalformed, "%s: negative step %d at row %d", s.Name, p.Step, i)
		}

		if i > 0 && p.Step < s.Points[i-1].Step {
			return errors.Wrapf(ErrMalformed, "%s: step %d after step %d at row %d", s.Name, p.Step, s.Points[i-1].Step, i)
		}
	}

	return nil
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.Points)
}

// Empty reports whether the series has no sample.
func (s Series) Empty() bool {
	return len(s.Points) == 0
}

// Steps returns a copy of the steps.
func (s Series) Steps() []int64 {
	res := make([]int64, len(s.Points))
	for i, p := range s.Points {
		res[i] = p.Step
	}

	return res
}

// Values returns a copy of the values.
func (s Series) Values() []float64 {
	res := make([]float64, len(s.Points))
	for i, p := range s.Points {
		res[i] = p.Value
	}

	return res
}
