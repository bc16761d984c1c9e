package series

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Source gives access to the series of the runs being analysed.
// Load returns ErrMissingData when the run has no usable series for the metric.
type Source interface {
	Load(ctx context.Context, run, metric string) (Series, error)
}

// DirSource reads <run>/<metric>.csv files. Unreadable or malformed files are logged and
// reported as missing so that analysis never sees a partial series.
type DirSource struct {
	Logger *slog.Logger
}

func (d DirSource) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}

	return slog.Default()
}

// Load implements Source.
func (d DirSource) Load(ctx context.Context, run, metric string) (Series, error) {
	if err := ctx.Err(); err != nil {
		return Series{}, err
	}

	path := filepath.Join(run, metric+".csv")

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Series{}, errors.Wrapf(ErrMissingData, "%s", path)
	}

	if err != nil {
		d.logger().Warn("unable to open series", "path", path, "error", err)

		return Series{}, errors.Wrapf(ErrMissingData, "%s", path)
	}
	defer file.Close()

	s, err := ReadCSV(metric, file)
	if err != nil {
		d.logger().Warn("skipping malformed series", "path", path, "error", err)

		return Series{}, errors.Wrapf(ErrMissingData, "%s", path)
	}

	if s.Empty() {
		return Series{}, errors.Wrapf(ErrMissingData, "%s: no sample", path)
	}

	return s, nil
}

// MapSource is an in-memory Source keyed by run then metric.
type MapSource map[string]map[string]Series

// Load implements Source.
func (m MapSource) Load(_ context.Context, run, metric string) (Series, error) {
	s, ok := m[run][metric]
	if !ok || s.Empty() {
		return Series{}, errors.Wrapf(ErrMissingData, "%s/%s", run, metric)
	}

	return s, nil
}

var (
	_ Source = DirSource{}
	_ Source = MapSource{}
)
