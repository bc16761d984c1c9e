package drawer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-stagestats/pkg/pipeline/drawer"
	"github.com/askiada/go-stagestats/pkg/pipeline/measure"
	"github.com/askiada/go-stagestats/pkg/pipeline/model"
)

func TestDOTDrawerWriteTo(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer("unused.dot")
	require.NoError(t, d.AddStep("metrics"))
	require.NoError(t, d.AddStep("analyse"))
	require.NoError(t, d.AddStep("analyse"))
	require.NoError(t, d.AddLink("metrics", "analyse"))
	require.Error(t, d.AddLink("metrics", "missing"))

	var buf bytes.Buffer
	require.NoError(t, d.WriteTo(&buf))

	out := buf.String()
	assert.Contains(t, out, "strict digraph {")
	assert.Contains(t, out, `"metrics" -> "analyse"`)
	assert.Contains(t, out, `shape="box"`)
}

func TestPipelineDrawerFinish(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "pipeline.dot")

	msr := measure.NewDefaultMeasure()
	mOpt := measure.PipelineMeasure(msr)
	dOpt := drawer.PipelineDrawer(drawer.NewDOTDrawer(fileName), msr)

	root := &model.StepInfo{Name: "metrics", Concurrent: 1}
	step := &model.StepInfo{Name: "analyse", Concurrent: 2}
	sink := &model.StepInfo{Name: "collect", Concurrent: 1}

	for _, opt := range []model.PipelineOption{mOpt, dOpt} {
		require.NoError(t, opt.New())
		require.NoError(t, opt.PrepareStep(model.StartStep.Details, root))
		require.NoError(t, opt.PrepareStep(root, step))
		require.NoError(t, opt.PrepareSink(step, sink))
	}

	require.NoError(t, mOpt.OnStepOutput(root, step, 2*time.Millisecond, 5*time.Millisecond))
	require.NoError(t, mOpt.OnSinkOutput(step, sink, 8*time.Millisecond, time.Millisecond))
	require.NoError(t, mOpt.AfterSink(sink, 20*time.Millisecond))
	require.NoError(t, dOpt.Finish())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)

	out := string(content)
	assert.Contains(t, out, `"start" -> "metrics"`)
	assert.Contains(t, out, `"analyse" -> "collect"`)
	assert.Contains(t, out, `"collect" -> "end"`)
	assert.Contains(t, out, "5ms x 1")
	assert.Contains(t, out, `label="8ms"`)
	assert.Contains(t, out, `fontcolor="blue"`)
}

func TestDOTDrawerDraw(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "pipeline.dot")

	d := drawer.NewDOTDrawer(fileName)
	require.NoError(t, d.AddStep("metrics"))
	require.NoError(t, d.AddStep("collect"))
	require.NoError(t, d.AddLink("metrics", "collect"))
	require.NoError(t, d.Draw())

	var want bytes.Buffer
	require.NoError(t, d.WriteTo(&want))

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(content))
}

func TestDOTDrawerDrawErrors(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		d := drawer.NewDOTDrawer(filepath.Join(t.TempDir(), "missing", "pipeline.dot"))
		err := d.Draw()
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "unable to create file")
	})

	t.Run("write", func(t *testing.T) {
		t.Parallel()

		if _, err := os.Stat("/dev/full"); err != nil {
			t.Skip("/dev/full is not available")
		}

		d := drawer.NewDOTDrawer("/dev/full")
		require.NoError(t, d.AddStep("metrics"))

		err := d.Draw()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to write dot file /dev/full")
	})
}
