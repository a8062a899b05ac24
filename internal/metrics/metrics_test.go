package metrics_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/border"
	"github.com/katalvlaran/mazegraph/internal/metrics"
	"github.com/katalvlaran/mazegraph/maze"
	"github.com/katalvlaran/mazegraph/pixel"
)

func parseL(t *testing.T, rec *metrics.Recorder) (*maze.Result, error) {
	t.Helper()
	buf, err := pixel.FromASCII([]string{
		"##.##",
		"##.##",
		"##...",
		"#####",
		"#####",
	}, nil)
	require.NoError(t, err)
	return maze.Parse(buf, maze.WithOnStage(rec.ObserveStage))
}

func TestRecorder_SuccessfulRun(t *testing.T) {
	rec := metrics.New()
	res, err := parseL(t, rec)
	require.NoError(t, err)
	rec.RunFinished(res, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsTotal.WithLabelValues(metrics.ResultOK)))
	assert.Equal(t, 3.0, testutil.ToFloat64(rec.NodeCount))
	assert.Equal(t, 4.0, testutil.ToFloat64(rec.EdgeCount))
	assert.Equal(t, 25.0, testutil.ToFloat64(rec.PixelCount))
	assert.Equal(t, len(maze.Stages()), testutil.CollectAndCount(rec.StageDuration))
}

func TestRecorder_FailedRunKeepsGauges(t *testing.T) {
	rec := metrics.New()
	rec.RunFinished(nil, fmt.Errorf("wrapped: %w", border.ErrMarkerInCorner))

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsTotal.WithLabelValues("marker_in_corner")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.NodeCount))
}

func TestReason(t *testing.T) {
	cases := map[string]error{
		metrics.ResultOK:      nil,
		"decode":              pixel.ErrDecode,
		"too_many_colors":     &border.ColorCountError{Err: border.ErrTooManyColors},
		"invalid_color":       &border.PixelError{},
		"ambiguous_endpoints": border.ErrAmbiguousEndpoints,
		"canceled":            context.DeadlineExceeded,
		"error":               os.ErrPermission,
	}
	for want, err := range cases {
		assert.Equal(t, want, metrics.Reason(err), "%v", err)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := metrics.New()
	rec.ObserveStage(maze.StageEvent{Stage: maze.StageLink, Elapsed: 3 * time.Millisecond, Count: 4})
	rec.RunFinished(nil, border.ErrTooManyColors)

	path := filepath.Join(t.TempDir(), "mazegraph.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `mazegraph_runs_total{result="too_many_colors"} 1`), text)
	assert.True(t, strings.Contains(text, `mazegraph_stage_duration_seconds_count{stage="link"} 1`), text)
}
