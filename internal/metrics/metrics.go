// Package metrics defines Prometheus metrics for mazegraph runs.
package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mazegraph/border"
	"github.com/katalvlaran/mazegraph/maze"
	"github.com/katalvlaran/mazegraph/pixel"
)

// ResultOK is the result label of a successful run.
const ResultOK = "ok"

// Recorder owns a private registry so that a CLI run can dump exactly its
// own series to a textfile.
type Recorder struct {
	Registry *prometheus.Registry

	RunsTotal     *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
	NodeCount     prometheus.Gauge
	EdgeCount     prometheus.Gauge
	PixelCount    prometheus.Gauge
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),

		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mazegraph_runs_total",
				Help: "Total maze parse runs by result",
			},
			[]string{"result"},
		),

		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mazegraph_stage_duration_seconds",
				Help:    "Pipeline stage duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"stage"},
		),

		NodeCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "mazegraph_nodes",
				Help: "Node count of the last parsed maze",
			},
		),

		EdgeCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "mazegraph_edges",
				Help: "Directed edge count of the last parsed maze",
			},
		),

		PixelCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "mazegraph_pixels",
				Help: "Pixel count of the last parsed maze",
			},
		),
	}

	r.Registry.MustRegister(
		r.RunsTotal, r.StageDuration,
		r.NodeCount, r.EdgeCount, r.PixelCount,
	)
	return r
}

// ObserveStage records one finished stage. It matches maze.WithOnStage.
func (r *Recorder) ObserveStage(ev maze.StageEvent) {
	r.StageDuration.WithLabelValues(ev.Stage.String()).Observe(ev.Elapsed.Seconds())
}

// RunFinished counts a run and, on success, sets the size gauges.
func (r *Recorder) RunFinished(res *maze.Result, err error) {
	r.RunsTotal.WithLabelValues(Reason(err)).Inc()
	if err != nil || res == nil {
		return
	}
	stats := res.Graph.Stats()
	r.NodeCount.Set(float64(stats.Nodes))
	r.EdgeCount.Set(float64(stats.Edges))
	r.PixelCount.Set(float64(res.Graph.Width() * res.Graph.Height()))
}

// WriteTextfile writes every series in the textfile collector format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}

// reasons maps error sentinels to result labels, checked in order.
var reasons = []struct {
	err   error
	label string
}{
	{pixel.ErrDecode, "decode"},
	{border.ErrImageTooSmall, "image_too_small"},
	{border.ErrTooManyColors, "too_many_colors"},
	{border.ErrNoUniqueMarkerColor, "no_marker_color"},
	{border.ErrInvalidColorOutsideBorder, "invalid_color"},
	{border.ErrMarkerInCorner, "marker_in_corner"},
	{border.ErrAmbiguousEndpoints, "ambiguous_endpoints"},
	{context.Canceled, "canceled"},
	{context.DeadlineExceeded, "canceled"},
}

// Reason returns the result label for err: ResultOK for nil, a short
// snake_case reason for known maze errors, "error" otherwise.
func Reason(err error) string {
	if err == nil {
		return ResultOK
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "error"
}
