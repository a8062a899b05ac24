package maze

import (
	"image"
	"time"

	"github.com/katalvlaran/mazegraph/border"
	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/mazegraph"
	"github.com/katalvlaran/mazegraph/pixel"
	"github.com/katalvlaran/mazegraph/topology"
)

// runner encapsulates the state shared by the stages of one Parse call.
type runner struct {
	opts     Options
	buf      *pixel.Buffer
	cls      *border.Classification
	ends     border.Endpoints
	relevant []grid.Position
	graph    *mazegraph.Graph
}

// Parse converts buf into a linked maze graph.
// Returns ErrNilBuffer or ErrOptionViolation for invalid input, the context
// error on cancellation, or the first error of a failing stage (border,
// grid, topology or mazegraph sentinels, matched with errors.Is).
func Parse(buf *pixel.Buffer, opts ...Option) (*Result, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner{opts: o, buf: buf}
	steps := []struct {
		stage Stage
		run   func() (int, error)
	}{
		{StageBorder, r.ring},
		{StageValidate, r.validate},
		{StageEndpoints, r.resolve},
		{StageClassify, r.classify},
		{StageLink, r.link},
	}
	for _, s := range steps {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		began := time.Now()
		n, err := s.run()
		if err != nil {
			return nil, err
		}
		o.OnStage(StageEvent{Stage: s.stage, Elapsed: time.Since(began), Count: n})
	}

	return &Result{
		Palette:   r.cls.Palette,
		Markers:   r.cls.Markers,
		Endpoints: r.ends,
		Graph:     r.graph,
	}, nil
}

// ParseImage normalizes img with pixel.FromImage and runs Parse.
func ParseImage(img image.Image, opts ...Option) (*Result, error) {
	if img == nil {
		return nil, ErrNilBuffer
	}
	buf, err := pixel.FromImage(img)
	if err != nil {
		return nil, err
	}
	return Parse(buf, opts...)
}

func (r *runner) ring() (int, error) {
	cls, err := border.Classify(r.buf)
	if err != nil {
		return 0, err
	}
	r.cls = cls
	return cls.RingLength, nil
}

func (r *runner) validate() (int, error) {
	if err := border.Validate(r.buf, r.cls.Palette); err != nil {
		return 0, err
	}
	return r.buf.Len(), nil
}

func (r *runner) resolve() (int, error) {
	ends, err := border.ResolveEndpoints(r.cls.Markers, r.buf.Width(), r.buf.Height(),
		border.WithTieBreak(r.opts.TieBreak))
	if err != nil {
		return 0, err
	}
	r.ends = ends
	return len(r.cls.Markers), nil
}

func (r *runner) classify() (int, error) {
	relevant, err := topology.RelevantPositions(r.buf, r.cls.Palette.Path,
		topology.WithWorkers(r.opts.Workers))
	if err != nil {
		return 0, err
	}
	r.relevant = relevant
	return len(relevant), nil
}

func (r *runner) link() (int, error) {
	g, err := mazegraph.Build(r.buf, r.cls.Palette.Path, r.ends, r.relevant,
		mazegraph.WithWorkers(r.opts.Workers))
	if err != nil {
		return 0, err
	}
	r.graph = g
	return g.Stats().Edges, nil
}
