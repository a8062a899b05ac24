package maze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mazegraph/border"
	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/mazegraph"
)

// Sentinel errors for pipeline execution.
var (
	// ErrNilBuffer indicates a nil *pixel.Buffer or image.Image.
	ErrNilBuffer = errors.New("maze: image is nil")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Stage identifies one step of Parse.
type Stage int

const (
	// StageBorder classifies the border ring.
	StageBorder Stage = iota
	// StageValidate checks every pixel against the palette.
	StageValidate
	// StageEndpoints orders the markers into start and end.
	StageEndpoints
	// StageClassify collects graph-relevant pixels.
	StageClassify
	// StageLink builds and links the graph.
	StageLink
)

// Stages returns all stages in execution order.
func Stages() []Stage {
	return []Stage{StageBorder, StageValidate, StageEndpoints, StageClassify, StageLink}
}

// String returns the lower-case stage name, used as a log field and metric label.
func (s Stage) String() string {
	switch s {
	case StageBorder:
		return "border"
	case StageValidate:
		return "validate"
	case StageEndpoints:
		return "endpoints"
	case StageClassify:
		return "classify"
	case StageLink:
		return "link"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// StageEvent describes a finished stage.
//
// Count depends on the stage:
//
//	StageBorder     pixels on the border ring
//	StageValidate   pixels checked
//	StageEndpoints  markers resolved (always 2)
//	StageClassify   relevant pixels found
//	StageLink       directed links created
type StageEvent struct {
	Stage   Stage
	Elapsed time.Duration
	Count   int
}

// Result is the outcome of a successful Parse.
type Result struct {
	// Palette holds the path and background colors.
	Palette border.Palette
	// Markers are the two border markers in ring scan order.
	Markers [2]grid.Position
	// Endpoints are the resolved start and end.
	Endpoints border.Endpoints
	// Graph is the linked maze graph.
	Graph *mazegraph.Graph
}

// Option configures Parse via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds pipeline settings.
type Options struct {
	// Ctx allows cancellation between stages.
	Ctx context.Context

	// Workers is passed to topology.WithWorkers and mazegraph.WithWorkers.
	Workers int

	// TieBreak is passed to border.WithTieBreak.
	TieBreak border.TieBreak

	// OnStage is called after every successful stage.
	OnStage func(StageEvent)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - sequential stages (Workers == 1)
//   - border.TieFirstScanned
//   - a no-op OnStage hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  1,
		TieBreak: border.TieFirstScanned,
		OnStage:  func(StageEvent) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers runs the pixel classification and link stages with n goroutines.
//
//	n > 1:  parallel
//	n == 0: sequential
//	n < 0:  ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithTieBreak selects the policy for markers equidistant from the origin.
func WithTieBreak(t border.TieBreak) Option {
	return func(o *Options) {
		if t != border.TieFirstScanned && t != border.TieReject {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, t)
			return
		}
		o.TieBreak = t
	}
}

// WithOnStage registers a hook called after every successful stage.
func WithOnStage(fn func(StageEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}
