package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology classification.
var (
	// ErrNilBuffer indicates a nil *pixel.Buffer.
	ErrNilBuffer = errors.New("topology: pixel buffer is nil")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("topology: invalid option supplied")
)

// Kind classifies a single pixel by its cardinal path neighbors.
type Kind uint8

const (
	// NotPath marks a pixel that does not have the path color.
	NotPath Kind = iota
	// Isolated is a path pixel with no path neighbor.
	Isolated
	// DeadEnd is a path pixel with exactly one path neighbor.
	DeadEnd
	// Corridor is a path pixel between two opposite path neighbors.
	Corridor
	// Corner is a path pixel with two path neighbors at a right angle.
	Corner
	// Junction is a path pixel with three path neighbors.
	Junction
	// Crossroads is a path pixel with four path neighbors.
	Crossroads
)

// Relevant reports whether pixels of this kind become graph nodes.
func (k Kind) Relevant() bool {
	switch k {
	case DeadEnd, Corner, Junction, Crossroads:
		return true
	default:
		return false
	}
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case NotPath:
		return "not-path"
	case Isolated:
		return "isolated"
	case DeadEnd:
		return "dead-end"
	case Corridor:
		return "corridor"
	case Corner:
		return "corner"
	case Junction:
		return "junction"
	case Crossroads:
		return "crossroads"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Census counts pixels per Kind. NotPath pixels are not counted.
type Census map[Kind]int

// Relevant returns the number of graph-relevant pixels.
func (c Census) Relevant() int {
	n := 0
	for k, v := range c {
		if k.Relevant() {
			n += v
		}
	}
	return n
}

// Option configures RelevantPositions.
type Option func(*Options)

// Options holds classification settings.
type Options struct {
	// Workers is the number of row bands scanned concurrently.
	// 0 and 1 both mean a single sequential scan.
	Workers int

	err error
}

// DefaultOptions returns sequential Options.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers scans rows in n concurrent bands.
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
