package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegraph/maze"
	"github.com/katalvlaran/mazegraph/pixel"
)

// parsed is a decoded image together with its graph.
type parsed struct {
	file    string
	format  string
	size    int64
	elapsed time.Duration
	buf     *pixel.Buffer
	res     *maze.Result
}

// parseFile decodes the image at path and runs the maze pipeline on it,
// logging every stage and recording metrics. The metrics textfile is written
// whether or not parsing succeeds.
func (a *app) parseFile(ctx context.Context, path string) (*parsed, error) {
	p, err := a.parse(ctx, path)
	if a.cfg.MetricsFile != "" {
		if werr := a.rec.WriteTextfile(a.cfg.MetricsFile); werr != nil {
			a.log.WithError(werr).WithField("file", a.cfg.MetricsFile).Warn("writing metrics textfile")
		}
	}
	return p, err
}

func (a *app) parse(ctx context.Context, path string) (*parsed, error) {
	f, err := os.Open(path)
	if err != nil {
		a.rec.RunFinished(nil, err)
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		a.rec.RunFinished(nil, err)
		return nil, err
	}

	buf, format, err := pixel.Decode(f)
	if err != nil {
		a.rec.RunFinished(nil, err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log := a.log.WithFields(logrus.Fields{"file": path, "format": format})
	log.WithFields(logrus.Fields{
		"size":   humanize.Bytes(uint64(info.Size())),
		"width":  buf.Width(),
		"height": buf.Height(),
	}).Debug("image decoded")

	began := time.Now()
	res, err := maze.Parse(buf,
		maze.WithContext(ctx),
		maze.WithWorkers(a.cfg.Workers),
		maze.WithTieBreak(a.cfg.TieBreakPolicy()),
		maze.WithOnStage(func(ev maze.StageEvent) {
			a.rec.ObserveStage(ev)
			log.WithFields(logrus.Fields{
				"stage":   ev.Stage.String(),
				"elapsed": ev.Elapsed,
				"count":   ev.Count,
			}).Debug("stage finished")
		}),
	)
	a.rec.RunFinished(res, err)
	if err != nil {
		log.WithError(err).Error("maze rejected")
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	elapsed := time.Since(began)
	if res.Endpoints.Tied {
		log.WithField("start", res.Endpoints.Start.String()).Warn("markers equidistant from origin, start picked by scan order")
	}
	log.WithFields(logrus.Fields{
		"nodes":   humanize.Comma(int64(res.Graph.Len())),
		"elapsed": elapsed,
	}).Info("maze parsed")

	return &parsed{
		file:    path,
		format:  format,
		size:    info.Size(),
		elapsed: elapsed,
		buf:     buf,
		res:     res,
	}, nil
}
