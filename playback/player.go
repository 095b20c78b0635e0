package playback

import (
	"context"
	"log"
	"time"

	"github.com/theoremus-urban-solutions/rail-pulse/internal/metrics"
	"github.com/theoremus-urban-solutions/rail-pulse/query"
	"github.com/theoremus-urban-solutions/rail-pulse/utils"
)

// FrameFunc receives every computed position frame.
type FrameFunc func(at float64, positions []query.ActivePosition)

// StatsFunc receives the periodic playback summary.
type StatsFunc func(s Stats)

// Stats summarizes one playback instant.
type Stats struct {
	At     float64 // dataset seconds
	Clock  string  // clock-face rendering of At
	Active int
	Total  int
	Speed  float64
}

// Options tune a Player. Zero rates fall back to 60 Hz frames and 4 Hz
// stats; an empty Operator disables filtering; nil callbacks and Metrics
// are skipped.
type Options struct {
	FrameRate float64
	StatsRate float64
	Operator  string
	OnFrame   FrameFunc
	OnStats   StatsFunc
	Metrics   *metrics.Collector
}

// Player drives a query engine from a clock, delivering frames and stats
// at fixed rates until its context ends.
type Player struct {
	engine    *query.Engine
	clock     *Clock
	operator  string
	frameStep time.Duration
	statsStep time.Duration
	onFrame   FrameFunc
	onStats   StatsFunc
	metrics   *metrics.Collector
}

// NewPlayer wires an engine to a clock.
func NewPlayer(engine *query.Engine, clock *Clock, opts Options) *Player {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	if opts.StatsRate <= 0 {
		opts.StatsRate = 4
	}
	return &Player{
		engine:    engine,
		clock:     clock,
		operator:  opts.Operator,
		frameStep: time.Duration(float64(time.Second) / opts.FrameRate),
		statsStep: time.Duration(float64(time.Second) / opts.StatsRate),
		onFrame:   opts.OnFrame,
		onStats:   opts.OnStats,
		metrics:   opts.Metrics,
	}
}

// Run blocks dispatching frames and stats until ctx is done, then returns
// the context's error.
func (p *Player) Run(ctx context.Context) error {
	if p.metrics != nil {
		p.metrics.DatasetTrains.Set(float64(p.engine.Dataset().TrainCount()))
		p.metrics.PlaybackSpeed.Set(p.clock.Speed())
	}
	log.Printf("[playback] starting: frame every %v, stats every %v, speed x%g",
		p.frameStep, p.statsStep, p.clock.Speed())

	frames := time.NewTicker(p.frameStep)
	defer frames.Stop()
	stats := time.NewTicker(p.statsStep)
	defer stats.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[playback] stopped at %s", utils.ClockTime(p.clock.Now()))
			return ctx.Err()
		case now := <-frames.C:
			p.frame(now)
		case now := <-stats.C:
			p.stats(now)
		}
	}
}

// frame computes one position frame and hands it to the frame callback.
func (p *Player) frame(now time.Time) {
	started := time.Now()
	at := p.clock.At(now)
	positions := p.engine.ActivePositions(at, p.operator)
	if p.metrics != nil {
		p.metrics.FramesTotal.Inc()
		p.metrics.ActiveTrains.Set(float64(len(positions)))
		p.metrics.ClockSeconds.Set(at)
		p.metrics.FrameDuration.Observe(time.Since(started).Seconds())
	}
	if p.onFrame != nil {
		p.onFrame(at, positions)
	}
}

// stats assembles the periodic summary and hands it to the stats callback.
func (p *Player) stats(now time.Time) {
	at := p.clock.At(now)
	s := Stats{
		At:     at,
		Clock:  utils.ClockTime(at),
		Active: p.engine.CountActive(at),
		Total:  p.engine.Dataset().TrainCount(),
		Speed:  p.clock.Speed(),
	}
	if p.metrics != nil {
		p.metrics.StatsTicksTotal.Inc()
		p.metrics.PlaybackSpeed.Set(s.Speed)
	}
	if p.onStats != nil {
		p.onStats(s)
	}
}
