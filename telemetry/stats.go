package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FrameSample is what one frame reports to the window.
type FrameSample struct {
	DT      float64
	Stalled int
	Wrapped int
	Reset   int
	Tiers   [3]int
}

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowEnd int64   `csv:"window_end"`
	Elapsed   float64 `csv:"elapsed"`
	Frames    int     `csv:"frames"`

	DTMean float64 `csv:"dt_mean"`
	DTStd  float64 `csv:"dt_std"`
	DTP50  float64 `csv:"dt_p50"`
	DTP95  float64 `csv:"dt_p95"`
	DTMax  float64 `csv:"dt_max"`

	// Frames where at least one note was held by the stall guard
	StallFrames int `csv:"stall_frames"`
	Wraps       int `csv:"wraps"`
	Resets      int `csv:"resets"`

	// Mean notes per tier
	HighMean   float64 `csv:"high_mean"`
	MediumMean float64 `csv:"medium_mean"`
	LowMean    float64 `csv:"low_mean"`
}

// FrameWindow accumulates frame samples until flushed.
type FrameWindow struct {
	dts   []float64
	tiers [3][]float64
	stall int
	wraps int
	reset int
}

// NewFrameWindow creates a window sized for n frames.
func NewFrameWindow(n int) *FrameWindow {
	if n < 1 {
		n = 60
	}
	w := &FrameWindow{dts: make([]float64, 0, n)}
	for i := range w.tiers {
		w.tiers[i] = make([]float64, 0, n)
	}
	return w
}

// Add records one frame.
func (w *FrameWindow) Add(s FrameSample) {
	w.dts = append(w.dts, s.DT)
	for i, c := range s.Tiers {
		w.tiers[i] = append(w.tiers[i], float64(c))
	}
	if s.Stalled > 0 {
		w.stall++
	}
	w.wraps += s.Wrapped
	w.reset += s.Reset
}

// Len returns the number of frames recorded since the last flush.
func (w *FrameWindow) Len() int {
	return len(w.dts)
}

// Flush aggregates the recorded frames and resets the window.
func (w *FrameWindow) Flush(frame int64, elapsed float64) WindowStats {
	ws := WindowStats{
		WindowEnd:   frame,
		Elapsed:     elapsed,
		Frames:      len(w.dts),
		StallFrames: w.stall,
		Wraps:       w.wraps,
		Resets:      w.reset,
	}

	if len(w.dts) > 0 {
		sorted := append([]float64(nil), w.dts...)
		sort.Float64s(sorted)

		ws.DTMean, ws.DTStd = stat.MeanStdDev(w.dts, nil)
		ws.DTP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		ws.DTP95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
		ws.DTMax = sorted[len(sorted)-1]
		ws.HighMean = stat.Mean(w.tiers[0], nil)
		ws.MediumMean = stat.Mean(w.tiers[1], nil)
		ws.LowMean = stat.Mean(w.tiers[2], nil)
	}

	w.dts = w.dts[:0]
	for i := range w.tiers {
		w.tiers[i] = w.tiers[i][:0]
	}
	w.stall, w.wraps, w.reset = 0, 0, 0
	return ws
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_end", s.WindowEnd),
		slog.Int("frames", s.Frames),
		slog.Float64("dt_mean", s.DTMean),
		slog.Float64("dt_p95", s.DTP95),
		slog.Int("stall_frames", s.StallFrames),
		slog.Int("wraps", s.Wraps),
		slog.Float64("high", s.HighMean),
		slog.Float64("medium", s.MediumMean),
		slog.Float64("low", s.LowMean),
	)
}
