package game

import (
	"log/slog"

	"github.com/pthm-cable/cashfall/config"
	"github.com/pthm-cable/cashfall/telemetry"
)

// recordFrame adds the finished frame to the stats window and flushes it when full.
func (g *Game) recordFrame() {
	g.frameWindow.Add(telemetry.FrameSample{
		DT:      g.lastDT,
		Stalled: g.lastKin.Stalled,
		Wrapped: g.lastKin.Wrapped,
		Reset:   g.lastKin.Reset,
		Tiers:   g.lastTiers,
	})
	g.frame++

	if g.frameWindow.Len() >= g.statsWindow {
		g.flushTelemetry()
	}
}

// flushTelemetry aggregates the stats window and emits it.
func (g *Game) flushTelemetry() {
	stats := g.frameWindow.Flush(g.frame, g.elapsed)
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		slog.Info("window", "stats", stats)
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteStats(stats); err != nil {
		slog.Error("failed to write frame stats", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, g.frame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

func (g *Game) cameraConfig() config.CameraConfig {
	return config.Cfg().Camera
}
