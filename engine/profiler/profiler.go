package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, frame deltas, skipped frames and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	skippedCount   int
	dtSum, dtMax   float32
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now  func() time.Time
	logf func(format string, args ...any)
}

// Snapshot is the window of statistics a Profiler logged most recently.
type Snapshot struct {
	FPS       float64
	AvgDelta  float32
	MaxDelta  float32
	Skipped   int
	HeapMB    float64
	AllocRate float64
	GCCount   uint32
}

// NewProfiler creates a new Profiler that logs once per interval.
// An interval <= 0 defaults to 1 second.
//
// Parameters:
//   - interval: how often statistics are logged
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	p := &Profiler{
		lastTime:       time.Now(),
		updateInterval: interval,
		now:            time.Now,
		logf:           log.Printf,
	}
	runtime.ReadMemStats(&p.memStats)
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return p
}

// SkipFrame records a frame that was scheduled but not drawn.
func (p *Profiler) SkipFrame() {
	p.skippedCount++
}

// Skipped returns the frames skipped since the last logged report.
func (p *Profiler) Skipped() int {
	return p.skippedCount
}

// Tick should be called once per frame with the frame's delta in milliseconds.
// Logs performance statistics when the update interval has elapsed.
//
// Parameters:
//   - dtMs: the delta the frame advanced the simulation by
//
// Returns:
//   - Snapshot: the statistics logged this tick, zero if nothing was logged
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(dtMs float32) (Snapshot, bool) {
	p.frameCount++
	p.dtSum += dtMs
	if dtMs > p.dtMax {
		p.dtMax = dtMs
	}

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return Snapshot{}, false
	}

	runtime.ReadMemStats(&p.memStats)
	snap := Snapshot{
		FPS:      float64(p.frameCount) / elapsed.Seconds(),
		AvgDelta: p.dtSum / float32(p.frameCount),
		MaxDelta: p.dtMax,
		Skipped:  p.skippedCount,
		HeapMB:   float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:  p.memStats.NumGC,
	}
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	snap.AllocRate = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	p.logf("[Profiler] FPS: %.2f | dt: %.2f ms (max %.2f) | Skipped: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (+%d)",
		snap.FPS, snap.AvgDelta, snap.MaxDelta, snap.Skipped, snap.HeapMB, snap.AllocRate, snap.GCCount, snap.GCCount-p.lastGCCount)

	p.frameCount = 0
	p.skippedCount = 0
	p.dtSum, p.dtMax = 0, 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return snap, true
}
