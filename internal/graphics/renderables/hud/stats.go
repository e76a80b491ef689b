package hud

import (
	"fmt"
	"strings"
	"time"

	"sanaa-nights/internal/profiling"
)

const historyLen = 60

// FrameStats keeps a rolling window of frame durations.
type FrameStats struct {
	history []time.Duration
	last    time.Duration
	min     time.Duration
	max     time.Duration
	avg     time.Duration
}

// Record adds one frame duration and refreshes min, max and average.
func (s *FrameStats) Record(d time.Duration) {
	if d < 0 {
		return
	}
	if len(s.history) >= historyLen {
		s.history = s.history[1:]
	}
	s.history = append(s.history, d)
	s.last = d

	var total time.Duration
	s.min, s.max = d, d
	for _, v := range s.history {
		total += v
		s.min = min(s.min, v)
		s.max = max(s.max, v)
	}
	s.avg = total / time.Duration(len(s.history))
}

func (s *FrameStats) Last() time.Duration    { return s.last }
func (s *FrameStats) Average() time.Duration { return s.avg }
func (s *FrameStats) Min() time.Duration     { return s.min }
func (s *FrameStats) Max() time.Duration     { return s.max }

// FPS is derived from the average frame time; zero until a frame is recorded.
func (s *FrameStats) FPS() float64 {
	if s.avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.avg)
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1000.0 }

// SceneInfo is the static part of the readout.
type SceneInfo struct {
	Voxels    int
	Lights    int
	Instances int
}

// Lines formats the readout: frame timing, scene size, then the busiest
// profiling trackers of the previous frame.
func Lines(s *FrameStats, info SceneInfo, top string) []string {
	lines := make([]string, 0, 16)
	lines = append(lines, fmt.Sprintf("FPS: %.0f", s.FPS()))
	lines = append(lines, fmt.Sprintf("Frame: %.2fms (%.2fms avg, %.2f..%.2fms)", ms(s.last), ms(s.avg), ms(s.min), ms(s.max)))

	render := profiling.SumWithPrefix("renderer.")
	lines = append(lines, fmt.Sprintf("Tracked(render): %.2fms", ms(render)))
	lines = append(lines, fmt.Sprintf("Voxels: %d (%d lights) | Instances: %d", info.Voxels, info.Lights, info.Instances))

	for line := range strings.SplitSeq(top, ", ") {
		if line != "" && !strings.HasSuffix(line, ":0.0ms") {
			lines = append(lines, line)
		}
	}
	return lines
}
